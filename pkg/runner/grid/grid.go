// Package grid prints month grids for the grid command.
package grid

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/datepick/pkg/datepicker"
	"tableflip.dev/datepick/pkg/datepicker/selection"
	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/printers"
	cells "tableflip.dev/datepick/pkg/datepicker/grid"
)

// Grid prints one month, or a whole year, with a value highlighted.
type Grid struct {
	// Month is "January 2006"; empty means the current month.
	Month string
	// Year prints all twelve months of the month's year.
	Year  bool
	Value selection.Value
	Now   func() time.Time

	Printer *printers.PrettyPrint
}

// Do renders the grid.
func (g *Grid) Do(ctx context.Context) error {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	pp := g.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	m, err := g.month(now())
	if err != nil {
		return err
	}
	if _, ok := datepicker.YearIndex(m.Year); !ok {
		return fmt.Errorf("year %d is outside %d-%d", m.Year, datepicker.FirstYear, datepicker.LastYear)
	}

	mark := Marker(g.Value, day.Of(now()))
	if g.Year {
		pp.Year(m.Year, mark)
		return nil
	}
	pp.Month(m, mark)
	return nil
}

func (g *Grid) month(now time.Time) (day.Month, error) {
	if g.Month != "" {
		m, err := day.ParseMonth(g.Month)
		if err != nil {
			return day.Month{}, fmt.Errorf("month %q: expected a form like %q", g.Month, "March 2024")
		}
		return m, nil
	}
	switch g.Value.Kind() {
	case selection.KindSingle:
		d, _ := g.Value.Day()
		return d.MonthOf(), nil
	case selection.KindRange:
		if r, _ := g.Value.Range(); !r.From.IsZero() {
			return r.From.MonthOf(), nil
		}
	}
	return day.MonthOfTime(now), nil
}

// Marker highlights v and today.
func Marker(v selection.Value, today day.Day) cells.Marker {
	return func(d day.Day) cells.Marks {
		marks := cells.Marks{Today: today.Same(d)}
		switch v.Kind() {
		case selection.KindSingle:
			sel, _ := v.Day()
			marks.Selected = sel.Same(d)
		case selection.KindRange:
			r, _ := v.Range()
			marks.InRange = day.Between(d, r.From, r.To)
			marks.RangeStart = r.From.Same(d)
			marks.RangeEnd = r.To.Same(d)
		}
		return marks
	}
}
