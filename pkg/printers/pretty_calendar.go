package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/datepicker/grid"
)

const width = len(grid.Weekdays)

// Month prints the grid of m, highlighting days by mark. A nil mark prints
// plain days.
func (pp *PrettyPrint) Month(m day.Month, mark grid.Marker) {
	out := pp.out()

	tf := color.New(color.FgWhite, color.Italic)
	title := day.Format(m.First(), day.MonthYear)
	mid := max((width-len(title))/2, 0)
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), title)

	hf := color.New(color.Faint)
	_, _ = hf.Fprintln(out, grid.Weekdays)

	plain := color.New()
	today := color.New(color.Underline)
	selected := color.New(color.Bold, color.FgHiWhite, color.BgBlue)
	inRange := color.New(color.FgHiWhite, color.BgHiBlack)

	for _, row := range grid.Rows(grid.Build(m.Year, m.Month)) {
		for i, cell := range row {
			if i > 0 {
				_, _ = fmt.Fprint(out, " ")
			}
			if cell.Placeholder {
				_, _ = fmt.Fprint(out, "  ")
				continue
			}
			var marks grid.Marks
			if mark != nil {
				marks = mark(cell.Date)
			}
			printer := plain
			switch {
			case marks.Selected, marks.RangeStart, marks.RangeEnd:
				printer = selected
			case marks.InRange:
				printer = inRange
			case marks.Today:
				printer = today
			}
			_, _ = printer.Fprintf(out, "%2d", cell.Date.Day)
		}
		_, _ = fmt.Fprintln(out)
	}
	_, _ = fmt.Fprintln(out)
}

// Year prints the twelve months of year.
func (pp *PrettyPrint) Year(year int, mark grid.Marker) {
	m := day.Month{Year: year, Month: 1}
	for i := 0; i < 12; i++ {
		pp.Month(m, mark)
		m = m.Add(1)
	}
}
