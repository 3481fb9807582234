package app

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/datepick/pkg/datepicker/selection"
	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/tui/components/command"
)

// target is where a go-to entry points: a whole month or one day.
type target struct {
	month day.Month
	day   day.Day
}

var gotoSuggestions = []command.SuggestionOption{
	{Name: "today", Description: "Jump to today"},
	{Name: "+1w", Description: "One week ahead"},
	{Name: "-1w", Description: "One week back"},
	{Name: "+4w", Description: "Four weeks ahead"},
	{Name: "-4w", Description: "Four weeks back"},
}

// parseTarget reads "May 2024", "2024-05", an ISO date, a relative day such
// as "today+3d", or a range whose start is used.
func parseTarget(s string, today day.Day) (target, error) {
	s = strings.TrimSpace(s)
	if m, err := day.ParseMonth(s); err == nil {
		return target{month: m}, nil
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return target{month: day.MonthOfTime(t)}, nil
	}
	v, err := selection.ParseValueAt(s, today)
	if err != nil {
		return target{}, fmt.Errorf("go to %q: %w", s, err)
	}
	if d, ok := v.Day(); ok {
		return target{day: d}, nil
	}
	if r, ok := v.Range(); ok && !r.From.IsZero() {
		return target{day: r.From}, nil
	}
	return target{}, fmt.Errorf("go to %q: nothing to show", s)
}
