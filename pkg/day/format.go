package day

import (
	"fmt"
	"time"
)

// Pattern names one of the supported text renderings.
type Pattern string

const (
	// LongDate renders "March 10th, 2024".
	LongDate Pattern = "PPP"
	// ShortDate renders "Mar 10, 2024".
	ShortDate Pattern = "PP"
	// MonthYear renders "March 2024".
	MonthYear Pattern = "MMMM yyyy"

	// ISO is the layout used for flags, config and JSON output.
	ISO = "2006-01-02"
)

// Format renders d using p. Absent days render as the empty string.
func Format(d Day, p Pattern) string {
	if d.IsZero() {
		return ""
	}
	t := d.Time()
	switch p {
	case LongDate:
		return fmt.Sprintf("%s %s, %d", t.Month(), ordinal(d.Day), d.Year)
	case ShortDate:
		return t.Format("Jan 2, 2006")
	case MonthYear:
		return t.Format("January 2006")
	default:
		return t.Format(ISO)
	}
}

// ParseMonth reads "January 2006" month names.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("January 2006", s)
	if err != nil {
		return Month{}, err
	}
	return MonthOfTime(t), nil
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
