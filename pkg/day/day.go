// Package day models calendar days without a time component.
package day

import (
	"time"
)

// Day is a calendar date. The zero value means "no day".
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the normalized day for the provided parts, so that
// New(2024, time.February, 30) is March 1st 2024.
func New(year int, month time.Month, d int) Day {
	return Of(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

// Of drops the time component of t, keeping the date as seen in t's location.
func Of(t time.Time) Day {
	if t.IsZero() {
		return Day{}
	}
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the absent day.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Time returns midnight UTC of d.
func (d Day) Time() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week for d.
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Compare returns -1, 0 or 1 when d is before, equal to or after other.
func (d Day) Compare(other Day) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Day) After(other Day) bool { return d.Compare(other) > 0 }

// Same reports same-day equality. Absent days are never the same as anything.
func (d Day) Same(other Day) bool {
	return !d.IsZero() && d == other
}

// AddDays shifts d by n days.
func (d Day) AddDays(n int) Day {
	return Of(d.Time().AddDate(0, 0, n))
}

// MonthOf returns the month containing d.
func (d Day) MonthOf() Month {
	return Month{Year: d.Year, Month: d.Month}
}

// String renders d as an ISO date.
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(ISO)
}

// Parse reads an ISO (2006-01-02) date.
func Parse(s string) (Day, error) {
	t, err := time.Parse(ISO, s)
	if err != nil {
		return Day{}, err
	}
	return Of(t), nil
}

// Min returns the earlier of a and b.
func Min(a, b Day) Day {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b.
func Max(a, b Day) Day {
	if b.After(a) {
		return b
	}
	return a
}

// Between reports whether d falls within [from, to] inclusive. Order of the
// bounds does not matter.
func Between(d, from, to Day) bool {
	if d.IsZero() || from.IsZero() || to.IsZero() {
		return false
	}
	lo, hi := Min(from, to), Max(from, to)
	return !d.Before(lo) && !d.After(hi)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
