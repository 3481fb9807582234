package day

import "time"

// Month identifies a calendar month of a year.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOfTime returns the month containing t.
func MonthOfTime(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First returns day 1 of m.
func (m Month) First() Day {
	return Day{Year: m.Year, Month: m.Month, Day: 1}
}

// Days returns the number of days in m, accounting for leap years.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartWeekday returns the weekday of day 1 (0 = Sunday).
func (m Month) StartWeekday() time.Weekday {
	return m.First().Weekday()
}

// Add shifts m by n months.
func (m Month) Add(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether d falls in m.
func (m Month) Contains(d Day) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// Time returns midnight UTC of day 1.
func (m Month) Time() time.Time {
	return m.First().Time()
}

// String renders m using the month-year header pattern.
func (m Month) String() string {
	return Format(m.First(), MonthYear)
}
