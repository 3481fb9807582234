// Package grid lays out a month as weeks of day cells.
package grid

import (
	"time"

	"tableflip.dev/datepick/pkg/day"
)

// Weekdays is the grid header, Sunday first.
const Weekdays = "Su Mo Tu We Th Fr Sa"

// Cell is one slot of the grid. Placeholder cells carry no date and only
// exist to align day 1 under its weekday.
type Cell struct {
	Placeholder bool
	Date        day.Day
}

// Build returns the grid for a month: one placeholder per weekday before
// day 1, one cell per day, then placeholders up to the end of the last week.
func Build(year int, month time.Month) []Cell {
	m := day.Month{Year: year, Month: month}
	offset := int(m.StartWeekday())
	days := m.Days()
	total := offset + days
	rows := (total + 6) / 7

	cells := make([]Cell, 0, rows*7)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Placeholder: true})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Date: day.Day{Year: year, Month: month, Day: d}})
	}
	for len(cells) < rows*7 {
		cells = append(cells, Cell{Placeholder: true})
	}
	return cells
}

// Rows splits cells into weeks.
func Rows(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, len(cells)/7)
	for i := 0; i+7 <= len(cells); i += 7 {
		rows = append(rows, cells[i:i+7])
	}
	return rows
}

// Marks describes how a single day should be drawn.
type Marks struct {
	Selected   bool
	InRange    bool
	RangeStart bool
	RangeEnd   bool
	Today      bool
	Focused    bool
}

// Marker reports the marks for a day.
type Marker func(day.Day) Marks
