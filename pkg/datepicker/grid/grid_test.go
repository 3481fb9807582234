package grid

import (
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/day"
)

func TestBuildShapeForEveryMonth(t *testing.T) {
	for year := 1950; year <= 2050; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := Build(year, month)
			if len(cells)%7 != 0 {
				t.Fatalf("%d-%02d: %d cells is not a multiple of 7", year, month, len(cells))
			}
			if len(cells) > 42 {
				t.Fatalf("%d-%02d: %d cells exceeds six weeks", year, month, len(cells))
			}

			m := day.Month{Year: year, Month: month}
			lead := 0
			for _, c := range cells {
				if !c.Placeholder {
					break
				}
				lead++
			}
			if lead != int(m.StartWeekday()) {
				t.Fatalf("%d-%02d: %d leading placeholders, want %d", year, month, lead, m.StartWeekday())
			}

			count := 0
			for _, c := range cells {
				if !c.Placeholder {
					count++
					if c.Date.Day != count {
						t.Fatalf("%d-%02d: day %d out of order at position %d", year, month, c.Date.Day, count)
					}
				}
			}
			if count != m.Days() {
				t.Fatalf("%d-%02d: %d day cells, want %d", year, month, count, m.Days())
			}
		}
	}
}

func TestBuildLeapFebruary(t *testing.T) {
	count := 0
	for _, c := range Build(2024, time.February) {
		if !c.Placeholder {
			count++
		}
	}
	if count != 29 {
		t.Fatalf("expected 29 days in February 2024, got %d", count)
	}
}

func TestBuildMarch2024(t *testing.T) {
	// March 1st 2024 is a Friday.
	cells := Build(2024, time.March)
	if len(cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(cells))
	}
	if !cells[4].Placeholder || cells[5].Placeholder {
		t.Fatalf("expected five leading placeholders")
	}
	if cells[5].Date != day.New(2024, time.March, 1) {
		t.Fatalf("unexpected first day %v", cells[5].Date)
	}
}

func TestRows(t *testing.T) {
	rows := Rows(Build(2024, time.February))
	if len(rows) != 5 {
		t.Fatalf("February 2024 spans five weeks, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 7 {
			t.Fatalf("week %d has %d cells", i, len(row))
		}
	}
}
