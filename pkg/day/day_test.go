package day

import (
	"testing"
	"time"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Day
		want int
	}{
		{"equal", New(2026, time.January, 1), New(2026, time.January, 1), 0},
		{"same month", New(2026, time.January, 1), New(2026, time.January, 15), -1},
		{"different month", New(2026, time.February, 1), New(2026, time.January, 31), 1},
		{"different year", New(2025, time.December, 31), New(2026, time.January, 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Fatalf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2024, time.February, 30)
	want := Day{Year: 2024, Month: time.March, Day: 1}
	if got != want {
		t.Fatalf("New(2024-02-30) = %v, want %v", got, want)
	}
}

func TestSameIgnoresAbsent(t *testing.T) {
	if (Day{}).Same(Day{}) {
		t.Fatal("absent days should never be the same day")
	}
	d := New(2024, time.March, 10)
	if !d.Same(New(2024, time.March, 10)) {
		t.Fatal("expected same day")
	}
}

func TestBetweenInclusive(t *testing.T) {
	from := New(2024, time.March, 5)
	to := New(2024, time.March, 10)
	for _, d := range []Day{from, to, New(2024, time.March, 7)} {
		if !Between(d, from, to) {
			t.Fatalf("%s should be between %s and %s", d, from, to)
		}
		if !Between(d, to, from) {
			t.Fatalf("%s should be between reversed bounds", d)
		}
	}
	if Between(New(2024, time.March, 11), from, to) {
		t.Fatal("day after the range reported inside")
	}
	if Between(Day{}, from, to) {
		t.Fatal("absent day reported inside")
	}
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		m    Month
		want int
	}{
		{Month{2024, time.February}, 29},
		{Month{2023, time.February}, 28},
		{Month{1900, time.February}, 28},
		{Month{2000, time.February}, 29},
		{Month{2024, time.April}, 30},
		{Month{2024, time.December}, 31},
	}
	for _, tt := range tests {
		if got := tt.m.Days(); got != tt.want {
			t.Errorf("%v.Days() = %d, want %d", tt.m, got, tt.want)
		}
	}
}

func TestMonthAdd(t *testing.T) {
	m := Month{Year: 2024, Month: time.January}
	if got := m.Add(-1); got != (Month{2023, time.December}) {
		t.Fatalf("Add(-1) = %v", got)
	}
	if got := m.Add(13); got != (Month{2025, time.February}) {
		t.Fatalf("Add(13) = %v", got)
	}
}

func TestFormat(t *testing.T) {
	d := New(2024, time.March, 10)
	tests := []struct {
		p    Pattern
		d    Day
		want string
	}{
		{LongDate, d, "March 10th, 2024"},
		{LongDate, New(2024, time.March, 1), "March 1st, 2024"},
		{LongDate, New(2024, time.March, 22), "March 22nd, 2024"},
		{LongDate, New(2024, time.March, 13), "March 13th, 2024"},
		{ShortDate, d, "Mar 10, 2024"},
		{MonthYear, d, "March 2024"},
		{ShortDate, Day{}, ""},
	}
	for _, tt := range tests {
		if got := Format(tt.d, tt.p); got != tt.want {
			t.Errorf("Format(%s, %q) = %q, want %q", tt.d, tt.p, got, tt.want)
		}
	}
}

func TestNewRangeOrders(t *testing.T) {
	a := New(2024, time.March, 10)
	b := New(2024, time.March, 5)
	r := NewRange(a, b)
	if r.From != b || r.To != a {
		t.Fatalf("NewRange did not order endpoints: %+v", r)
	}
	if r.Days() != 6 {
		t.Fatalf("Days() = %d, want 6", r.Days())
	}
	if !r.Contains(New(2024, time.March, 5)) || r.Contains(New(2024, time.March, 11)) {
		t.Fatal("unexpected containment")
	}
}
