package selection

import (
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/day"
)

func d(year int, month time.Month, n int) day.Day {
	return day.New(year, month, n)
}

func TestRangeClickOrdersEndpoints(t *testing.T) {
	base := d(2024, time.March, 1)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			a, b := base.AddDays(i), base.AddDays(j)
			e := NewRangeEngine(day.Range{})
			if out := e.Click(a); out.Changed || out.Close {
				t.Fatalf("first click should not commit: %+v", out)
			}
			out := e.Click(b)
			if !out.Changed || !out.Close {
				t.Fatalf("second click should commit and close: %+v", out)
			}
			r, ok := out.Value.Range()
			if !ok {
				t.Fatalf("expected range value, got %v", out.Value.Kind())
			}
			if r.From.After(r.To) {
				t.Fatalf("clicked %s then %s: from %s after to %s", a, b, r.From, r.To)
			}
			if e.State() != RangeComplete {
				t.Fatalf("expected complete state, got %v", e.State())
			}
		}
	}
}

func TestRangeScenarioReverseClicks(t *testing.T) {
	e := NewRangeEngine(day.Range{})
	e.Click(d(2024, time.March, 10))
	out := e.Click(d(2024, time.March, 5))
	r, _ := out.Value.Range()
	want := day.Range{From: d(2024, time.March, 5), To: d(2024, time.March, 10)}
	if r != want {
		t.Fatalf("committed %+v, want %+v", r, want)
	}
}

func TestRangeHoverDoesNotAffectCommit(t *testing.T) {
	start, end := d(2024, time.March, 5), d(2024, time.March, 12)

	plain := NewRangeEngine(day.Range{})
	plain.Click(start)
	want := plain.Click(end)

	hovered := NewRangeEngine(day.Range{})
	hovered.Click(start)
	for _, h := range []day.Day{d(2024, time.February, 1), d(2024, time.March, 30), start, d(2024, time.March, 7)} {
		hovered.HoverDay(h)
	}
	got := hovered.Click(end)

	if got.Value != want.Value {
		t.Fatalf("hover changed commit: got %v want %v", got.Value, want.Value)
	}
	if !hovered.Hover().IsZero() {
		t.Fatal("hover should be cleared after commit")
	}
}

func TestRangeHoverPreview(t *testing.T) {
	e := NewRangeEngine(day.Range{})
	if e.InRange(d(2024, time.March, 5)) {
		t.Fatal("empty engine reports membership")
	}
	e.HoverDay(d(2024, time.March, 8))
	if !e.Hover().IsZero() {
		t.Fatal("hover should be ignored while empty")
	}

	e.Click(d(2024, time.March, 10))
	if e.InRange(d(2024, time.March, 10)) {
		t.Fatal("start without hover should not report membership")
	}
	if !e.IsRangeStart(d(2024, time.March, 10)) {
		t.Fatal("pending start should be marked")
	}

	e.HoverDay(d(2024, time.March, 6))
	for n := 6; n <= 10; n++ {
		if !e.InRange(d(2024, time.March, n)) {
			t.Fatalf("March %d should be previewed", n)
		}
	}
	if e.InRange(d(2024, time.March, 11)) || e.InRange(d(2024, time.March, 5)) {
		t.Fatal("preview leaked outside hover bounds")
	}
	if !e.IsRangeStart(d(2024, time.March, 6)) || !e.IsRangeEnd(d(2024, time.March, 10)) {
		t.Fatal("provisional edges should follow the ordered preview")
	}
	if e.State() != RangeStarted || !e.End().IsZero() {
		t.Fatal("hover must not commit")
	}

	e.Click(d(2024, time.March, 20))
	e.HoverDay(d(2024, time.April, 1))
	if !e.Hover().IsZero() {
		t.Fatal("hover should be ignored once complete")
	}
	if !e.InRange(d(2024, time.March, 20)) || e.InRange(d(2024, time.March, 21)) {
		t.Fatal("complete range membership is wrong")
	}
}

func TestRangeClickAfterCompleteRestarts(t *testing.T) {
	e := NewRangeEngine(day.Range{From: d(2024, time.March, 1), To: d(2024, time.March, 3)})
	if e.State() != RangeComplete {
		t.Fatalf("seeded state %v", e.State())
	}
	out := e.Click(d(2024, time.April, 1))
	if out.Changed {
		t.Fatal("restart click should not emit")
	}
	if e.State() != RangeStarted || e.Start() != d(2024, time.April, 1) || !e.End().IsZero() {
		t.Fatalf("unexpected state after restart: %v %s %s", e.State(), e.Start(), e.End())
	}
}

func TestResetIdempotent(t *testing.T) {
	e := NewRangeEngine(day.Range{From: d(2024, time.March, 1), To: d(2024, time.March, 3)})
	for i := 0; i < 2; i++ {
		out := e.Reset()
		r, ok := out.Value.Range()
		if !out.Changed || !ok || !r.IsEmpty() {
			t.Fatalf("reset %d: unexpected outcome %+v", i, out)
		}
		if e.State() != RangeEmpty {
			t.Fatalf("reset %d: state %v", i, e.State())
		}
	}

	s := NewSingleEngine(d(2024, time.January, 1))
	for i := 0; i < 2; i++ {
		out := s.Reset()
		if !out.Changed || out.Value.Kind() != KindNone {
			t.Fatalf("single reset %d: unexpected outcome %+v", i, out)
		}
	}
}

func TestSingleCommit(t *testing.T) {
	s := NewSingleEngine(day.Day{})
	target := d(2024, time.July, 4)
	out := s.Commit(target)
	if !out.Changed || !out.Close || out.Focus != target {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if got, ok := out.Value.Day(); !ok || got != target {
		t.Fatalf("unexpected value %v", out.Value)
	}
}

func TestDuoScenarioSingleToRange(t *testing.T) {
	jan1 := d(2024, time.January, 1)
	m := NewModes(ModeDuo, SingleValue(jan1), false)

	out := m.SetRangeMode(true)
	if !out.ModeChanged || out.SubMode != SubRange {
		t.Fatalf("expected mode change to range: %+v", out)
	}
	if !out.Changed || out.Value.Kind() != KindNone {
		t.Fatalf("expected None with no complete range, got %v", out.Value)
	}

	out = m.SetRangeMode(false)
	if got, ok := out.Value.Day(); !ok || got != jan1 {
		t.Fatalf("expected Single(2024-01-01), got %v", out.Value)
	}
	if out.Focus != jan1 {
		t.Fatalf("expected cursor focus on %s, got %s", jan1, out.Focus)
	}
}

func TestDuoRoundTripKeepsBothStates(t *testing.T) {
	m := NewModes(ModeDuo, NoValue(), false)
	m.Select(d(2024, time.May, 2))

	m.SetRangeMode(true)
	m.Select(d(2024, time.May, 20))
	m.Hover(d(2024, time.May, 25))

	m.SetRangeMode(false)
	if m.Single().Selected() != d(2024, time.May, 2) {
		t.Fatalf("single state lost: %s", m.Single().Selected())
	}

	out := m.SetRangeMode(true)
	if m.Range().State() != RangeStarted || m.Range().Start() != d(2024, time.May, 20) {
		t.Fatalf("range progress lost: %v %s", m.Range().State(), m.Range().Start())
	}
	if out.Value.Kind() != KindNone {
		t.Fatalf("incomplete range should announce None, got %v", out.Value)
	}
	if out.Focus != d(2024, time.May, 20) {
		t.Fatalf("expected focus on range start, got %s", out.Focus)
	}

	done := m.Select(d(2024, time.May, 22))
	m.SetRangeMode(false)
	back := m.SetRangeMode(true)
	if back.Value != done.Value {
		t.Fatalf("complete range not restored: %v vs %v", back.Value, done.Value)
	}
}

func TestSetRangeModeInertOutsideDuo(t *testing.T) {
	for _, mode := range []Mode{ModeSingle, ModeRange} {
		m := NewModes(mode, NoValue(), false)
		before := m.Sub()
		if out := m.SetRangeMode(before != SubRange); out.Changed || out.ModeChanged {
			t.Fatalf("%v: expected no-op, got %+v", mode, out)
		}
		if m.Sub() != before {
			t.Fatalf("%v: sub-mode changed", mode)
		}
	}
}

func TestSetRangeModeSameSubModeIsNoop(t *testing.T) {
	m := NewModes(ModeDuo, NoValue(), true)
	if out := m.SetRangeMode(true); out.ModeChanged {
		t.Fatalf("expected no-op, got %+v", out)
	}
}

func TestHoverIgnoredInSingle(t *testing.T) {
	m := NewModes(ModeDuo, NoValue(), false)
	m.Range().Click(d(2024, time.March, 1))
	m.Hover(d(2024, time.March, 9))
	if !m.Range().Hover().IsZero() {
		t.Fatal("hover should not reach the range engine in single sub-mode")
	}
}

func TestNewModesSeeds(t *testing.T) {
	r := day.Range{From: d(2024, time.March, 10), To: d(2024, time.March, 5)}
	m := NewModes(ModeDuo, RangeValue(r), false)
	if !m.RangeActive() {
		t.Fatal("range value should start duo in range sub-mode")
	}
	got, _ := m.Committed().Range()
	if got.From != d(2024, time.March, 5) {
		t.Fatalf("seeded range not ordered: %+v", got)
	}

	partial := NewModes(ModeRange, RangeValue(day.Range{From: d(2024, time.March, 10)}), false)
	if partial.Range().State() != RangeStarted {
		t.Fatalf("partial seed should be in progress, got %v", partial.Range().State())
	}
	if partial.Committed().Kind() != KindNone {
		t.Fatal("partial range must not be committed")
	}

	ignored := NewModes(ModeSingle, RangeValue(r), false)
	if ignored.Committed().Kind() != KindNone || ignored.RangeActive() {
		t.Fatal("range seed should be ignored in single mode")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"", NoValue()},
		{"none", NoValue()},
		{"2024-03-10", SingleValue(d(2024, time.March, 10))},
		{"2024-03-09..2024-03-01", RangeValue(day.Range{From: d(2024, time.March, 1), To: d(2024, time.March, 9)})},
		{"2024-03-01..", RangeValue(day.Range{From: d(2024, time.March, 1)})},
	}
	for _, tc := range tests {
		got, err := ParseValue(tc.in)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseValue(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseValue("March"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseValueAtRelative(t *testing.T) {
	today := d(2024, time.March, 15)
	got, err := ParseValueAt("today..+1w", today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := RangeValue(day.Range{From: today, To: d(2024, time.March, 22)})
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if _, err := ParseValueAt("today+3x", today); err == nil {
		t.Fatal("expected an error for a bad unit")
	}
}
