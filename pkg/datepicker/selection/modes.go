package selection

import "tableflip.dev/datepick/pkg/day"

// Modes owns both engines and decides which one acts. Both engines keep
// their state for the life of the picker, so flipping the duo sub-mode
// back and forth never loses progress.
type Modes struct {
	mode      Mode
	sub       SubMode
	single    *SingleEngine
	rng       *RangeEngine
	committed Value
}

// NewModes builds the coordinator. The initial value seeds the engine of
// its shape; in duo mode it also picks the starting sub-mode, falling back
// to rangeMode when the value is empty. A value of the wrong shape for a
// fixed mode is ignored.
func NewModes(mode Mode, initial Value, rangeMode bool) *Modes {
	m := &Modes{
		mode:   mode,
		single: NewSingleEngine(day.Day{}),
		rng:    NewRangeEngine(day.Range{}),
	}

	switch mode {
	case ModeSingle:
		m.sub = SubSingle
	case ModeRange:
		m.sub = SubRange
	default:
		m.mode = ModeDuo
		m.sub = SubSingle
		if rangeMode {
			m.sub = SubRange
		}
	}

	switch initial.Kind() {
	case KindSingle:
		if m.mode == ModeRange {
			break
		}
		d, _ := initial.Day()
		m.single = NewSingleEngine(d)
		m.sub = SubSingle
		m.committed = initial
	case KindRange:
		if m.mode == ModeSingle {
			break
		}
		r, _ := initial.Range()
		m.rng = NewRangeEngine(r)
		m.sub = SubRange
		if m.rng.State() == RangeComplete {
			m.committed = RangeValue(m.rng.Current())
		}
	case KindNone:
	}
	return m
}

// Mode returns the overall mode.
func (m *Modes) Mode() Mode { return m.mode }

// Sub returns the acting behavior.
func (m *Modes) Sub() SubMode { return m.sub }

// RangeActive reports whether the range engine is acting.
func (m *Modes) RangeActive() bool { return m.sub == SubRange }

// Single exposes the single engine.
func (m *Modes) Single() *SingleEngine { return m.single }

// Range exposes the range engine.
func (m *Modes) Range() *RangeEngine { return m.rng }

// Committed returns the last value delivered to (or seeded by) the consumer.
func (m *Modes) Committed() Value { return m.committed }

// Select routes a day click to the acting engine.
func (m *Modes) Select(d day.Day) Outcome {
	var out Outcome
	switch m.sub {
	case SubRange:
		out = m.rng.Click(d)
	case SubSingle:
		out = m.single.Commit(d)
	}
	return m.record(out)
}

// Hover routes pointer movement to the range engine; single selection has
// no preview.
func (m *Modes) Hover(d day.Day) {
	if m.sub == SubRange {
		m.rng.HoverDay(d)
	}
}

// Reset clears the acting engine only.
func (m *Modes) Reset() Outcome {
	var out Outcome
	switch m.sub {
	case SubRange:
		out = m.rng.Reset()
	case SubSingle:
		out = m.single.Reset()
	}
	return m.record(out)
}

// SetRangeMode flips the duo sub-mode and re-announces the value held by
// the newly acting engine. Outside duo, or when already in the requested
// sub-mode, it does nothing.
func (m *Modes) SetRangeMode(on bool) Outcome {
	if m.mode != ModeDuo {
		return Outcome{}
	}
	want := SubSingle
	if on {
		want = SubRange
	}
	if want == m.sub {
		return Outcome{}
	}
	m.sub = want

	out := Outcome{Changed: true, ModeChanged: true, SubMode: want, Value: NoValue()}
	switch want {
	case SubRange:
		if m.rng.State() == RangeComplete {
			out.Value = RangeValue(m.rng.Current())
		}
		out.Focus = m.rng.Start()
	case SubSingle:
		if sel := m.single.Selected(); !sel.IsZero() {
			out.Value = SingleValue(sel)
			out.Focus = sel
		}
	}
	return m.record(out)
}

// IsSelected reports whether d is the committed single day or an endpoint
// of the acting range.
func (m *Modes) IsSelected(d day.Day) bool {
	switch m.sub {
	case SubRange:
		return m.rng.IsRangeStart(d) || m.rng.IsRangeEnd(d)
	case SubSingle:
		return m.single.IsSelected(d)
	}
	return false
}

func (m *Modes) record(out Outcome) Outcome {
	if out.Changed {
		m.committed = out.Value
	}
	return out
}
