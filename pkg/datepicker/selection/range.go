package selection

import "tableflip.dev/datepick/pkg/day"

// RangeState is the phase of the two-click range protocol.
type RangeState int

const (
	// RangeEmpty has no endpoints.
	RangeEmpty RangeState = iota
	// RangeStarted has a start and waits for the second click.
	RangeStarted
	// RangeComplete has both endpoints, start never after end.
	RangeComplete
)

func (s RangeState) String() string {
	switch s {
	case RangeEmpty:
		return "empty"
	case RangeStarted:
		return "start-selected"
	case RangeComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// RangeEngine accumulates a range across two clicks and previews the
// pending range while the pointer hovers between them.
type RangeEngine struct {
	state RangeState
	start day.Day
	end   day.Day
	hover day.Day
}

// NewRangeEngine seeds the engine from r: both endpoints give a complete
// (ordered) range, a lone endpoint gives a started one.
func NewRangeEngine(r day.Range) *RangeEngine {
	e := &RangeEngine{}
	switch {
	case r.IsComplete():
		ordered := day.NewRange(r.From, r.To)
		e.state, e.start, e.end = RangeComplete, ordered.From, ordered.To
	case !r.From.IsZero():
		e.state, e.start = RangeStarted, r.From
	case !r.To.IsZero():
		e.state, e.start = RangeStarted, r.To
	}
	return e
}

// State returns the protocol phase.
func (e *RangeEngine) State() RangeState { return e.state }

// Start returns the first endpoint, absent when empty.
func (e *RangeEngine) Start() day.Day { return e.start }

// End returns the second endpoint, absent unless complete.
func (e *RangeEngine) End() day.Day { return e.end }

// Hover returns the provisional end, absent when no preview is active.
func (e *RangeEngine) Hover() day.Day { return e.hover }

// Current returns the range as it stands, including an in-progress start.
func (e *RangeEngine) Current() day.Range {
	return day.Range{From: e.start, To: e.end}
}

// Click advances the protocol. The first click starts a new range without
// notifying anyone; the second orders the endpoints, commits and closes.
func (e *RangeEngine) Click(d day.Day) Outcome {
	if d.IsZero() {
		return Outcome{}
	}
	if e.state != RangeStarted {
		e.state, e.start, e.end, e.hover = RangeStarted, d, day.Day{}, day.Day{}
		return Outcome{}
	}
	r := day.NewRange(e.start, d)
	e.state, e.start, e.end, e.hover = RangeComplete, r.From, r.To, day.Day{}
	return Outcome{
		Changed: true,
		Value:   RangeValue(r),
		Close:   true,
	}
}

// HoverDay records a provisional end. Ignored unless a start is pending.
func (e *RangeEngine) HoverDay(d day.Day) {
	if e.state != RangeStarted {
		return
	}
	e.hover = d
}

// Reset empties the range.
func (e *RangeEngine) Reset() Outcome {
	e.state, e.start, e.end, e.hover = RangeEmpty, day.Day{}, day.Day{}, day.Day{}
	return Outcome{Changed: true, Value: RangeValue(day.Range{})}
}

// bounds returns the committed range or the live preview, ordered. It is
// incomplete when neither exists.
func (e *RangeEngine) bounds() day.Range {
	switch e.state {
	case RangeComplete:
		return day.Range{From: e.start, To: e.end}
	case RangeStarted:
		if e.hover.IsZero() {
			return day.Range{}
		}
		return day.NewRange(e.start, e.hover)
	default:
		return day.Range{}
	}
}

// InRange reports whether d lies inside the complete range or the live
// preview.
func (e *RangeEngine) InRange(d day.Day) bool {
	return e.bounds().Contains(d)
}

// IsRangeStart reports whether d is the (possibly provisional) first day.
func (e *RangeEngine) IsRangeStart(d day.Day) bool {
	if r := e.bounds(); r.IsComplete() {
		return r.From.Same(d)
	}
	return e.state == RangeStarted && e.start.Same(d)
}

// IsRangeEnd reports whether d is the (possibly provisional) last day.
func (e *RangeEngine) IsRangeEnd(d day.Day) bool {
	if r := e.bounds(); r.IsComplete() {
		return r.To.Same(d)
	}
	return false
}
