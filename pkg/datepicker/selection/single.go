package selection

import "tableflip.dev/datepick/pkg/day"

// Outcome is what a selection command asks of its host. The zero Outcome
// asks for nothing.
type Outcome struct {
	// Changed is set when Value should be delivered to the consumer.
	Changed bool
	Value   Value
	// Close asks the host to close the panel.
	Close bool
	// Focus, when set, moves the navigation cursor to that day's month.
	Focus day.Day
	// ModeChanged is set on every duo flip; SubMode is the new behavior.
	ModeChanged bool
	SubMode     SubMode
}

// SingleEngine commits one day at a time.
type SingleEngine struct {
	selected day.Day
}

// NewSingleEngine seeds the engine; an absent day starts empty.
func NewSingleEngine(selected day.Day) *SingleEngine {
	return &SingleEngine{selected: selected}
}

// Selected returns the committed day, absent when nothing is selected.
func (e *SingleEngine) Selected() day.Day { return e.selected }

// Commit selects d, closes the panel and moves the cursor to d.
func (e *SingleEngine) Commit(d day.Day) Outcome {
	if d.IsZero() {
		return Outcome{}
	}
	e.selected = d
	return Outcome{
		Changed: true,
		Value:   SingleValue(d),
		Close:   true,
		Focus:   d,
	}
}

// Reset clears the selection.
func (e *SingleEngine) Reset() Outcome {
	e.selected = day.Day{}
	return Outcome{Changed: true, Value: NoValue()}
}

// IsSelected reports whether d is the committed day.
func (e *SingleEngine) IsSelected(d day.Day) bool {
	return e.selected.Same(d)
}
