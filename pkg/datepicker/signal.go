package datepicker

import (
	"fmt"

	"tableflip.dev/datepick/pkg/datepicker/deferred"
	"tableflip.dev/datepick/pkg/datepicker/selection"
)

// Signal is something the controller asks its host to deliver or do.
type Signal interface {
	Describe() string
}

// ValueChanged delivers a new committed value. Restated is set when a duo
// flip re-announces the value the newly acting engine already held.
type ValueChanged struct {
	Value    selection.Value
	Restated bool
}

func (s ValueChanged) Describe() string {
	return fmt.Sprintf(`kind:%q value:%q restated:%t`, s.Value.Kind(), s.Value, s.Restated)
}

// ModeChanged announces a duo sub-mode flip.
type ModeChanged struct {
	Mode selection.SubMode
}

func (s ModeChanged) Describe() string {
	return fmt.Sprintf(`mode:%q`, s.Mode)
}

// OpenRequested asks the host to show the panel.
type OpenRequested struct{}

func (OpenRequested) Describe() string { return `panel:"open"` }

// CloseRequested asks the host to hide the panel.
type CloseRequested struct{}

func (CloseRequested) Describe() string { return `panel:"close"` }

// ScrollToYear asks the host to bring Year into view in the year list.
type ScrollToYear struct {
	Year int
}

func (s ScrollToYear) Describe() string {
	return fmt.Sprintf(`year:%d`, s.Year)
}

// Schedule asks the host to call Fire with Task once Task.Delay elapses.
type Schedule struct {
	Task deferred.Task
}

func (s Schedule) Describe() string {
	return fmt.Sprintf(`task:%d kind:%q delay:%s`, s.Task.ID, s.Task.Kind, s.Task.Delay)
}
