// Package view tracks which grid the picker panel shows and the timed
// transitions around opening and closing it.
package view

import (
	"time"

	"tableflip.dev/datepick/pkg/datepicker/deferred"
)

// State is the visible grid.
type State int

const (
	// Days shows the month day grid.
	Days State = iota
	// Years shows the year list.
	Years
)

func (s State) String() string {
	if s == Years {
		return "years"
	}
	return "days"
}

const (
	// ScrollDelay lets the year list lay out before scrolling to the cursor.
	ScrollDelay = 100 * time.Millisecond
	// ResetDelay must exceed the panel close animation.
	ResetDelay = 200 * time.Millisecond
)

// Machine is the Days/Years toggle. Timed work is recorded in the shared
// queue and applied when the host fires it.
type Machine struct {
	state State
	queue *deferred.Queue
	reset uint64
}

// New returns a machine in Days using q for its timers.
func New(q *deferred.Queue) *Machine {
	return &Machine{state: Days, queue: q}
}

// State returns the visible grid.
func (m *Machine) State() State { return m.state }

// Toggle flips the grid. Entering Years schedules a scroll to the cursor
// year; the returned task is zero when nothing was scheduled.
func (m *Machine) Toggle(now time.Time) deferred.Task {
	if m.state == Years {
		m.state = Days
		return deferred.Task{}
	}
	m.state = Years
	return m.queue.Schedule(deferred.KindScrollToYear, ScrollDelay, now)
}

// ForceDays returns to the day grid immediately.
func (m *Machine) ForceDays() {
	m.state = Days
}

// PanelClosed schedules the return to Days when the panel closes while the
// year list is showing.
func (m *Machine) PanelClosed(now time.Time) deferred.Task {
	if m.state != Years {
		return deferred.Task{}
	}
	m.queue.Cancel(m.reset)
	t := m.queue.Schedule(deferred.KindResetView, ResetDelay, now)
	m.reset = t.ID
	return t
}

// PanelOpened cancels a pending return to Days, keeping the view the user
// left.
func (m *Machine) PanelOpened() {
	if m.reset != 0 {
		m.queue.Cancel(m.reset)
		m.reset = 0
	}
}

// Apply runs a fired task. It reports whether the task changed or
// confirmed anything: a scroll only counts while Years is still showing.
func (m *Machine) Apply(t deferred.Task) bool {
	switch t.Kind {
	case deferred.KindResetView:
		if t.ID == m.reset {
			m.reset = 0
		}
		m.state = Days
		return true
	case deferred.KindScrollToYear:
		return m.state == Years
	default:
		return false
	}
}
