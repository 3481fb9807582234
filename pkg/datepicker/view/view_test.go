package view

import (
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/datepicker/deferred"
)

func fire(q *deferred.Queue, m *Machine, now time.Time) {
	for _, t := range q.Due(now) {
		m.Apply(t)
	}
}

func TestToggleSchedulesScroll(t *testing.T) {
	q := deferred.NewQueue()
	m := New(q)
	start := time.Unix(0, 0)

	task := m.Toggle(start)
	if m.State() != Years {
		t.Fatalf("expected years, got %v", m.State())
	}
	if task.Kind != deferred.KindScrollToYear || task.Delay != ScrollDelay {
		t.Fatalf("unexpected task %+v", task)
	}
	if got := m.Toggle(start); got.ID != 0 || m.State() != Days {
		t.Fatalf("toggle back should not schedule: %+v %v", got, m.State())
	}

	due := q.Due(start.Add(ScrollDelay))
	if len(due) != 1 {
		t.Fatalf("expected scroll to still fire, got %d", len(due))
	}
	if m.Apply(due[0]) {
		t.Fatal("scroll should be a no-op once the view left years")
	}
}

func TestReopenBeforeResetKeepsYears(t *testing.T) {
	q := deferred.NewQueue()
	m := New(q)
	start := time.Unix(0, 0)
	m.Toggle(start)
	fire(q, m, start.Add(ScrollDelay))

	closed := start.Add(time.Second)
	m.PanelClosed(closed)
	fire(q, m, closed.Add(50*time.Millisecond))
	m.PanelOpened()
	fire(q, m, closed.Add(time.Second))

	if m.State() != Years {
		t.Fatalf("expected years after quick reopen, got %v", m.State())
	}
}

func TestResetAfterDelay(t *testing.T) {
	q := deferred.NewQueue()
	m := New(q)
	start := time.Unix(0, 0)
	m.Toggle(start)

	m.PanelClosed(start)
	fire(q, m, start.Add(ResetDelay+10*time.Millisecond))
	m.PanelOpened()
	if m.State() != Days {
		t.Fatalf("expected days after reset delay, got %v", m.State())
	}
}

func TestCloseInDaysSchedulesNothing(t *testing.T) {
	q := deferred.NewQueue()
	m := New(q)
	if task := m.PanelClosed(time.Unix(0, 0)); task.ID != 0 || q.Len() != 0 {
		t.Fatalf("unexpected task %+v", task)
	}
}

func TestRepeatedCloseKeepsOneReset(t *testing.T) {
	q := deferred.NewQueue()
	m := New(q)
	start := time.Unix(0, 0)
	m.Toggle(start)
	q.CancelAll()

	m.PanelClosed(start)
	m.PanelClosed(start.Add(10 * time.Millisecond))
	if q.Len() != 1 {
		t.Fatalf("expected a single pending reset, got %d", q.Len())
	}
}
