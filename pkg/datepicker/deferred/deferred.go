// Package deferred tracks cancelable delayed tasks for single-threaded
// state machines. A Queue never runs anything itself: hosts arrange for
// Take to be called once a task is due, and a task that was canceled in the
// meantime is simply reported as gone.
package deferred

import (
	"sort"
	"time"
)

// Kind names what a task does when it fires.
type Kind int

const (
	// KindScrollToYear scrolls the year list to the cursor year.
	KindScrollToYear Kind = iota + 1
	// KindResetView returns the picker to the day grid after closing.
	KindResetView
)

func (k Kind) String() string {
	switch k {
	case KindScrollToYear:
		return "scroll-to-year"
	case KindResetView:
		return "reset-view"
	default:
		return "unknown"
	}
}

// Task is a scheduled unit of work.
type Task struct {
	ID    uint64
	Kind  Kind
	Delay time.Duration
	Due   time.Time
}

// Queue holds pending tasks keyed by id.
type Queue struct {
	next    uint64
	pending map[uint64]Task
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{pending: make(map[uint64]Task)}
}

// Schedule records a task due delay after now.
func (q *Queue) Schedule(kind Kind, delay time.Duration, now time.Time) Task {
	q.next++
	t := Task{ID: q.next, Kind: kind, Delay: delay, Due: now.Add(delay)}
	q.pending[t.ID] = t
	return t
}

// Cancel invalidates the task. Canceling an unknown or finished task is a
// no-op.
func (q *Queue) Cancel(id uint64) {
	delete(q.pending, id)
}

// CancelAll invalidates everything.
func (q *Queue) CancelAll() {
	q.pending = make(map[uint64]Task)
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int { return len(q.pending) }

// Take removes and returns the task if it is still pending.
func (q *Queue) Take(id uint64) (Task, bool) {
	t, ok := q.pending[id]
	if ok {
		delete(q.pending, id)
	}
	return t, ok
}

// Due removes and returns every task due at or before now, oldest first.
func (q *Queue) Due(now time.Time) []Task {
	var due []Task
	for id, t := range q.pending {
		if !t.Due.After(now) {
			due = append(due, t)
			delete(q.pending, id)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].Due.Equal(due[j].Due) {
			return due[i].ID < due[j].ID
		}
		return due[i].Due.Before(due[j].Due)
	})
	return due
}
