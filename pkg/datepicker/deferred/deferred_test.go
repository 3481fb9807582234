package deferred

import (
	"testing"
	"time"
)

func TestCanceledTaskIsNotTaken(t *testing.T) {
	q := NewQueue()
	now := time.Unix(0, 0)
	task := q.Schedule(KindResetView, 200*time.Millisecond, now)
	q.Cancel(task.ID)
	if _, ok := q.Take(task.ID); ok {
		t.Fatal("canceled task should not be taken")
	}
	q.Cancel(task.ID)
}

func TestDueOrdersAndRemoves(t *testing.T) {
	q := NewQueue()
	now := time.Unix(0, 0)
	late := q.Schedule(KindResetView, 200*time.Millisecond, now)
	early := q.Schedule(KindScrollToYear, 100*time.Millisecond, now)

	if got := q.Due(now.Add(50 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("expected nothing due at 50ms, got %v", got)
	}
	got := q.Due(now.Add(250 * time.Millisecond))
	if len(got) != 2 || got[0].ID != early.ID || got[1].ID != late.ID {
		t.Fatalf("unexpected due order %+v", got)
	}
	if q.Len() != 0 {
		t.Fatalf("expected queue drained, %d left", q.Len())
	}
}

func TestCancelAll(t *testing.T) {
	q := NewQueue()
	now := time.Unix(0, 0)
	reset := q.Schedule(KindResetView, time.Second, now)
	scroll := q.Schedule(KindScrollToYear, time.Second, now)
	q.CancelAll()
	if q.Len() != 0 {
		t.Fatal("CancelAll left tasks behind")
	}
	for _, task := range []Task{reset, scroll} {
		if _, ok := q.Take(task.ID); ok {
			t.Fatalf("%s task should be gone", task.Kind)
		}
	}
}
