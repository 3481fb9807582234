package eventviewer

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/datepicker/selection"
	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/tui/events"
)

func TestRecordPickerEvents(t *testing.T) {
	m := NewModel(2)
	m.SetSize(60, 8)

	v := selection.SingleValue(day.New(2024, time.March, 10))
	if !m.Record(events.DateChangeMsg{Component: "due", Value: v}) {
		t.Fatal("date changes should be recorded")
	}
	m.Record(events.DebugMsg{Component: "due", Context: "config", Detail: "reload"})
	m.Record(events.PanelMsg{Component: "due", State: events.PanelOpen})

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("log should cap at 2 entries, got %d", len(entries))
	}
	if entries[0].Summary != "Panel" || entries[1].Summary != "Debug" {
		t.Fatalf("unexpected order %q, %q", entries[0].Summary, entries[1].Summary)
	}
	if entries[1].Level != LevelWarn {
		t.Fatal("debug notes should be highlighted")
	}
	if entries[0].Source != "due" {
		t.Fatalf("unexpected source %q", entries[0].Source)
	}
}

func TestRecordIgnoresOtherMessages(t *testing.T) {
	m := NewModel(0)
	if m.Record("tick") {
		t.Fatal("plain messages have no description")
	}
	if len(m.Entries()) != 0 {
		t.Fatal("nothing should be logged")
	}
}

func TestViewShowsEntries(t *testing.T) {
	m := NewModel(10)
	m.SetSize(80, 6)
	m.Record(events.DateModeMsg{Component: "due", Mode: selection.SubRange})
	if got := m.View(); !strings.Contains(got, "DateMode") {
		t.Fatalf("view missing entry:\n%s", got)
	}
}
