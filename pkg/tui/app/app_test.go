package app

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/config"
	core "tableflip.dev/datepick/pkg/datepicker"
	"tableflip.dev/datepick/pkg/datepicker/selection"
	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
	"tableflip.dev/datepick/pkg/tui/events"
)

func fixedNow() time.Time { return time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC) }

func newApp(opts Options) *Model {
	if len(opts.Pickers) == 0 {
		opts.Pickers = []datepicker.Options{
			{ID: "start", Picker: core.Options{Mode: selection.ModeSingle, Placeholder: "Start", Now: fixedNow}},
			{ID: "span", Picker: core.Options{Mode: selection.ModeRange, Now: fixedNow}},
		}
	}
	m := New(opts)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m
}

func TestViewListsPickers(t *testing.T) {
	m := newApp(Options{Title: "Dates", Events: true})
	got := m.View()
	for _, want := range []string{"Dates", "Start", core.DefaultRangePlaceholder, "Events"} {
		if !strings.Contains(got, want) {
			t.Fatalf("view missing %q:\n%s", want, got)
		}
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m := newApp(Options{})
	m.Init()
	if !m.Pickers()[0].Focused() {
		t.Fatal("first picker should start focused")
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.Pickers()[0].Focused() || !m.Pickers()[1].Focused() {
		t.Fatal("tab should move focus to the second picker")
	}
}

func TestPanelOverlaysBody(t *testing.T) {
	m := newApp(Options{})
	m.Init()
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.Pickers()[0].Controller().IsOpen() {
		t.Fatal("enter should open the focused picker")
	}
	if got := m.View(); !strings.Contains(got, "March 2024") {
		t.Fatalf("panel should be drawn:\n%s", got)
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q should not quit while a panel is open")
		}
	}
}

func TestExitOnCommit(t *testing.T) {
	m := newApp(Options{ExitOnCommit: true})

	_, cmd := m.Update(events.DateChangeMsg{Component: "span", Value: selection.RangeValue(day.Range{From: day.New(2024, time.March, 1)})})
	if cmd != nil {
		t.Fatal("an open range should not quit")
	}

	v := selection.SingleValue(day.New(2024, time.March, 3))
	_, cmd = m.Update(events.DateChangeMsg{Component: "start", Value: v})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if got, ok := m.Result(); !ok || got != v {
		t.Fatalf("unexpected result %v", got)
	}
}

var cmdType = reflect.TypeOf((*tea.Cmd)(nil)).Elem()

// run executes cmd, expanding batches and sequences, and returns the
// messages it produced.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if v := reflect.ValueOf(msg); v.IsValid() && v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			c, _ := v.Index(i).Interface().(tea.Cmd)
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestModeFlipDoesNotExit(t *testing.T) {
	seed := selection.SingleValue(day.New(2024, time.January, 1))
	m := newApp(Options{
		ExitOnCommit: true,
		Pickers: []datepicker.Options{
			{ID: "duo", Picker: core.Options{Initial: seed, Now: fixedNow}},
		},
	})
	m.Init()

	var sawRestate bool
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: 'r', Text: "r"},
		{Code: 'r', Text: "r"},
	} {
		_, cmd := m.Update(key)
		for _, msg := range run(cmd) {
			if change, ok := msg.(events.DateChangeMsg); ok && change.Restated {
				sawRestate = true
			}
			if _, ok := msg.(tea.QuitMsg); ok {
				t.Fatalf("picker emitted quit on %v", key)
			}
			_, next := m.Update(msg)
			for _, after := range run(next) {
				if _, ok := after.(tea.QuitMsg); ok {
					t.Fatalf("toggling the range switch quit after %T", msg)
				}
			}
		}
	}
	if !sawRestate {
		t.Fatal("flipping should restate the held value")
	}
	if got, ok := m.Result(); !ok || got != seed {
		t.Fatalf("flip back should leave the seeded day current, got %v %t", got, ok)
	}
}

func TestResetClearsCommit(t *testing.T) {
	m := newApp(Options{})
	m.Update(events.DateChangeMsg{Component: "start", Value: selection.SingleValue(day.New(2024, time.March, 3))})
	if _, ok := m.Result(); !ok {
		t.Fatal("a picked day should count as committed")
	}
	m.Update(events.DateChangeMsg{Component: "start", Value: selection.NoValue()})
	if _, ok := m.Result(); ok {
		t.Fatal("a reset should leave nothing committed")
	}
	m.Update(events.DateChangeMsg{Component: "span", Value: selection.RangeValue(day.Range{From: day.New(2024, time.March, 1)})})
	if _, ok := m.Result(); ok {
		t.Fatal("an open range is not a commit")
	}
}

func TestConfigReload(t *testing.T) {
	ch := make(chan config.Config, 1)
	m := newApp(Options{Config: ch})
	ch <- config.Config{File: "x.yaml", Placeholder: "Reloaded", Reset: true}

	msg := m.waitConfig()()
	change, ok := msg.(events.ConfigChangeMsg)
	if !ok {
		t.Fatalf("unexpected msg %T", msg)
	}
	m.Update(change)
	for _, p := range m.Pickers() {
		if p.Controller().Placeholder() != "Reloaded" {
			t.Fatalf("picker %s kept %q", p.ID(), p.Controller().Placeholder())
		}
	}

	close(ch)
	if msg := m.waitConfig()(); msg != nil {
		t.Fatalf("closed channel should yield nil, got %T", msg)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newApp(Options{})
	m.Update(tea.KeyPressMsg{Code: '?', Text: "?"})
	if !m.showHelp {
		t.Fatal("? should open help")
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should close help")
	}
	m.Update(cmd())
	if m.showHelp {
		t.Fatal("help should be closed")
	}
}

func TestGotoJumpsFocusedPicker(t *testing.T) {
	m := newApp(Options{})
	m.Init()
	m.Update(tea.KeyPressMsg{Code: ':', Text: ":"})
	if got := m.View(); !strings.Contains(got, "today") {
		t.Fatalf("suggestions should be drawn:\n%s", got)
	}
	m.Update(events.CommandSubmitMsg{Component: "goto", Value: "today+3w"})
	p := m.Pickers()[0]
	if !p.Controller().IsOpen() {
		t.Fatal("go to should open the picker")
	}
	if want := day.New(2024, time.April, 5); !p.FocusDay().Same(want) {
		t.Fatalf("expected focus on %v, got %v", want, p.FocusDay())
	}
}

func TestGotoReportsBadInput(t *testing.T) {
	m := newApp(Options{})
	m.Update(events.CommandSubmitMsg{Component: "goto", Value: "someday"})
	if got := m.View(); !strings.Contains(got, `go to "someday"`) {
		t.Fatalf("error should be shown in the footer:\n%s", got)
	}
	if m.Pickers()[0].Controller().IsOpen() {
		t.Fatal("a bad target should not open the picker")
	}
}

func TestParseTarget(t *testing.T) {
	today := day.New(2024, time.March, 15)
	tests := []struct {
		in    string
		month day.Month
		day   day.Day
	}{
		{in: "May 2024", month: day.Month{Year: 2024, Month: time.May}},
		{in: "2023-11", month: day.Month{Year: 2023, Month: time.November}},
		{in: "2024-06-02", day: day.New(2024, time.June, 2)},
		{in: "-1w", day: day.New(2024, time.March, 8)},
		{in: "2024-01-10..2024-01-20", day: day.New(2024, time.January, 10)},
	}
	for _, tt := range tests {
		got, err := parseTarget(tt.in, today)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if got.month != tt.month || got.day != tt.day {
			t.Fatalf("%q: unexpected target %+v", tt.in, got)
		}
	}
	if _, err := parseTarget("none", today); err == nil {
		t.Fatal("an empty value has nowhere to go")
	}
}
