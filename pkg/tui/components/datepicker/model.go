// Package datepicker is the Bubble Tea front end of the picker: a one-line
// trigger and a floating panel holding the day grid or the year list.
package datepicker

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	core "tableflip.dev/datepick/pkg/datepicker"
	"tableflip.dev/datepick/pkg/datepicker/selection"
	"tableflip.dev/datepick/pkg/datepicker/view"
	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/datepicker/grid"
	"tableflip.dev/datepick/pkg/tui/components/calendar"
	"tableflip.dev/datepick/pkg/tui/components/yearlist"
	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/theme"
	"tableflip.dev/datepick/pkg/tui/ui"
)

const (
	defaultWidth = 32
	panelHeight  = 8
)

// Options configures the component.
type Options struct {
	ID     events.ComponentID
	Picker core.Options
	// Theme defaults to theme.Default.
	Theme *theme.Theme
	// Keys defaults to DefaultKeyMap.
	Keys *KeyMap
}

// Model renders and drives one picker.
type Model struct {
	id    events.ComponentID
	ctrl  *core.Controller
	years *yearlist.Model
	keys  KeyMap
	help  help.Model

	focus   day.Day
	focused bool
	width   int

	theme    theme.Theme
	calendar calendar.Options
}

var _ ui.Component = (*Model)(nil)

// New constructs a picker component.
func New(opts Options) *Model {
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	id := opts.ID
	if id == "" {
		id = "datepicker"
	}
	cal := calendar.DefaultOptions()
	cal.RangeStyle = th.Picker.Range
	cal.EdgeStyle = th.Picker.Edge
	ctrl := core.New(opts.Picker)
	m := &Model{
		id:       id,
		ctrl:     ctrl,
		years:    yearlist.New(th.Years),
		keys:     keys,
		help:     help.New(),
		width:    defaultWidth,
		theme:    th,
		calendar: cal,
	}
	m.years.SetSize(defaultWidth, panelHeight)
	m.syncFocus()
	return m
}

// ID returns the component identifier used on emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Controller exposes the underlying state machine.
func (m *Model) Controller() *core.Controller { return m.ctrl }

// Value returns the last committed value.
func (m *Model) Value() selection.Value { return m.ctrl.Value() }

// FocusDay returns the grid cell under the keyboard cursor.
func (m *Model) FocusDay() day.Day { return m.focus }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize bounds the trigger and panel width.
func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
	rows := panelHeight
	if height > 0 && height < rows {
		rows = height
	}
	m.years.SetSize(m.width, rows)
}

// Focus gives the trigger keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return events.FocusCmd(m.id)
}

// Blur drops keyboard focus and closes the panel.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	return tea.Batch(m.signals(m.ctrl.Close()), events.BlurCmd(m.id))
}

// Focused reports whether the trigger has focus.
func (m *Model) Focused() bool { return m.focused }

// Dispose cancels pending timers. The component ignores input afterwards.
func (m *Model) Dispose() { m.ctrl.Dispose() }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case events.DeferredMsg:
		if msg.Component != m.id {
			return m, nil
		}
		return m, m.signals(m.ctrl.Fire(msg.Task))
	case events.ConfigChangeMsg:
		m.ctrl.SetPlaceholder(msg.Placeholder)
		m.ctrl.SetResettable(msg.Resettable)
		return m, events.DebugCmd(m.id, "config", msg.Path)
	case yearlist.SelectMsg:
		cmd := m.signals(m.ctrl.SelectMonthYear(msg.Year, msg.MonthIndex))
		m.syncFocus()
		return m, cmd
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.ctrl.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Reset):
			return m.signals(m.ctrl.Reset())
		case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Down):
			m.syncFocus()
			return m.signals(m.ctrl.Open())
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		return m.signals(m.ctrl.Close())
	case key.Matches(msg, m.keys.Years):
		cmd := m.signals(m.ctrl.ToggleView())
		if m.ctrl.View() == view.Years {
			m.years.SetCurrent(m.ctrl.Cursor())
		}
		return cmd
	}

	if m.ctrl.View() == view.Years {
		_, cmd := m.years.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Up):
		return m.moveFocus(-7)
	case key.Matches(msg, m.keys.Down):
		return m.moveFocus(7)
	case key.Matches(msg, m.keys.Select):
		cmd := m.signals(m.ctrl.SelectDay(m.focus))
		m.syncFocus()
		return cmd
	case key.Matches(msg, m.keys.PrevMonth):
		cmd := m.signals(m.ctrl.PreviousMonth())
		m.syncFocus()
		return cmd
	case key.Matches(msg, m.keys.NextMonth):
		cmd := m.signals(m.ctrl.NextMonth())
		m.syncFocus()
		return cmd
	case key.Matches(msg, m.keys.Today):
		return m.jump(m.ctrl.Today())
	case key.Matches(msg, m.keys.RangeMode):
		cmd := m.signals(m.ctrl.SetRangeMode(m.ctrl.SubMode() != selection.SubRange))
		m.syncFocus()
		return cmd
	case key.Matches(msg, m.keys.Reset):
		return m.signals(m.ctrl.Reset())
	}
	return nil
}

// Goto opens the panel on the day grid with the focus on d.
func (m *Model) Goto(d day.Day) tea.Cmd {
	var signals []core.Signal
	if !m.ctrl.IsOpen() {
		signals = append(signals, m.ctrl.Open()...)
	}
	signals = append(signals, m.ctrl.SelectMonthYear(d.Year, int(d.Month)-1)...)
	signals = append(signals, m.focusOn(d)...)
	return m.signals(signals)
}

// ShowMonth opens the panel on month.
func (m *Model) ShowMonth(month day.Month) tea.Cmd {
	var signals []core.Signal
	if !m.ctrl.IsOpen() {
		signals = append(signals, m.ctrl.Open()...)
	}
	signals = append(signals, m.ctrl.SelectMonthYear(month.Year, int(month.Month)-1)...)
	m.syncFocus()
	return m.signals(signals)
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	return m.jump(m.focus.AddDays(delta))
}

func (m *Model) jump(d day.Day) tea.Cmd {
	return m.signals(m.focusOn(d))
}

// focusOn moves the focus cell to d, paging the grid when d leaves the
// cursor month, and previews d as a range end.
func (m *Model) focusOn(d day.Day) []core.Signal {
	var signals []core.Signal
	for {
		cursor := m.ctrl.Cursor()
		if cursor.Contains(d) {
			break
		}
		if d.Before(cursor.First()) {
			signals = append(signals, m.ctrl.PreviousMonth()...)
		} else {
			signals = append(signals, m.ctrl.NextMonth()...)
		}
	}
	m.focus = d
	return append(signals, m.ctrl.HoverDay(d)...)
}

// syncFocus keeps the focus cell inside the cursor month. A fresh focus
// lands on the selected day or today when either is visible.
func (m *Model) syncFocus() {
	cursor := m.ctrl.Cursor()
	if !m.focus.IsZero() {
		if !cursor.Contains(m.focus) {
			m.focus = day.Day{Year: cursor.Year, Month: cursor.Month, Day: min(m.focus.Day, cursor.Days())}
		}
		return
	}
	if d, ok := m.ctrl.Value().Day(); ok && cursor.Contains(d) {
		m.focus = d
		return
	}
	if today := m.ctrl.Today(); cursor.Contains(today) {
		m.focus = today
		return
	}
	m.focus = cursor.First()
}

// signals turns controller output into Bubble Tea commands.
func (m *Model) signals(signals []core.Signal) tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range signals {
		switch s := s.(type) {
		case core.ValueChanged:
			if s.Restated {
				cmds = append(cmds, events.DateRestateCmd(m.id, s.Value))
				continue
			}
			cmds = append(cmds, events.DateChangeCmd(m.id, s.Value))
		case core.ModeChanged:
			cmds = append(cmds, events.DateModeCmd(m.id, s.Mode))
		case core.OpenRequested:
			cmds = append(cmds, events.PanelCmd(m.id, events.PanelOpen))
		case core.CloseRequested:
			cmds = append(cmds, events.PanelCmd(m.id, events.PanelClosed))
		case core.ScrollToYear:
			m.years.ScrollTo(s.Year)
		case core.Schedule:
			cmds = append(cmds, events.DeferredCmd(m.id, s.Task))
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// View renders the trigger, with the panel below it while open.
func (m *Model) View() string {
	if !m.ctrl.IsOpen() {
		return m.TriggerView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.TriggerView(), m.PanelView())
}

// TriggerView renders the one-line field.
func (m *Model) TriggerView() string {
	frame := m.theme.Trigger.Frame
	if m.focused {
		frame = m.theme.Trigger.Focused
	}
	inner := max(m.width-frame.GetHorizontalFrameSize(), 4)

	suffix := ""
	if m.ctrl.Resettable() && m.ctrl.HasSelection() {
		suffix = " " + m.theme.Trigger.Reset.Render(theme.GlyphReset)
	}
	room := inner - 2 - lipgloss.Width(suffix)
	text := truncate.StringWithTail(m.ctrl.Text(), uint(max(room, 1)), "…")
	if m.ctrl.HasSelection() {
		text = m.theme.Trigger.Text.Render(text)
	} else {
		text = m.theme.Trigger.Placeholder.Render(text)
	}
	line := theme.GlyphCalendar + " " + text
	if pad := inner - lipgloss.Width(line) - lipgloss.Width(suffix); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return frame.Width(m.width).Render(line + suffix)
}

// PanelView renders the floating panel.
func (m *Model) PanelView() string {
	var body []string
	if m.ctrl.View() == view.Years {
		body = append(body, m.theme.Picker.Header.Render(m.ctrl.Header()), m.years.View())
	} else {
		body = append(body, m.header(), m.grid())
	}
	if m.ctrl.Mode() == selection.ModeDuo {
		body = append(body, m.modeSwitch())
	}
	body = append(body, m.theme.Footer.Help.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return m.theme.Picker.Frame.Render(strings.Join(body, "\n"))
}

func (m *Model) header() string {
	title := m.theme.Picker.Header.Render(m.ctrl.Header())
	prev := m.theme.Picker.Nav.Render(theme.GlyphPrev)
	next := m.theme.Picker.Nav.Render(theme.GlyphNext)
	gridWidth := lipgloss.Width(grid.Weekdays)
	gap := max(gridWidth-lipgloss.Width(title)-4, 2)
	left := gap / 2
	return prev + strings.Repeat(" ", left+1) + title + strings.Repeat(" ", gap-left+1) + next
}

func (m *Model) grid() string {
	return calendar.Render(m.ctrl.Grid(), func(d day.Day) grid.Marks {
		marks := m.ctrl.Marks(d)
		marks.Focused = d.Same(m.focus)
		return marks
	}, m.calendar)
}

func (m *Model) modeSwitch() string {
	label := m.theme.Picker.Label.Render("Range")
	if m.ctrl.SubMode() == selection.SubRange {
		return label + " " + m.theme.Picker.SwitchOn.Render(" on ")
	}
	return label + " " + m.theme.Picker.SwitchOff.Render(" off ")
}
