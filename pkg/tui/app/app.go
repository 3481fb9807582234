// Package app hosts one or more pickers in a full-screen Bubble Tea program
// with a help modal and an optional event log.
package app

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/config"
	"tableflip.dev/datepick/pkg/datepicker/selection"
	"tableflip.dev/datepick/pkg/tui/components/command"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
	"tableflip.dev/datepick/pkg/tui/components/eventviewer"
	"tableflip.dev/datepick/pkg/tui/components/help"
	"tableflip.dev/datepick/pkg/tui/components/yearlist"
	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/theme"
	"tableflip.dev/datepick/pkg/tui/ui/overlay"
)

const (
	minEventHeight = 4
	maxEventHeight = 12
)

// Options configures the program.
type Options struct {
	Pickers []datepicker.Options
	// Title is shown above the pickers.
	Title string
	// Events shows the event log under the pickers.
	Events bool
	// ExitOnCommit quits once any picker commits a non-empty value.
	ExitOnCommit bool
	// Config delivers reloaded settings; nil disables live reload.
	Config <-chan config.Config
	// Theme defaults to theme.Default.
	Theme *theme.Theme
	// Trace writes every picker event to the standard logger.
	Trace bool
	// Width caps the trigger width; zero means 40 cells.
	Width int
}

// Model is the root program model.
type Model struct {
	pickers []*datepicker.Model
	focus   int

	log      *eventviewer.Model
	help     *help.Model
	showHelp bool
	bar      *command.Model

	title        string
	exitOnCommit bool
	trace        bool
	pickerWidth  int
	configCh     <-chan config.Config

	width  int
	height int
	theme  theme.Theme

	result    selection.Value
	committed bool
}

// New builds the root model.
func New(opts Options) *Model {
	m := &Model{
		title:        opts.Title,
		exitOnCommit: opts.ExitOnCommit,
		trace:        opts.Trace,
		pickerWidth:  opts.Width,
		configCh:     opts.Config,
		theme:        theme.Default(),
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	}
	if m.pickerWidth <= 0 {
		m.pickerWidth = 40
	}
	for _, po := range opts.Pickers {
		if po.Theme == nil {
			po.Theme = &m.theme
		}
		m.pickers = append(m.pickers, datepicker.New(po))
	}
	if opts.Events {
		m.log = eventviewer.NewModel(400)
	}
	m.bar = command.NewModel(command.Options{
		ID:           "goto",
		PromptPrefix: "go to: ",
		Placeholder:  "May 2024, 2024-05-01, today+1w",
		Styles:       m.theme.Command,
	})
	m.bar.SetSuggestions(gotoSuggestions)
	return m
}

// Run starts the program and returns the last committed value, false when
// the user quit without committing.
func Run(opts Options, popts ...tea.ProgramOption) (selection.Value, bool, error) {
	p := tea.NewProgram(New(opts), append([]tea.ProgramOption{tea.WithAltScreen()}, popts...)...)
	final, err := p.Run()
	if err != nil {
		return selection.NoValue(), false, err
	}
	m, ok := final.(*Model)
	if !ok {
		return selection.NoValue(), false, nil
	}
	v, committed := m.Result()
	return v, committed, nil
}

// Result returns the last committed value.
func (m *Model) Result() (selection.Value, bool) { return m.result, m.committed }

// Pickers returns the hosted pickers.
func (m *Model) Pickers() []*datepicker.Model { return m.pickers }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if len(m.pickers) > 0 {
		cmds = append(cmds, m.pickers[0].Focus())
	}
	cmds = append(cmds, m.waitConfig())
	return tea.Batch(cmds...)
}

func (m *Model) waitConfig() tea.Cmd {
	if m.configCh == nil {
		return nil
	}
	ch := m.configCh
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return events.ConfigChangeMsg{Path: cfg.File, Placeholder: cfg.Placeholder, Resettable: cfg.Reset}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.log != nil {
		m.log.Record(msg)
	}
	if m.trace {
		if d, ok := msg.(interface{ Describe() string }); ok {
			log.Printf("%s %s", strings.TrimPrefix(fmt.Sprintf("%T", msg), "events."), d.Describe())
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case help.CloseMsg:
		m.showHelp = false
		return m, nil
	case events.ConfigChangeMsg:
		cmds := []tea.Cmd{m.waitConfig()}
		for _, p := range m.pickers {
			_, cmd := p.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case events.DeferredMsg:
		if p := m.picker(msg.Component); p != nil {
			_, cmd := p.Update(msg)
			return m, cmd
		}
		return m, nil
	case events.DateChangeMsg:
		m.result = msg.Value
		m.committed = complete(msg.Value)
		if m.exitOnCommit && m.committed && !msg.Restated {
			return m, tea.Quit
		}
		return m, nil
	case yearlist.SelectMsg:
		return m, m.forward(msg)
	case events.CommandSubmitMsg:
		return m, m.gotoTarget(msg.Value)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.showHelp {
		_, cmd := m.help.Update(msg)
		return cmd
	}
	if m.bar.InInputMode() {
		_, cmd := m.bar.Update(msg)
		return cmd
	}
	m.bar.SetStatus("")
	open := m.openPicker() != nil
	switch msg.String() {
	case ":":
		if len(m.pickers) > 0 {
			_, cmd := m.bar.Update(msg)
			return cmd
		}
	case "?":
		m.showHelp = true
		if m.help == nil {
			m.help = help.New(m.theme.Modal, 72, 20)
		}
		m.layout()
		return nil
	case "q":
		if !open {
			return tea.Quit
		}
	case "esc":
		if !open {
			return tea.Quit
		}
	case "tab":
		if !open {
			return m.cycle(1)
		}
	case "shift+tab":
		if !open {
			return m.cycle(-1)
		}
	}
	return m.forward(msg)
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if len(m.pickers) == 0 {
		return nil
	}
	_, cmd := m.pickers[m.focus].Update(msg)
	return cmd
}

// gotoTarget jumps the focused picker to the month or day named by s.
func (m *Model) gotoTarget(s string) tea.Cmd {
	if len(m.pickers) == 0 {
		return nil
	}
	p := m.pickers[m.focus]
	t, err := parseTarget(s, p.Controller().Today())
	if err != nil {
		m.bar.SetStatus(err.Error())
		return nil
	}
	if !t.day.IsZero() {
		return p.Goto(t.day)
	}
	return p.ShowMonth(t.month)
}

func (m *Model) cycle(delta int) tea.Cmd {
	if len(m.pickers) < 2 {
		return nil
	}
	blur := m.pickers[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.pickers)) % len(m.pickers)
	return tea.Batch(blur, m.pickers[m.focus].Focus())
}

func (m *Model) picker(id events.ComponentID) *datepicker.Model {
	for _, p := range m.pickers {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

func (m *Model) openPicker() *datepicker.Model {
	for _, p := range m.pickers {
		if p.Controller().IsOpen() {
			return p
		}
	}
	return nil
}

func complete(v selection.Value) bool {
	switch v.Kind() {
	case selection.KindSingle:
		return true
	case selection.KindRange:
		r, _ := v.Range()
		return r.IsComplete()
	default:
		return false
	}
}

func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	for _, p := range m.pickers {
		p.SetSize(min(m.width-2, m.pickerWidth), 0)
	}
	if m.log != nil {
		m.log.SetSize(m.width, m.eventHeight())
	}
	m.bar.SetWidth(m.width)
	if m.help != nil {
		m.help.SetSize(min(m.width-4, 72), min(m.height-2, 30))
	}
}

func (m *Model) eventHeight() int {
	if m.log == nil {
		return 0
	}
	h := min(max(m.height/3, minEventHeight), maxEventHeight)
	if m.height-h < 12 {
		return 0
	}
	return h
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Resizing…"
	}

	var (
		parts  []string
		y      int
		panel  string
		anchor overlay.Placement
	)
	add := func(block string) {
		parts = append(parts, block)
		y += lipgloss.Height(block)
	}
	if m.title != "" {
		add(m.theme.Modal.Title.Render(m.title))
		add("")
	}
	for i, p := range m.pickers {
		trigger := p.TriggerView()
		if p.Controller().IsOpen() {
			anchor = overlay.Below(0, y, trigger)
			panel = p.PanelView()
		}
		add(trigger)
		if i < len(m.pickers)-1 {
			add("")
		}
	}

	footer := m.theme.Footer.Help.Render("tab next · : go to · ? help · q quit")
	if v, ok := m.Result(); ok {
		footer = m.theme.Footer.Value.Render(v.String()) + "  " + footer
	}
	if status := m.bar.Status(); status != "" {
		footer = m.theme.Footer.Status.Render(status) + "  " + footer
	}
	if m.bar.InInputMode() {
		footer = m.bar.View()
	}

	bodyHeight := m.height - m.eventHeight() - 1
	body := lipgloss.NewStyle().Width(m.width).Height(max(bodyHeight, 1)).MaxHeight(max(bodyHeight, 1)).
		Render(strings.Join(parts, "\n"))
	if panel != "" {
		body = overlay.Compose(body, m.width, max(bodyHeight, 1), panel, anchor)
	}
	if suggestions := m.bar.SuggestionView(); suggestions != "" {
		y := max(bodyHeight-lipgloss.Height(suggestions), 0)
		body = overlay.Compose(body, m.width, max(bodyHeight, 1), suggestions, overlay.Placement{Anchored: true, Y: y})
	}

	view := lipgloss.JoinVertical(lipgloss.Left, body, footer)
	if h := m.eventHeight(); h > 0 {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.log.View())
	}
	if m.showHelp && m.help != nil {
		view = overlay.Compose(view, m.width, m.height, m.help.View(), overlay.Placement{})
	}
	return view
}
