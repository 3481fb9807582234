// Package command provides the one-line prompt used to jump the focused
// picker to a typed date, with a filtered list of suggestions above it.
package command

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// Options configures the command bar.
type Options struct {
	ID           events.ComponentID
	PromptPrefix string
	Placeholder  string
	StatusText   string
	Styles       theme.CommandTheme
}

// SuggestionOption represents a possible entry the prompt can surface.
type SuggestionOption struct {
	Name        string
	Description string
}

// Mode identifies the command component operating state.
type Mode int

const (
	// ModePassive displays the command bar in status mode.
	ModePassive Mode = iota
	// ModeInput places the command bar in interactive input mode.
	ModeInput
)

// Model renders a command bar and its suggestion list.
type Model struct {
	id     events.ComponentID
	mode   Mode
	width  int
	styles theme.CommandTheme

	status       string
	prompt       textinput.Model
	promptPrefix string

	suggestions         []SuggestionOption
	filteredSuggestions []SuggestionOption
	suggestionLimit     int
	suggestionIndex     int
	suggestionOriginal  string
	windowStart         int
}

// NewModel constructs a command bar with the provided options.
func NewModel(opts Options) *Model {
	prompt := textinput.New()
	prompt.Placeholder = opts.Placeholder
	prompt.Prompt = ""
	prompt.Blur()

	id := opts.ID
	if id == "" {
		id = events.ComponentID("command")
	}

	return &Model{
		id:              id,
		mode:            ModePassive,
		width:           40,
		styles:          opts.Styles,
		status:          opts.StatusText,
		prompt:          prompt,
		promptPrefix:    opts.PromptPrefix,
		suggestionLimit: 6,
		suggestionIndex: -1,
	}
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetWidth sizes the bar.
func (m *Model) SetWidth(width int) {
	m.width = max(width, 1)
	promptWidth := m.width - lipgloss.Width(m.promptPrefix)
	if promptWidth < 5 {
		promptWidth = max(m.width-1, 1)
	}
	m.prompt.SetWidth(promptWidth)
}

// SetStatus updates the passive status text.
func (m *Model) SetStatus(text string) { m.status = text }

// Status returns the passive status text.
func (m *Model) Status() string { return m.status }

// SetSuggestions configures the available suggestion list.
func (m *Model) SetSuggestions(options []SuggestionOption) {
	m.suggestions = append([]SuggestionOption(nil), options...)
	m.filter(m.prompt.Value())
}

// Suggestions returns the entries matching the current input.
func (m *Model) Suggestions() []SuggestionOption {
	return append([]SuggestionOption(nil), m.filteredSuggestions...)
}

// filter keeps prefix matches first, then substring matches.
func (m *Model) filter(value string) {
	m.suggestionIndex = -1
	m.windowStart = 0
	m.suggestionOriginal = value
	if m.mode != ModeInput {
		m.filteredSuggestions = nil
		return
	}

	prefix := strings.TrimSpace(strings.ToLower(value))
	matches := make([]SuggestionOption, 0, len(m.suggestions))
	seen := make(map[string]struct{}, len(m.suggestions))
	for _, opt := range m.suggestions {
		if strings.HasPrefix(strings.ToLower(opt.Name), prefix) {
			matches = append(matches, opt)
			seen[opt.Name] = struct{}{}
		}
	}
	for _, opt := range m.suggestions {
		if _, ok := seen[opt.Name]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(opt.Name), prefix) {
			matches = append(matches, opt)
		}
	}
	m.filteredSuggestions = matches
}

func (m *Model) cycleSuggestion(delta int) bool {
	total := len(m.filteredSuggestions)
	if m.mode != ModeInput || total == 0 {
		return false
	}
	if m.suggestionIndex == -1 {
		if delta > 0 {
			m.suggestionIndex = 0
		} else {
			m.suggestionIndex = total - 1
		}
		m.suggestionOriginal = m.prompt.Value()
	} else {
		m.suggestionIndex = (m.suggestionIndex + delta + total) % total
	}
	limit := min(m.suggestionLimit, total)
	switch {
	case m.suggestionIndex < m.windowStart:
		m.windowStart = m.suggestionIndex
	case m.suggestionIndex >= m.windowStart+limit:
		m.windowStart = m.suggestionIndex - limit + 1
	}
	m.prompt.SetValue(m.filteredSuggestions[m.suggestionIndex].Name)
	m.prompt.CursorEnd()
	return true
}

func (m *Model) clearSuggestionSelection() bool {
	if m.suggestionIndex == -1 {
		return false
	}
	m.prompt.SetValue(m.suggestionOriginal)
	m.prompt.CursorEnd()
	m.suggestionIndex = -1
	m.windowStart = 0
	return true
}

// BeginInput switches the command bar into input mode.
func (m *Model) BeginInput(initial string) tea.Cmd {
	m.mode = ModeInput
	m.prompt.SetValue(initial)
	m.prompt.CursorEnd()
	m.filter(initial)
	return m.prompt.Focus()
}

// ExitInput returns the command bar to passive mode.
func (m *Model) ExitInput() {
	m.mode = ModePassive
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.filter("")
}

// InInputMode reports if the prompt is active.
func (m *Model) InInputMode() bool { return m.mode == ModeInput }

// Value returns the current prompt contents.
func (m *Model) Value() string { return m.prompt.Value() }

// Update handles keys while in input mode: enter submits, esc first drops
// a highlighted suggestion and then cancels, up/down and tab cycle
// suggestions. In passive mode ":" opens the prompt.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if m.mode == ModePassive {
		if ok && key.String() == ":" {
			return m, m.BeginInput("")
		}
		return m, nil
	}

	if ok {
		switch key.String() {
		case "esc":
			if m.clearSuggestionSelection() {
				return m, nil
			}
			m.ExitInput()
			return m, events.CommandCancelCmd(m.id)
		case "enter":
			value := strings.TrimSpace(m.prompt.Value())
			m.ExitInput()
			if value == "" {
				return m, events.CommandCancelCmd(m.id)
			}
			return m, events.CommandSubmitCmd(m.id, value)
		case "up", "shift+tab":
			if m.cycleSuggestion(-1) {
				return m, nil
			}
		case "down", "tab":
			if m.cycleSuggestion(1) {
				return m, nil
			}
		}
	}

	prev := m.prompt.Value()
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	if m.prompt.Value() != prev {
		m.filter(m.prompt.Value())
	}
	return m, cmd
}

// View renders the bar line: the prompt in input mode, the status otherwise.
func (m *Model) View() string {
	if m.mode == ModeInput {
		return padToWidth(m.styles.Prompt.Render(m.promptPrefix)+m.prompt.View(), m.width)
	}
	status := m.status
	if status == "" {
		status = "Ready"
	}
	return m.styles.Status.Width(m.width).Render(status)
}

// SuggestionView renders the visible window of suggestions, or "" when
// there is nothing to show.
func (m *Model) SuggestionView() string {
	total := len(m.filteredSuggestions)
	if m.mode != ModeInput || total == 0 {
		return ""
	}
	limit := min(m.suggestionLimit, total)
	start := min(max(m.windowStart, 0), total-limit)

	rows := make([]string, 0, limit)
	for i := start; i < start+limit; i++ {
		opt := m.filteredSuggestions[i]
		marker := "  "
		name := m.styles.Name.Render(opt.Name)
		desc := m.styles.Description.Render(strings.TrimSpace(opt.Description))
		if i == m.suggestionIndex {
			marker = "→ "
			name = m.styles.Selected.Render(opt.Name)
		}
		line := marker + name
		if opt.Description != "" {
			line += "  " + desc
		}
		rows = append(rows, line)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(rows, "\n"))
}

func padToWidth(s string, width int) string {
	current := lipgloss.Width(s)
	if current >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-current)
}
