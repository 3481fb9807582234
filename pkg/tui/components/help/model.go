// Package help renders the keyboard reference as a scrollable modal.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"

	"tableflip.dev/datepick/pkg/tui/theme"
	"tableflip.dev/datepick/pkg/tui/ui"
)

//go:embed help.md
var helpMarkdown string

const (
	minWidth  = 32
	minHeight = 8
)

// CloseMsg asks the host to dismiss the modal.
type CloseMsg struct{}

// Model renders the Glamour-based help inside a bordered viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	styles theme.ModalTheme
	err    error
}

var _ ui.Component = (*Model)(nil)

// New constructs a help modal sized to the provided bounds.
func New(styles theme.ModalTheme, width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	m := &Model{
		viewport: vp,
		styles:   styles,
	}
	m.SetSize(width, height)
	return m
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update scrolls the content; esc, q and ? close the modal.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "?":
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the modal.
func (m *Model) View() string {
	body := m.viewport.View()
	if body == "" && m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

// Err returns the last rendering failure.
func (m *Model) Err() error { return m.err }

// SetSize fits the modal into width by height and re-renders the markdown.
func (m *Model) SetSize(width, height int) {
	width = max(width, minWidth)
	height = max(height, minHeight)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(width-m.styles.Frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.styles.Frame.GetVerticalFrameSize(), 1)
	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)
	m.render(innerWidth)
}

func (m *Model) render(wrap int) {
	style := m.styles.Markdown
	if style == "" {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(wrap, 10)),
	)
	if err == nil {
		var content string
		content, err = renderer.Render(strings.TrimSpace(helpMarkdown))
		if err == nil {
			m.err = nil
			m.viewport.SetContent(content)
			m.viewport.SetYOffset(0)
			return
		}
	}
	m.err = err
	m.viewport.SetContent("help unavailable: " + err.Error())
}
