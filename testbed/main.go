// Command testbed runs single datepick components inside a frame with the
// event log underneath, for iterating on them in isolation.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/tui/components/eventviewer"
	"tableflip.dev/datepick/pkg/tui/events"
)

type options struct {
	full   bool
	width  int
	height int
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the TUI testbed harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 48, "window width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 20, "window height when not fullscreen")

	rootCmd.AddCommand(newCalendarCmd(&opts))
	rootCmd.AddCommand(newPickerCmd(&opts))
	rootCmd.AddCommand(newYearsCmd(&opts))
	rootCmd.AddCommand(newHelpCmd(&opts))
	rootCmd.AddCommand(newCommandCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runHarness(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// testbedModel frames a component and logs every message it sees. Harness
// models embed it and call Update first.
type testbedModel struct {
	fullscreen bool
	maxWidth   int
	maxHeight  int

	termWidth  int
	termHeight int

	focused    bool
	focusOwner events.ComponentID

	events *eventviewer.Model

	innerWidth  int
	innerHeight int
	eventHeight int
}

func newTestbedModel(opts options) testbedModel {
	return testbedModel{
		fullscreen: opts.full,
		maxWidth:   opts.width,
		maxHeight:  opts.height,
		events:     eventviewer.NewModel(400),
	}
}

func (m *testbedModel) Init() tea.Cmd { return nil }

// Update records msg and tracks size and focus. It returns tea.Quit on
// ctrl+c.
func (m *testbedModel) Update(msg tea.Msg) tea.Cmd {
	m.recordEvent(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.layout()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
	case events.FocusMsg:
		m.focused = true
		m.focusOwner = msg.Component
	case events.BlurMsg:
		if m.focusOwner == msg.Component || m.focusOwner == "" {
			m.focused = false
			m.focusOwner = ""
		}
	}
	return nil
}

func (m *testbedModel) recordEvent(msg tea.Msg) {
	if m.events.Record(msg) {
		return
	}
	detail := ""
	switch v := msg.(type) {
	case tea.KeyMsg:
		detail = fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		detail = fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	default:
		return
	}
	m.events.Append(eventviewer.Entry{
		Source:  "tea",
		Summary: fmt.Sprintf("%T", msg),
		Detail:  detail,
		Level:   eventviewer.LevelInfo,
	})
}

// contentSize returns the room inside the frame.
func (m *testbedModel) contentSize() (int, int) {
	return max(m.innerWidth, 20), max(m.innerHeight, 8)
}

func (m *testbedModel) layout() {
	m.eventHeight = m.computeEventHeight()
	frameSpace := max(minFrameHeight, m.termHeight-m.eventHeight-frameGap)

	width := clamp(m.maxWidth, 20, m.termWidth-4)
	height := clamp(m.maxHeight, minFrameHeight, frameSpace)
	if m.fullscreen {
		width = clamp(m.termWidth, 20, m.termWidth)
		height = clamp(frameSpace, minFrameHeight, frameSpace)
	}
	m.innerWidth = max(1, width-2)
	m.innerHeight = max(1, height-2)
	if m.eventHeight > 0 {
		m.events.SetSize(m.termWidth, m.eventHeight)
	}
}

func (m *testbedModel) computeEventHeight() int {
	maxAvailable := m.termHeight - minFrameHeight - frameGap
	if maxAvailable < minEventHeight {
		return 0
	}
	return min(clamp(m.termHeight/4, minEventHeight, maxEventHeight), maxAvailable)
}

// composeView frames content and stacks the event log below it.
func (m *testbedModel) composeView(content string) string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…"
	}

	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	if m.focused {
		border = border.BorderForeground(lipgloss.Color("#39FF14"))
	}
	inner := lipgloss.NewStyle().
		Width(m.innerWidth).
		Height(m.innerHeight).
		MaxHeight(m.innerHeight).
		Align(lipgloss.Left, lipgloss.Top).
		Render(content)
	frame := lipgloss.Place(
		m.termWidth,
		max(1, m.termHeight-m.eventHeight-frameGap),
		lipgloss.Center,
		lipgloss.Top,
		border.Render(inner),
	)
	if m.eventHeight == 0 {
		return frame
	}
	gap := strings.Repeat("\n", frameGap-1)
	return lipgloss.JoinVertical(lipgloss.Left, frame+gap, m.events.View())
}

func clamp(value, lo, hi int) int {
	if hi <= 0 {
		return lo
	}
	return min(max(value, lo), hi)
}

const (
	minFrameHeight = 12
	minEventHeight = 5
	maxEventHeight = 12
	frameGap       = 1
)
