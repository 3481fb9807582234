package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/tui/components/command"
	"tableflip.dev/datepick/pkg/tui/events"
	"tableflip.dev/datepick/pkg/tui/theme"
)

func newCommandCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "command",
		Short: "Exercise the go-to prompt and its suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			bar := command.NewModel(command.Options{
				ID:           "testbed-command",
				PromptPrefix: ":",
				StatusText:   "press : to type",
				Styles:       theme.Default().Command,
			})
			bar.SetSuggestions([]command.SuggestionOption{
				{Name: "today", Description: "Jump to today"},
				{Name: "+1w", Description: "One week ahead"},
				{Name: "-1w", Description: "One week back"},
				{Name: "May 2024", Description: "A month"},
			})
			return runHarness(&commandModel{
				testbedModel: newTestbedModel(*opts),
				bar:          bar,
			})
		},
	}
}

type commandModel struct {
	testbedModel
	bar *command.Model
}

func (m *commandModel) Init() tea.Cmd { return nil }

func (m *commandModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, _ := m.contentSize()
		m.bar.SetWidth(w)
	case events.CommandSubmitMsg:
		m.bar.SetStatus("submitted " + msg.Value)
	case events.CommandCancelMsg:
		m.bar.SetStatus("canceled")
	case tea.KeyMsg:
		if msg.String() == "q" && !m.bar.InInputMode() {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *commandModel) View() string {
	_, h := m.contentSize()
	var lines []string
	if s := m.bar.SuggestionView(); s != "" {
		lines = append(lines, s)
	}
	lines = append(lines, m.bar.View())
	body := strings.Join(lines, "\n")
	if pad := h - strings.Count(body, "\n") - 1; pad > 0 {
		body = strings.Repeat("\n", pad) + body
	}
	return m.composeView(body)
}
