package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/tui/components/help"
	"tableflip.dev/datepick/pkg/tui/theme"
)

func newHelpCmd(opts *options) *cobra.Command {
	var light bool

	cmd := &cobra.Command{
		Use:   "help",
		Short: "Render the help overlay component",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHarness(&helpTestModel{
				testbedModel: newTestbedModel(*opts),
				theme:        theme.ForBackground(!light),
			})
		},
	}

	cmd.Flags().BoolVar(&light, "light", false, "render with the light markdown style")
	return cmd
}

type helpTestModel struct {
	testbedModel
	theme   theme.Theme
	overlay *help.Model
}

func (m *helpTestModel) Init() tea.Cmd { return nil }

func (m *helpTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	switch msg.(type) {
	case tea.WindowSizeMsg:
		w, h := m.contentSize()
		if m.overlay == nil {
			m.overlay = help.New(m.theme.Modal, w, h)
		} else {
			m.overlay.SetSize(w, h)
		}
		return m, nil
	case help.CloseMsg:
		return m, tea.Quit
	}
	if m.overlay == nil {
		return m, nil
	}
	_, cmd := m.overlay.Update(msg)
	return m, cmd
}

func (m *helpTestModel) View() string {
	if m.overlay == nil {
		return m.composeView("help component unavailable")
	}
	return m.composeView(m.overlay.View())
}
