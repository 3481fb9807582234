package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	core "tableflip.dev/datepick/pkg/datepicker"
	"tableflip.dev/datepick/pkg/datepicker/selection"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
	"tableflip.dev/datepick/pkg/tui/components/yearlist"
	"tableflip.dev/datepick/pkg/tui/events"
)

func newPickerCmd(opts *options) *cobra.Command {
	var (
		modeFlag  string
		valueFlag string
		reset     bool
	)

	cmd := &cobra.Command{
		Use:   "picker",
		Short: "Drive one picker component",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := selection.ParseMode(modeFlag)
			if err != nil {
				return err
			}
			initial, err := selection.ParseValue(valueFlag)
			if err != nil {
				return err
			}
			picker := datepicker.New(datepicker.Options{
				ID: "testbed-picker",
				Picker: core.Options{
					Mode:       mode,
					Initial:    initial,
					Resettable: reset,
				},
			})
			return runHarness(&pickerModel{
				testbedModel: newTestbedModel(*opts),
				picker:       picker,
			})
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "duo", "picker mode: single, range or duo")
	cmd.Flags().StringVar(&valueFlag, "value", "", "initial value")
	cmd.Flags().BoolVar(&reset, "reset", true, "allow clearing the value")
	return cmd
}

type pickerModel struct {
	testbedModel
	picker *datepicker.Model
}

func (m *pickerModel) Init() tea.Cmd {
	return m.picker.Focus()
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := m.contentSize()
		m.picker.SetSize(w, h)
		return m, nil
	case events.DeferredMsg, yearlist.SelectMsg:
		_, cmd := m.picker.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "q" && !m.picker.Controller().IsOpen() {
			return m, tea.Quit
		}
		_, cmd := m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *pickerModel) View() string {
	return m.composeView(m.picker.View())
}
