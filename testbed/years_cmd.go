package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/tui/components/yearlist"
	"tableflip.dev/datepick/pkg/tui/theme"
)

func newYearsCmd(opts *options) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "years",
		Short: "Browse the year list on its own",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := day.ParseMonth(monthFlag)
			if err != nil {
				return err
			}
			list := yearlist.New(theme.Default().Years)
			list.SetCurrent(month)
			list.ScrollTo(month.Year)
			return runHarness(&yearsModel{
				testbedModel: newTestbedModel(*opts),
				list:         list,
			})
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", time.Now().Format("January 2006"), "current month (e.g. \"March 2026\")")
	return cmd
}

type yearsModel struct {
	testbedModel
	list   *yearlist.Model
	picked string
}

func (m *yearsModel) Init() tea.Cmd { return nil }

func (m *yearsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := m.contentSize()
		m.list.SetSize(w, h-2)
	case yearlist.SelectMsg:
		m.picked = fmt.Sprintf("picked %s %d", time.Month(msg.MonthIndex+1), msg.Year)
		m.list.SetCurrent(day.Month{Year: msg.Year, Month: time.Month(msg.MonthIndex + 1)})
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "esc" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *yearsModel) View() string {
	return m.composeView(m.list.View() + "\n\n" + m.picked)
}
