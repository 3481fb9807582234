package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/datepicker/grid"
	"tableflip.dev/datepick/pkg/tui/components/calendar"
)

func newCalendarCmd(opts *options) *cobra.Command {
	var (
		monthFlag string
		selected  int
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Preview the month grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := day.ParseMonth(monthFlag)
			if err != nil {
				return err
			}
			return runHarness(&calendarModel{
				testbedModel: newTestbedModel(*opts),
				month:        month,
				selected:     selected,
				today:        day.Of(time.Now()),
			})
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", time.Now().Format("January 2006"), "month to render (e.g. \"March 2026\")")
	cmd.Flags().IntVar(&selected, "day", 0, "highlighted day number (optional)")
	return cmd
}

type calendarModel struct {
	testbedModel
	month    day.Month
	selected int
	today    day.Day
}

func (m *calendarModel) Init() tea.Cmd { return nil }

func (m *calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "[", "left":
			m.month = m.month.Add(-1)
		case "]", "right":
			m.month = m.month.Add(1)
		case "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *calendarModel) View() string {
	header := day.Format(m.month.First(), day.MonthYear)
	body := calendar.Render(grid.Build(m.month.Year, m.month.Month), func(d day.Day) grid.Marks {
		return grid.Marks{
			Selected: d.Day == m.selected,
			Today:    d.Same(m.today),
		}
	}, calendar.DefaultOptions())
	return m.composeView(header + "\n" + body + "\n\n[ ] change month · q quit")
}
