// Package calendar renders month day grids with lipgloss.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datepick/pkg/datepicker/grid"
)

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	DayStyle      lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	RangeStyle    lipgloss.Style
	EdgeStyle     lipgloss.Style
	FocusStyle    lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		DayStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		RangeStyle:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		EdgeStyle:     lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")).Bold(true),
		FocusStyle:    lipgloss.NewStyle().Reverse(true),
		ShowHeader:    true,
	}
}

// Render produces a multi-line grid for cells. A nil marker draws plain days.
func Render(cells []grid.Cell, mark grid.Marker, opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(grid.Weekdays))
	}
	for _, row := range grid.Rows(cells) {
		parts := make([]string, 0, len(row))
		for _, cell := range row {
			if cell.Placeholder {
				parts = append(parts, opts.EmptyStyle.Render("  "))
				continue
			}
			var marks grid.Marks
			if mark != nil {
				marks = mark(cell.Date)
			}
			parts = append(parts, renderDay(cell.Date.Day, marks, opts))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func renderDay(n int, marks grid.Marks, opts Options) string {
	text := fmt.Sprintf("%2d", n)

	style := opts.DayStyle
	if marks.InRange {
		style = style.Inherit(opts.RangeStyle)
	}
	if marks.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	switch {
	case marks.RangeStart || marks.RangeEnd:
		style = opts.EdgeStyle.Inherit(style)
	case marks.Selected:
		style = opts.SelectedStyle.Inherit(style)
	}
	if marks.Focused {
		style = style.Inherit(opts.FocusStyle)
	}
	return style.Render(text)
}
