// Package yearlist renders the picker's year list: an accordion of years,
// each expanding to its months, inside a scrollable viewport.
package yearlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/datepick/pkg/datepicker"
	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/tui/theme"
)

const monthsPerRow = 4

// SelectMsg is emitted when the user picks a month of a year.
type SelectMsg struct {
	Year       int
	MonthIndex int
}

// Model is the year accordion.
type Model struct {
	years  []int
	months [12]datepicker.MonthName

	focus      int
	expanded   int
	monthFocus int

	current    int
	curMonth   int
	hasCurrent bool

	viewport viewport.Model
	offset   int
	lines    int
	width    int
	height   int

	styles theme.YearsTheme
}

// New constructs the list over the fixed year catalog.
func New(styles theme.YearsTheme) *Model {
	vp := viewport.New(
		viewport.WithWidth(1),
		viewport.WithHeight(1),
	)
	m := &Model{
		years:    datepicker.Years(),
		months:   datepicker.Months(),
		expanded: -1,
		viewport: vp,
		styles:   styles,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize resizes the scroll area.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.viewport.SetWidth(m.width)
	m.viewport.SetHeight(m.height)
	m.refresh()
	m.setOffset(m.offset)
}

// SetCurrent marks the cursor month. Years outside the catalog leave no
// year highlighted and keep the focus where it was.
func (m *Model) SetCurrent(cursor day.Month) {
	idx, ok := datepicker.YearIndex(cursor.Year)
	m.hasCurrent = ok
	if !ok {
		m.refresh()
		return
	}
	m.current = idx
	m.curMonth = int(cursor.Month) - 1
	m.focus = idx
	m.expanded = idx
	m.monthFocus = m.curMonth
	m.refresh()
}

// Focused returns the focused year.
func (m *Model) Focused() int { return m.years[m.focus] }

// Expanded returns the expanded year, false when all are collapsed.
func (m *Model) Expanded() (int, bool) {
	if m.expanded < 0 {
		return 0, false
	}
	return m.years[m.expanded], true
}

// Current returns the highlighted year, false when none is.
func (m *Model) Current() (int, bool) {
	if !m.hasCurrent {
		return 0, false
	}
	return m.years[m.current], true
}

// ScrollTo brings year into view, roughly centered.
func (m *Model) ScrollTo(year int) {
	idx, ok := datepicker.YearIndex(year)
	if !ok {
		return
	}
	m.setOffset(m.lineOf(idx) - m.height/2)
}

// YOffset returns the first visible line.
func (m *Model) YOffset() int { return m.offset }

// Update handles navigation keys.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	switch key.String() {
	case "up", "k":
		m.moveYear(-1)
	case "down", "j":
		m.moveYear(1)
	case "pgup":
		m.moveYear(-m.height)
	case "pgdown":
		m.moveYear(m.height)
	case "left", "h":
		m.moveMonth(-1)
	case "right", "l":
		m.moveMonth(1)
	case "space", " ":
		m.toggle()
	case "enter":
		if m.expanded == m.focus {
			cmd = selectCmd(m.years[m.focus], m.monthFocus)
		} else {
			m.toggle()
		}
	}
	m.refresh()
	m.follow()
	return m, cmd
}

// View renders the visible part of the list.
func (m *Model) View() string {
	return m.viewport.View()
}

func (m *Model) moveYear(delta int) {
	m.focus = clamp(m.focus+delta, 0, len(m.years)-1)
}

func (m *Model) moveMonth(delta int) {
	if m.expanded != m.focus {
		return
	}
	m.monthFocus = clamp(m.monthFocus+delta, 0, len(m.months)-1)
}

func (m *Model) toggle() {
	if m.expanded == m.focus {
		m.expanded = -1
		return
	}
	m.expanded = m.focus
	m.monthFocus = 0
	if m.hasCurrent && m.focus == m.current {
		m.monthFocus = m.curMonth
	}
}

func (m *Model) follow() {
	line := m.lineOf(m.focus)
	switch {
	case line < m.offset:
		m.setOffset(line)
	case line >= m.offset+m.height:
		m.setOffset(line - m.height + 1)
	}
}

func (m *Model) setOffset(offset int) {
	m.offset = clamp(offset, 0, max(m.lines-m.height, 0))
	m.viewport.SetYOffset(m.offset)
}

func (m *Model) lineOf(idx int) int {
	if m.expanded >= 0 && m.expanded < idx {
		return idx + monthRows()
	}
	return idx
}

func monthRows() int {
	return (12 + monthsPerRow - 1) / monthsPerRow
}

func (m *Model) refresh() {
	lines := make([]string, 0, len(m.years)+monthRows())
	for i, year := range m.years {
		lines = append(lines, m.renderYear(i, year))
		if i == m.expanded {
			lines = append(lines, m.renderMonths(i)...)
		}
	}
	m.lines = len(lines)
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) renderYear(i, year int) string {
	glyph := theme.GlyphExpand
	if i == m.expanded {
		glyph = theme.GlyphCollapse
	}
	style := m.styles.Year
	if m.hasCurrent && i == m.current {
		style = m.styles.CurrentYear
	}
	text := fmt.Sprintf("%d", year)
	if i == m.focus && m.expanded != i {
		text = m.styles.FocusedYear.Render(text)
	} else {
		text = style.Render(text)
	}
	return m.styles.ExpandedGlyph.Render(glyph) + " " + text
}

func (m *Model) renderMonths(i int) []string {
	var rows []string
	for start := 0; start < len(m.months); start += monthsPerRow {
		cells := make([]string, 0, monthsPerRow)
		for idx := start; idx < start+monthsPerRow && idx < len(m.months); idx++ {
			style := m.styles.Month
			if m.hasCurrent && i == m.current && idx == m.curMonth {
				style = m.styles.CurrentMonth
			}
			if i == m.focus && idx == m.monthFocus {
				style = m.styles.FocusedMonth
			}
			cells = append(cells, style.Render(m.months[idx].Short))
		}
		rows = append(rows, "    "+strings.Join(cells, " "))
	}
	return rows
}

func selectCmd(year, month int) tea.Cmd {
	return func() tea.Msg {
		return SelectMsg{Year: year, MonthIndex: month}
	}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
