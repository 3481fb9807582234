package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Glyphs used in place of an icon set.
const (
	GlyphPrev     = "‹"
	GlyphNext     = "›"
	GlyphExpand   = "▸"
	GlyphCollapse = "▾"
	GlyphCalendar = "▦"
	GlyphReset    = "×"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Trigger TriggerTheme
	Picker  PickerTheme
	Years   YearsTheme
	Footer  FooterTheme
	Command CommandTheme
	Modal   ModalTheme
}

// TriggerTheme styles the one-line field that opens the picker.
type TriggerTheme struct {
	Frame       lipgloss.Style
	Focused     lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Reset       lipgloss.Style
}

// PickerTheme styles the floating panel.
type PickerTheme struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Nav       lipgloss.Style
	SwitchOn  lipgloss.Style
	SwitchOff lipgloss.Style
	Label     lipgloss.Style
	// Range shades days inside a range; Edge marks its endpoints.
	Range lipgloss.Style
	Edge  lipgloss.Style
}

// YearsTheme styles the year list.
type YearsTheme struct {
	Year          lipgloss.Style
	CurrentYear   lipgloss.Style
	FocusedYear   lipgloss.Style
	Month         lipgloss.Style
	CurrentMonth  lipgloss.Style
	FocusedMonth  lipgloss.Style
	ExpandedGlyph lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Value  lipgloss.Style
}

// CommandTheme styles the go-to prompt and its suggestions.
type CommandTheme struct {
	Prompt      lipgloss.Style
	Status      lipgloss.Style
	Name        lipgloss.Style
	Description lipgloss.Style
	Selected    lipgloss.Style
}

// ModalTheme styles centered modal overlays (e.g., help).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	// Markdown names the Glamour standard style, "dark" or "light".
	Markdown string
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color(accentHex)
	muted := lipgloss.Color("244")
	shade := lipgloss.Color(Blend(accentHex, backgroundHex, 0.7))

	return Theme{
		Trigger: TriggerTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Focused: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Placeholder: lipgloss.NewStyle().Foreground(muted).Italic(true),
			Reset:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Picker: PickerTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Header:    lipgloss.NewStyle().Bold(true),
			Nav:       lipgloss.NewStyle().Foreground(muted),
			SwitchOn:  lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0")).Bold(true),
			SwitchOff: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(muted),
			Label:     lipgloss.NewStyle().Foreground(muted),
			Range:     lipgloss.NewStyle().Background(shade),
			Edge:      lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0")).Bold(true),
		},
		Years: YearsTheme{
			Year:          lipgloss.NewStyle(),
			CurrentYear:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			FocusedYear:   lipgloss.NewStyle().Reverse(true),
			Month:         lipgloss.NewStyle().Foreground(muted),
			CurrentMonth:  lipgloss.NewStyle().Foreground(accent).Bold(true),
			FocusedMonth:  lipgloss.NewStyle().Reverse(true),
			ExpandedGlyph: lipgloss.NewStyle().Foreground(muted),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Command: CommandTheme{
			Prompt:      lipgloss.NewStyle().Foreground(accent).Bold(true),
			Status:      lipgloss.NewStyle().Italic(true).Foreground(muted).Align(lipgloss.Right),
			Name:        lipgloss.NewStyle().Bold(true),
			Description: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Bold(true),
			Body:     lipgloss.NewStyle(),
			Markdown: "dark",
		},
	}
}

// ForBackground returns Default adjusted for a dark or light terminal.
func ForBackground(dark bool) Theme {
	th := Default()
	if !dark {
		th.Modal.Markdown = "light"
	}
	return th
}

// Detect queries the terminal behind w for its background color.
func Detect(w io.Writer) Theme {
	return ForBackground(termenv.NewOutput(w).HasDarkBackground())
}

const (
	accentHex     = "#5f5fff"
	backgroundHex = "#1c1c1c"
)

// Blend mixes two hex colors in Lab space; t=0 yields a, t=1 yields b.
// Unparseable input falls back to a.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
