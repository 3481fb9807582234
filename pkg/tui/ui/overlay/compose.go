// Package overlay draws floating views, like the picker panel or the help
// modal, on top of an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Placement positions a floating view.
type Placement struct {
	// Anchored places the view at (X, Y) instead of aligning it.
	Anchored bool
	X, Y     int

	// Horizontal and Vertical align the view when not anchored: Right or
	// Bottom hug the edge less the margin, anything else centers.
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int

	// Width and Height clip the view; zero means its natural size.
	Width  int
	Height int
}

// Below anchors a view under a rendered block starting at (x, y).
func Below(x, y int, block string) Placement {
	return Placement{Anchored: true, X: x, Y: y + lipgloss.Height(block)}
}

// Compose draws foreground over background, a width by height screen, and
// keeps the background visible around it.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	screen := canvas(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(screen, "\n")
	}

	lines := strings.Split(foreground, "\n")
	w, h := placement.Width, placement.Height
	if w <= 0 {
		w = lipgloss.Width(foreground)
	}
	if h <= 0 {
		h = len(lines)
	}
	w, h = min(w, width), min(h, height)
	if w <= 0 {
		return strings.Join(screen, "\n")
	}

	x, y := offsets(width, height, w, h, placement)
	for row := 0; row < h; row++ {
		line := ""
		if row < len(lines) {
			line = lines[row]
		}
		base := screen[y+row]
		screen[y+row] = truncate.String(base, uint(x)) + fit(line, w) + tail(base, x+w)
	}
	return strings.Join(screen, "\n")
}

// canvas pads view to exactly height lines of width cells, keeping the
// bottom of taller views.
func canvas(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = fit(lines[i], width)
	}
	return lines
}

func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w > width {
		return truncate.String(s, uint(width))
	}
	return s + strings.Repeat(" ", width-w)
}

// tail returns the cells of s from start on. Styling is dropped.
func tail(s string, start int) string {
	var b strings.Builder
	pos := 0
	escape := false
	for _, r := range s {
		if r == ansi.Marker {
			escape = true
			continue
		}
		if escape {
			if ansi.IsTerminator(r) {
				escape = false
			}
			continue
		}
		if pos >= start {
			b.WriteRune(r)
		}
		pos += lipgloss.Width(string(r))
	}
	return b.String()
}

func offsets(width, height, w, h int, p Placement) (int, int) {
	var x, y int
	if p.Anchored {
		x, y = p.X, p.Y
	} else {
		x = (width - w) / 2
		if p.Horizontal == lipgloss.Right {
			x = width - w - p.MarginX
		}
		y = (height - h) / 2
		if p.Vertical == lipgloss.Bottom {
			y = height - h - p.MarginY
		}
	}
	return clamp(x, 0, width-w), clamp(y, 0, height-h)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
