package overlay

import (
	"strings"
	"testing"
)

func TestComposeAnchored(t *testing.T) {
	bg := "aaaaaa\nbbbbbb\ncccccc"
	got := Compose(bg, 6, 3, "XY\nZW", Placement{Anchored: true, X: 1, Y: 1})
	want := "aaaaaa\nbXYbbb\ncZWccc"
	if got != want {
		t.Fatalf("unexpected compose:\n%s\nwant:\n%s", got, want)
	}
}

func TestComposeCentersByDefault(t *testing.T) {
	got := Compose("", 6, 3, "XY", Placement{})
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[1] != "  XY  " {
		t.Fatalf("unexpected middle line %q", lines[1])
	}
}

func TestComposeClampsToScreen(t *testing.T) {
	got := Compose("", 4, 2, "XY", Placement{Anchored: true, X: 10, Y: 10})
	if lines := strings.Split(got, "\n"); lines[1] != "  XY" {
		t.Fatalf("overlay should clamp inside the screen, got %q", got)
	}
}

func TestBelow(t *testing.T) {
	p := Below(2, 0, "one\ntwo\nthree")
	if !p.Anchored || p.X != 2 || p.Y != 3 {
		t.Fatalf("unexpected placement %+v", p)
	}
}
