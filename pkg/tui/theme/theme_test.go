package theme

import "testing"

func TestBlendEndpoints(t *testing.T) {
	if got := Blend("#000000", "#ffffff", 0); got != "#000000" {
		t.Fatalf("t=0 should keep the first color, got %s", got)
	}
	if got := Blend("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Fatalf("t=1 should yield the second color, got %s", got)
	}
}

func TestBlendBadInput(t *testing.T) {
	if got := Blend("nope", "#ffffff", 0.5); got != "nope" {
		t.Fatalf("unexpected fallback %s", got)
	}
}

func TestForBackground(t *testing.T) {
	if got := ForBackground(true).Modal.Markdown; got != "dark" {
		t.Fatalf("dark terminals should use the dark style, got %q", got)
	}
	if got := ForBackground(false).Modal.Markdown; got != "light" {
		t.Fatalf("light terminals should use the light style, got %q", got)
	}
}
