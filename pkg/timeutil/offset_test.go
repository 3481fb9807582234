package timeutil

import (
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/day"
)

func TestParseOffsetComposite(t *testing.T) {
	n, label, err := ParseOffset("1w2d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 9 {
		t.Fatalf("expected 9 days, got %d", n)
	}
	if label != "+1w2d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseOffsetNegative(t *testing.T) {
	n, label, err := ParseOffset("-2 weeks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != -14 || label != "-2w" {
		t.Fatalf("got %d %q", n, label)
	}
}

func TestParseOffsetInvalid(t *testing.T) {
	for _, in := range []string{"", "noop", "3h", "+"} {
		if _, _, err := ParseOffset(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestResolve(t *testing.T) {
	today := day.New(2024, time.February, 27)
	tests := []struct {
		in   string
		want day.Day
	}{
		{"today", today},
		{"Today+3d", day.New(2024, time.March, 1)},
		{"+1w", day.New(2024, time.March, 5)},
		{"-1w", day.New(2024, time.February, 20)},
	}
	for _, tt := range tests {
		got, ok, err := Resolve(tt.in, today)
		if err != nil || !ok {
			t.Fatalf("%q: ok=%v err=%v", tt.in, ok, err)
		}
		if !got.Same(tt.want) {
			t.Fatalf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestResolveNotRelative(t *testing.T) {
	if _, ok, err := Resolve("2024-03-01", day.New(2024, time.March, 1)); ok || err != nil {
		t.Fatalf("absolute dates are not relative: ok=%v err=%v", ok, err)
	}
	if _, ok, err := Resolve("today", day.Day{}); !ok || err == nil {
		t.Fatal("expected an error without a reference day")
	}
}
