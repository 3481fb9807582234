package selection

import (
	"fmt"
	"strings"
)

// Mode is the overall behavior of a picker instance.
type Mode int

const (
	// ModeDuo switches between single and range at runtime.
	ModeDuo Mode = iota
	// ModeSingle picks one day.
	ModeSingle
	// ModeRange picks a range.
	ModeRange
)

func (m Mode) String() string {
	switch m {
	case ModeDuo:
		return "duo"
	case ModeSingle:
		return "single"
	case ModeRange:
		return "range"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode reads "single", "range" or "duo". The empty string is duo.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "duo":
		return ModeDuo, nil
	case "single":
		return ModeSingle, nil
	case "range":
		return ModeRange, nil
	default:
		return ModeDuo, fmt.Errorf("unknown mode %q, expected single, range or duo", s)
	}
}

// SubMode is the acting behavior; fixed outside duo.
type SubMode string

const (
	// SubSingle selects one day.
	SubSingle SubMode = "single"
	// SubRange selects a range.
	SubRange SubMode = "range"
)
