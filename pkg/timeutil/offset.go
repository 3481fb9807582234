// Package timeutil reads the relative day expressions accepted wherever the
// CLI takes a date, such as "today", "+3d" or "today-1w2d".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/datepick/pkg/day"
)

const keywordToday = "today"

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseOffset parses a signed day offset such as "3d", "-1w" or "+1w2d" and
// returns the number of days along with its canonical form.
func ParseOffset(input string) (int, string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	sign := 1
	switch {
	case strings.HasPrefix(trimmed, "-"):
		sign = -1
		trimmed = trimmed[1:]
	case strings.HasPrefix(trimmed, "+"):
		trimmed = trimmed[1:]
	}
	if trimmed == "" {
		return 0, "", fmt.Errorf("empty offset %q", input)
	}

	remaining := trimmed
	total := 0
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid offset value %q: %w", matches[1], err)
		}
		unit, ok := unitMap[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported offset unit %q", matches[2])
		}
		total += value * unit
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	total *= sign
	return total, FormatOffset(total), nil
}

// FormatOffset renders days using week and day tokens, e.g. "-1w2d".
func FormatOffset(days int) string {
	if days == 0 {
		return "0d"
	}
	sign := "+"
	if days < 0 {
		sign = "-"
		days = -days
	}
	var b strings.Builder
	b.WriteString(sign)
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if d := days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	return b.String()
}

// Resolve evaluates expr against today. It reports false, without error,
// when expr is not a relative expression so callers can fall back to other
// date forms.
func Resolve(expr string, today day.Day) (day.Day, bool, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	rest, hasKeyword := strings.CutPrefix(s, keywordToday)
	if !hasKeyword {
		if !strings.HasPrefix(s, "+") && !strings.HasPrefix(s, "-") {
			return day.Day{}, false, nil
		}
		rest = s
	}
	if today.IsZero() {
		return day.Day{}, true, fmt.Errorf("relative date %q needs a reference day", expr)
	}
	if strings.TrimSpace(rest) == "" {
		return today, true, nil
	}
	n, _, err := ParseOffset(rest)
	if err != nil {
		return day.Day{}, true, err
	}
	return today.AddDays(n), true, nil
}
