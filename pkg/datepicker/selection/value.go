// Package selection holds the selection engines behind the date picker and
// the coordinator that switches between them.
package selection

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/datepick/pkg/day"
	"tableflip.dev/datepick/pkg/timeutil"
)

// Kind discriminates a Value.
type Kind int

const (
	// KindNone carries nothing.
	KindNone Kind = iota
	// KindSingle carries one day.
	KindSingle
	// KindRange carries a range, possibly with absent endpoints.
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSingle:
		return "single"
	case KindRange:
		return "range"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the payload exposed to consumers: None, Single(day) or
// Range(from, to).
type Value struct {
	kind Kind
	day  day.Day
	rng  day.Range
}

// NoValue returns the empty value.
func NoValue() Value { return Value{} }

// SingleValue wraps d. An absent day yields NoValue.
func SingleValue(d day.Day) Value {
	if d.IsZero() {
		return Value{}
	}
	return Value{kind: KindSingle, day: d}
}

// RangeValue wraps r as given; endpoints are not reordered here.
func RangeValue(r day.Range) Value {
	return Value{kind: KindRange, rng: r}
}

// Kind returns the discriminator.
func (v Value) Kind() Kind { return v.kind }

// Day returns the single day when v is KindSingle.
func (v Value) Day() (day.Day, bool) {
	if v.kind != KindSingle {
		return day.Day{}, false
	}
	return v.day, true
}

// Range returns the range when v is KindRange.
func (v Value) Range() (day.Range, bool) {
	if v.kind != KindRange {
		return day.Range{}, false
	}
	return v.rng, true
}

func (v Value) String() string {
	switch v.kind {
	case KindSingle:
		return v.day.String()
	case KindRange:
		return fmt.Sprintf("%s..%s", v.rng.From, v.rng.To)
	case KindNone:
		return "none"
	default:
		return v.kind.String()
	}
}

// ParseValue reads the String form back: "none" or empty, an ISO date, or
// "from..to" where either side may be empty. Relative days such as "today"
// or "+1w" are resolved against the local clock.
func ParseValue(s string) (Value, error) {
	return ParseValueAt(s, day.Of(time.Now()))
}

// ParseValueAt is ParseValue with relative days resolved against today.
func ParseValueAt(s string, today day.Day) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return NoValue(), nil
	}
	if from, to, ok := strings.Cut(s, ".."); ok {
		var r day.Range
		var err error
		if from != "" {
			if r.From, err = parseDay(from, today); err != nil {
				return NoValue(), fmt.Errorf("range start: %w", err)
			}
		}
		if to != "" {
			if r.To, err = parseDay(to, today); err != nil {
				return NoValue(), fmt.Errorf("range end: %w", err)
			}
		}
		if r.IsComplete() {
			r = day.NewRange(r.From, r.To)
		}
		return RangeValue(r), nil
	}
	d, err := parseDay(s, today)
	if err != nil {
		return NoValue(), err
	}
	return SingleValue(d), nil
}

func parseDay(s string, today day.Day) (day.Day, error) {
	if d, ok, err := timeutil.Resolve(s, today); ok {
		return d, err
	}
	return day.Parse(s)
}

type jsonValue struct {
	Kind string `json:"kind"`
	Date string `json:"date,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// MarshalJSON renders the value for CLI output.
func (v Value) MarshalJSON() ([]byte, error) {
	out := jsonValue{Kind: v.kind.String()}
	switch v.kind {
	case KindSingle:
		out.Date = v.day.String()
	case KindRange:
		out.From = v.rng.From.String()
		out.To = v.rng.To.String()
	case KindNone:
	}
	return json.Marshal(out)
}
