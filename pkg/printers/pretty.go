package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/datepicker/selection"
	"tableflip.dev/datepick/pkg/day"
)

// PrettyPrint writes colored output for the CLI.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Value prints v as ISO dates, the form scripts consume.
func (pp *PrettyPrint) Value(v selection.Value) {
	switch v.Kind() {
	case selection.KindNone:
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "none")
	default:
		_, _ = fmt.Fprintln(pp.out(), v.String())
	}
}

// Describe prints v the way the picker trigger shows it.
func (pp *PrettyPrint) Describe(v selection.Value) {
	b := color.New(color.Bold)
	switch v.Kind() {
	case selection.KindSingle:
		d, _ := v.Day()
		_, _ = b.Fprintln(pp.out(), day.Format(d, day.LongDate))
	case selection.KindRange:
		r, _ := v.Range()
		if r.IsEmpty() {
			pp.Value(selection.NoValue())
			return
		}
		to := "?"
		if !r.To.IsZero() {
			to = day.Format(r.To, day.ShortDate)
		}
		_, _ = b.Fprintf(pp.out(), "%s - %s", day.Format(r.From, day.ShortDate), to)
		if r.IsComplete() {
			c := color.New(color.Faint)
			_, _ = c.Fprintf(pp.out(), " (%d days)", r.Days())
		}
		_, _ = fmt.Fprintln(pp.out())
	default:
		pp.Value(v)
	}
}

// JSON prints v as a single JSON line.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
