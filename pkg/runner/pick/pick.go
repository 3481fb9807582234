// Package pick runs an interactive picker and prints the chosen value.
package pick

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"tableflip.dev/datepick/pkg/config"
	core "tableflip.dev/datepick/pkg/datepicker"
	"tableflip.dev/datepick/pkg/datepicker/selection"
	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/tui/app"
	"tableflip.dev/datepick/pkg/tui/components/datepicker"
	"tableflip.dev/datepick/pkg/tui/theme"
)

var (
	// ErrNoTerminal is returned when stdin is not a terminal.
	ErrNoTerminal = errors.New("pick needs an interactive terminal")
	// ErrCanceled is returned when the user quits without committing.
	ErrCanceled = errors.New("no date picked")
)

// Pick configures one interactive session.
type Pick struct {
	Mode        selection.Mode
	Initial     selection.Value
	Placeholder string
	Reset       bool
	Range       bool
	Width       int

	// Events shows the event log.
	Events bool
	// LogFile receives a trace of picker events.
	LogFile string
	// Loader, when set, reloads placeholder and reset on config edits.
	Loader *config.Loader

	JSON    bool
	Printer *printers.PrettyPrint
}

// Options returns the app configuration for this session.
func (p *Pick) Options() app.Options {
	return app.Options{
		Title: "Pick " + p.Mode.String(),
		Pickers: []datepicker.Options{{
			ID: "pick",
			Picker: core.Options{
				Mode:        p.Mode,
				Initial:     p.Initial,
				Placeholder: p.Placeholder,
				Resettable:  p.Reset,
				RangeMode:   p.Range,
			},
		}},
		Events:       p.Events,
		ExitOnCommit: true,
		Trace:        p.LogFile != "",
		Width:        p.Width,
	}
}

// Do runs the picker until a value is committed or the user quits.
func (p *Pick) Do(ctx context.Context) error {
	if !terminal(os.Stdin.Fd()) {
		return ErrNoTerminal
	}
	pp := p.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	if p.LogFile != "" {
		f, err := tea.LogToFile(p.LogFile, "datepick")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	}

	opts := p.Options()
	if p.Loader != nil {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		ch, err := p.Loader.Watch(ctx)
		switch {
		case errors.Is(err, config.ErrNoFile):
		case err != nil:
			return err
		default:
			opts.Config = ch
		}
	}

	// Keep stdout clean for the result when it is piped.
	var popts []tea.ProgramOption
	screen := os.Stdout
	if !terminal(os.Stdout.Fd()) {
		screen = os.Stderr
		popts = append(popts, tea.WithOutput(screen))
	}
	th := theme.Detect(screen)
	opts.Theme = &th

	v, ok, err := app.Run(opts, popts...)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCanceled
	}
	if p.JSON {
		return pp.JSON(v)
	}
	if screen == os.Stdout {
		pp.Describe(v)
		return nil
	}
	pp.Value(v)
	return nil
}

func terminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
