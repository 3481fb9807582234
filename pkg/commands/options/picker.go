package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/config"
	"tableflip.dev/datepick/pkg/datepicker/selection"
)

// PickerOptions
type PickerOptions struct {
	Mode        string
	Placeholder string
	Reset       bool
	Range       bool
	Width       int
}

// AddPickerArgs registers the picker flags with defaults taken from cfg.
func AddPickerArgs(cmd *cobra.Command, o *PickerOptions, cfg config.Config) {
	cmd.Flags().StringVarP(&o.Mode, "mode", "m", cfg.Mode,
		"Picker mode. One of 'single', 'range' or 'duo'.")
	cmd.Flags().StringVar(&o.Placeholder, "placeholder", cfg.Placeholder,
		"Text shown while nothing is picked.")
	cmd.Flags().BoolVar(&o.Reset, "reset", cfg.Reset,
		"Allow clearing the value.")
	cmd.Flags().BoolVar(&o.Range, "range", cfg.Range,
		"Start a duo picker in range mode.")
	cmd.Flags().IntVar(&o.Width, "width", cfg.Width,
		"Trigger width in cells.")
}

func (o *PickerOptions) GetMode() (selection.Mode, error) {
	return selection.ParseMode(o.Mode)
}
