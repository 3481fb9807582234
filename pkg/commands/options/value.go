package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/datepicker/selection"
)

// ValueOptions
type ValueOptions struct {
	ValueString string
}

func AddValueArgs(cmd *cobra.Command, o *ValueOptions) {
	cmd.Flags().StringVar(&o.ValueString, "value", "",
		`Initial value, example: --value="2024-03-10", --value="2024-03-01..2024-03-09" or --value="today..+1w".`)
}

func (o *ValueOptions) GetValue() (selection.Value, error) {
	v, err := selection.ParseValue(o.ValueString)
	if err != nil {
		return selection.NoValue(), fmt.Errorf("--value %q: %w", o.ValueString, err)
	}
	return v, nil
}
