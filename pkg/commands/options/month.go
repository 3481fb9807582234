package options

import (
	"github.com/spf13/cobra"
)

// MonthOptions
type MonthOptions struct {
	Month string
	Year  bool
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Month to show, example: --month="March 2024". Defaults to the value's month or the current one.`)
	cmd.Flags().BoolVarP(&o.Year, "year", "y", false,
		"Show the whole year.")
}
