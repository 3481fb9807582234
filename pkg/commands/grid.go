package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/grid"
)

func addGrid(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	vo := &options.ValueOptions{}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print a month grid with a value highlighted",
		Example: `
datepick grid
datepick grid --month "March 2024" --value 2024-03-10
datepick grid --value 2024-03-01..2024-03-09 --year
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vo.GetValue()
			if err != nil {
				return output.HandleError(err)
			}
			g := &grid.Grid{Month: mo.Month, Year: mo.Year, Value: v}
			return output.HandleError(g.Do(context.Background()))
		},
	}
	options.AddMonthArgs(cmd, mo)
	options.AddValueArgs(cmd, vo)

	topLevel.AddCommand(cmd)
}
