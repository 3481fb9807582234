package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/config"
	"tableflip.dev/datepick/pkg/runner/pick"
)

func addPick(topLevel *cobra.Command, loader *config.Loader, cfg config.Config) {
	po := &options.PickerOptions{}
	vo := &options.ValueOptions{}
	to := &options.TraceOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open an interactive date picker and print the result",
		Example: `
datepick pick
datepick pick --mode range --value 2024-03-01..2024-03-09
due=$(datepick pick --mode single --placeholder "Due date")
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := po.GetMode()
			if err != nil {
				return output.HandleError(err)
			}
			initial, err := vo.GetValue()
			if err != nil {
				return output.HandleError(err)
			}
			p := &pick.Pick{
				Mode:        mode,
				Initial:     initial,
				Placeholder: po.Placeholder,
				Reset:       po.Reset,
				Range:       po.Range,
				Width:       po.Width,
				Events:      to.Events,
				LogFile:     to.LogFile,
				JSON:        output.JSON,
			}
			if to.Watch {
				p.Loader = loader
			}
			return output.HandleError(p.Do(context.Background()))
		},
	}
	options.AddPickerArgs(cmd, po, cfg)
	options.AddValueArgs(cmd, vo)
	options.AddTraceArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
