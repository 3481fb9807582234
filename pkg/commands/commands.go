package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/config"
	"tableflip.dev/datepick/pkg/snake"
)

var (
	output      = &options.OutputOptions{}
	interactive = &options.InteractiveOptions{}
)

func New() *cobra.Command {
	loader := config.NewLoader()
	cfg, cfgErr := loader.Load()

	cmd := &cobra.Command{
		Use:          "datepick",
		Short:        base.Wrap80("Pick a date, or a range of dates, in the terminal."),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfgErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive.Interactive {
				return snake.PromptNext(cmd, args)
			}
			return cmd.Help()
		},
	}
	options.AddOutputArg(cmd, output)
	options.InteractiveArgs(cmd, interactive)

	AddCommands(cmd, loader, cfg)
	return cmd
}

func AddCommands(topLevel *cobra.Command, loader *config.Loader, cfg config.Config) {
	addPick(topLevel, loader, cfg)
	addGrid(topLevel)
	addCatalog(topLevel)
	addConfig(topLevel, cfg)
	addVersion(topLevel)
}
