package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/config"
	"tableflip.dev/datepick/pkg/printers"
)

func addConfig(topLevel *cobra.Command, cfg config.Config) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the settings in effect and where they came from",
		Example: `
datepick config
DATEPICK_MODE=range datepick config --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if output.JSON {
				pp := &printers.PrettyPrint{}
				return output.HandleError(pp.JSON(cfg))
			}
			file := cfg.File
			if file == "" {
				file = "(none)"
			}
			tbl := uitable.New()
			tbl.Separator = "  "
			bold := color.New(color.Bold)
			tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("Value"))
			tbl.AddRow("file", file)
			tbl.AddRow("mode", cfg.Mode)
			tbl.AddRow("placeholder", cfg.Placeholder)
			tbl.AddRow("reset", strconv.FormatBool(cfg.Reset))
			tbl.AddRow("range", strconv.FormatBool(cfg.Range))
			tbl.AddRow("width", strconv.Itoa(cfg.Width))
			_, _ = fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
