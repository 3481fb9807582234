package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/runner/catalog"
)

func addCatalog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the years and months the picker offers",
		Example: `
datepick catalog
datepick catalog --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if output.JSON {
				pp := &printers.PrettyPrint{}
				return output.HandleError(pp.JSON(catalog.List()))
			}
			c := catalog.Catalog{}
			return output.HandleError(c.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
