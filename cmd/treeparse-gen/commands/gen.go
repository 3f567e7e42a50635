package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate parsers for the configured roots",
		Example: `  treeparse-gen gen -r treeparse/store.Order -o ./parsers
  treeparse-gen gen -r example.com/api.Request -r example.com/api.Response --custom-dir ./parsers/custom`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.driver().Generate(cmd.Context())
			if err != nil {
				return err
			}

			a.logDiagnostics(res.Diagnostics)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d file(s) to %s\n", len(res.Files), a.cfg.Output)
			return nil
		},
	}

	cmd.Flags().Bool("clean", true, "remove previously generated files from the output directory")
	return cmd
}
