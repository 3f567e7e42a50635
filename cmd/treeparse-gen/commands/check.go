package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that generated parsers are up to date",
		Long: `Check generates in memory and compares the result with the output directory.

Exit codes:
  0 - parsers are up to date
  1 - parsers are out of date (diff shown)
  2 - error during check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			drifts, err := a.driver().Check(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(drifts) == 0 {
				fmt.Fprintln(out, "parsers are up to date")
				return nil
			}

			fmt.Fprintf(out, "%d file(s) out of date:\n", len(drifts))
			for _, d := range drifts {
				fmt.Fprintf(out, "  %s %s\n", d.Kind, d.Filename)
			}
			for _, d := range drifts {
				if d.Diff != "" {
					fmt.Fprintf(out, "\n%s", d.Diff)
				}
			}
			fmt.Fprintln(out, "\nrun 'treeparse-gen gen' to update")

			return ErrOutOfDate
		},
	}
}
