package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"treeparse/internal/driver"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the types parsers would be generated for",
		Long: `Analyze resolves the roots and prints their closure: the types that get a
generated parser, the types handled by custom parsers, the skipped ones and the
diagnostics. Nothing is written.

Formats: text (default), yaml, dump.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			analysis, err := a.driver().Analyze(cmd.Context())
			if err != nil {
				return err
			}

			report := driver.NewReport(analysis)
			out := cmd.OutOrStdout()

			switch format {
			case "text":
				return report.WriteText(out)
			case "yaml":
				return report.WriteYAML(out)
			case "dump":
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
				cfg.Fdump(out, report)
				return nil
			default:
				return errors.Newf("unknown format %q, expected text, yaml or dump", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, yaml or dump")
	return cmd
}
