package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"treeparse/internal/driver"
)

func newWatchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate parsers whenever the bean sources change",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Infow("watching for changes", "roots", a.cfg.Roots, "output", a.cfg.Output)
			return a.driver().Watch(ctx, func(res *driver.Result, err error) {
				if err != nil {
					a.logger.Errorw("generation failed", "error", err)
					return
				}
				a.logDiagnostics(res.Diagnostics)
			})
		},
	}

	cmd.Flags().Bool("clean", true, "remove previously generated files from the output directory")
	return cmd
}
