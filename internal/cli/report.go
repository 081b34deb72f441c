package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newReportCmd creates the report command: recompute everything and render
// the footprint table, totals, breakdown and warnings.
func newReportCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the footprint report for the saved dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _ := loadSession(cmd)

			styled := !plain && isTerminal(os.Stdout)
			renderReport(cmd.OutOrStdout(), session, styled)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "disable styled output")

	return cmd
}
