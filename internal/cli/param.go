package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rmacedo/pegada/internal/footprint"
)

// newParamCmd groups the global-parameter commands.
func newParamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "param",
		Short: "Manage global parameters",
	}

	cmd.AddCommand(newParamListCmd(), newParamSetCmd())

	return cmd
}

func newParamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the global parameters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _ := loadSession(cmd)
			params := session.Params()

			useGha := "false"
			if params.UseGha {
				useGha = "true"
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabwriterPadding, ' ', 0)
			fmt.Fprintf(tw, "baseYear\t%s\n", blankDash(params.BaseYear))
			fmt.Fprintf(tw, "unitName\t%s\n", blankDash(params.UnitName))
			fmt.Fprintf(tw, "absorptionFactor\t%s\t(em uso: %s)\n",
				blankDash(params.AbsorptionFactor),
				footprint.FormatNumber(params.AbsorptionValue(), 2))
			fmt.Fprintf(tw, "equivalenceFactor\t%s\t(em uso: %s)\n",
				blankDash(params.EquivalenceFactor),
				footprint.FormatNumber(params.EquivalenceValue(), 2))
			fmt.Fprintf(tw, "population\t%s\n", blankDash(params.Population))
			fmt.Fprintf(tw, "useGha\t%s\n", useGha)
			return tw.Flush()
		},
	}
}

func newParamSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <campo> <valor>",
		Short: "Set one global parameter",
		Long: `Sets a global parameter. Fields: baseYear, unitName, absorptionFactor,
equivalenceFactor, population, useGha. Numeric values are kept as typed;
empty or invalid factors fall back to the defaults (6,27 and 1,37).`,
		Example: `  pegada param set baseYear 2026
  pegada param set population 1.200
  pegada param set useGha false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, st := loadSession(cmd)

			params := session.Params()
			switch args[0] {
			case "baseYear":
				params.BaseYear = args[1]
			case "unitName":
				params.UnitName = args[1]
			case "absorptionFactor":
				params.AbsorptionFactor = args[1]
			case "equivalenceFactor":
				params.EquivalenceFactor = args[1]
			case "population":
				params.Population = args[1]
			case "useGha":
				params.UseGha = args[1] == "true" || args[1] == "sim" || args[1] == "1"
			default:
				return fmt.Errorf("parâmetro %q: %w", args[0], footprint.ErrUnknownField)
			}
			session.SetParams(params)

			saveSession(cmd, st, session)
			renderReport(cmd.OutOrStdout(), session, false)
			return nil
		},
	}
}
