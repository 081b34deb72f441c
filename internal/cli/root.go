// Package cli wires the pegada commands: report, category and parameter
// mutations, import/export, and the interactive editor.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rmacedo/pegada/internal/config"
	"github.com/rmacedo/pegada/internal/footprint"
	"github.com/rmacedo/pegada/internal/logging"
	"github.com/rmacedo/pegada/internal/store"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pegada CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logResult logging.Result

	cmd := &cobra.Command{
		Use:     "pegada",
		Short:   "Calculadora de pegada ecológica",
		Long:    "Pegada: converte consumos anuais em emissões de CO₂ e pegada ecológica (ha/gha)",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg := config.New()

			logCfg := logging.Config{Level: cfg.Logging.Level, File: cfg.Logging.File}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logCfg.Level = "debug"
				logCfg.File = ""
			}
			logResult = logging.NewLogger(logCfg)
			logger = logging.ComponentLogger(logResult.Logger, "cli")

			if statePath, _ := cmd.Flags().GetString("state"); statePath == "" {
				_ = cmd.Flags().Set("state", cfg.StatePath)
			}

			logger.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logResult.Close()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("state", "", "state file path (default: ~/.pegada/state.json)")

	cmd.AddCommand(
		newReportCmd(),
		newCategoryCmd(),
		newParamCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newTUICmd(),
	)

	return cmd
}

const rootCmdExample = `  # Show the current footprint report
  pegada report

  # Record this year's electricity consumption
  pegada category set "Energia elétrica" consumption 125000

  # Set the population for the per-capita figure
  pegada param set population 1200

  # Export the dataset
  pegada export json
  pegada export excel

  # Edit everything interactively
  pegada tui`

// openStore resolves the state store from the --state flag.
func openStore(cmd *cobra.Command) *store.Store {
	path, _ := cmd.Flags().GetString("state")
	return store.New(path)
}

// loadSession opens the saved session, falling back to the default catalog.
// Any load problem is a one-line status, never a failure.
func loadSession(cmd *cobra.Command) (*footprint.Session, *store.Store) {
	st := openStore(cmd)
	session, msg := st.LoadOrDefault()
	if msg != "" {
		logger.Warn().Str("state", st.Path()).Msg("falling back to default catalog")
		cmd.PrintErrln(msg)
	}
	return session, st
}

// saveSession persists the session, reporting failure without aborting:
// the in-memory result of the command was already shown.
func saveSession(cmd *cobra.Command, st *store.Store, session *footprint.Session) {
	if err := st.Save(session); err != nil {
		logger.Warn().Err(err).Str("state", st.Path()).Msg("autosave failed")
		cmd.PrintErrln("Não foi possível salvar o estado automaticamente.")
	}
}
