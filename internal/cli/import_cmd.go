package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmacedo/pegada/internal/footprint"
	"github.com/rmacedo/pegada/internal/snapshot"
)

// newImportCmd creates the JSON import command. Any parse or shape failure
// leaves the saved state untouched.
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <arquivo.json>",
		Short: "Import a snapshot, reconciling it against the current catalog",
		Long: `Reads an exported (or externally produced) JSON snapshot. Snapshots from
older schema versions are migrated: built-in categories adopt the current
methodology while user consumption, enabled flags and custom categories are
preserved. On any failure the previously saved state is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, st := loadSession(cmd)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("ler arquivo: %w", err)
			}

			parsed, err := snapshot.Parse(data)
			if err != nil {
				cmd.PrintErrln("Falha ao importar JSON. Verifique o formato do arquivo.")
				return err
			}

			session.SetParams(parsed.ApplyParams(session.Params()))
			session.ReplaceCategories(snapshot.Reconcile(parsed))

			saveSession(cmd, st, session)
			logger.Info().Str("file", args[0]).Int("schema", parsed.Schema).
				Int("categories", len(session.Categories())).Msg("snapshot imported")
			cmd.Println("JSON importado com sucesso.")
			renderReport(cmd.OutOrStdout(), session, false)
			return nil
		},
	}
}

// newResetCmd restores the default catalog and parameters.
func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all data and restore the default catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				return fmt.Errorf("reset apaga todos os dados; confirme com --force")
			}

			st := openStore(cmd)
			session := footprint.DefaultSession()

			saveSession(cmd, st, session)
			cmd.Println("Estado padrão restaurado.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm discarding all saved data")

	return cmd
}
