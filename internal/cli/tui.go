package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rmacedo/pegada/internal/footprint"
	"github.com/rmacedo/pegada/internal/tui"
)

// newTUICmd creates the interactive editor command. Every committed edit is
// saved immediately, so quitting at any point loses nothing.
func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit categories and see totals interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("o editor interativo requer um terminal; use 'pegada report'")
			}

			session, st := loadSession(cmd)

			model := tui.NewModel(session, func(s *footprint.Session) string {
				if err := st.Save(s); err != nil {
					logger.Warn().Err(err).Msg("autosave failed")
					return "Não foi possível salvar o estado automaticamente."
				}
				return ""
			})

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("executar editor interativo: %w", err)
			}

			renderReport(cmd.OutOrStdout(), model.Session(), false)
			return nil
		},
	}
}
