package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmacedo/pegada/internal/export"
)

// newExportCmd groups the export formats.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dataset",
	}

	cmd.AddCommand(newExportJSONCmd(), newExportExcelCmd())

	return cmd
}

func newExportJSONCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Export the full snapshot as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _ := loadSession(cmd)

			path := out
			if path == "" {
				path = export.JSONFileName(session.Params().BaseYear)
			}
			if err := export.WriteJSON(session, path, time.Now()); err != nil {
				return fmt.Errorf("exportar JSON: %w", err)
			}

			logger.Info().Str("path", path).Msg("json exported")
			cmd.Printf("JSON exportado com sucesso: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default: pegada-ecologica-<ano>.json)")

	return cmd
}

func newExportExcelCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "excel",
		Short: "Export a two-sheet workbook (Resumo + Categorias)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _ := loadSession(cmd)

			path := out
			if path == "" {
				path = export.ExcelFileName(session.Params().BaseYear)
			}
			if err := export.WriteExcel(session, path, time.Now()); err != nil {
				return fmt.Errorf("exportar planilha: %w", err)
			}

			logger.Info().Str("path", path).Msg("workbook exported")
			cmd.Printf("Planilha Excel exportada com sucesso: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default: pegada-ecologica-<ano>.xlsx)")

	return cmd
}
