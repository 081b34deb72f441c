package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rmacedo/pegada/internal/footprint"
)

// newCategoryCmd groups the category mutation commands.
func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage consumption categories",
	}

	cmd.AddCommand(
		newCategoryListCmd(),
		newCategoryAddCmd(),
		newCategoryRemoveCmd(),
		newCategorySetCmd(),
		newCategoryEnableCmd(),
		newCategoryDisableCmd(),
		newCategoryResetCmd(),
	)

	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with their ids",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _ := loadSession(cmd)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabwriterPadding, ' ', 0)
			fmt.Fprintln(tw, "ID\tCATEGORIA\tATIVA\tTIPO\tCONSUMO\tFE")
			for _, cat := range session.Categories() {
				kind := "padrão"
				if cat.Custom {
					kind = "personalizada"
				}
				active := "sim"
				if !cat.Enabled {
					active = "não"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					cat.ID, cat.Name, active, kind, blankDash(cat.Consumption), blankDash(cat.FE))
			}
			return tw.Flush()
		},
	}
}

func newCategoryAddCmd() *cobra.Command {
	var (
		unit   string
		fe     string
		method string
	)

	cmd := &cobra.Command{
		Use:   "add <nome>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, st := loadSession(cmd)

			cat := session.AddCategory(args[0])
			if unit != "" {
				_ = session.UpdateField(cat.ID, footprint.FieldUnit, unit)
			}
			if fe != "" {
				_ = session.UpdateField(cat.ID, footprint.FieldFE, fe)
			}
			if method != "" {
				_ = session.UpdateField(cat.ID, footprint.FieldMethod, method)
			}

			saveSession(cmd, st, session)
			cmd.Printf("Categoria %q adicionada (%s)\n", cat.Name, cat.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "consumption unit label (e.g. kWh/ano)")
	cmd.Flags().StringVar(&fe, "fe", "", "emission factor in kg CO₂ per unit")
	cmd.Flags().StringVar(&method, "method", "", "methodology citation")

	return cmd
}

func newCategoryRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id|nome>",
		Short: "Remove a custom category (built-ins are protected)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, st := loadSession(cmd)

			cat, err := resolveCategory(session, args[0])
			if err != nil {
				return err
			}
			if err := session.RemoveCategory(cat.ID); err != nil {
				return fmt.Errorf("remover %q: %w", cat.Name, err)
			}

			saveSession(cmd, st, session)
			cmd.Printf("Categoria %q removida\n", cat.Name)
			return nil
		},
	}
}

func newCategorySetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <id|nome> <campo> <valor>",
		Short: "Update one category field",
		Long: `Updates one editable field of a category. Fields: name, unit, fe,
consumption, method, lifeSpan, hasUsefulLife, enabled. Quantity fields accept
pt-BR formatting ("1.234,56") or plain decimals ("1234.56").`,
		Example: `  pegada category set "Energia elétrica" consumption 125000
  pegada category set Diesel fe 2,671
  pegada category set "Áreas construídas" lifeSpan 40`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, st := loadSession(cmd)

			cat, err := resolveCategory(session, args[0])
			if err != nil {
				return err
			}
			if err := session.UpdateField(cat.ID, args[1], args[2]); err != nil {
				return fmt.Errorf("atualizar %q: %w", cat.Name, err)
			}

			saveSession(cmd, st, session)
			renderReport(cmd.OutOrStdout(), session, false)
			return nil
		},
	}

	return cmd
}

func newCategoryEnableCmd() *cobra.Command {
	return setEnabledCmd("enable", "Include a category in the computation", true)
}

func newCategoryDisableCmd() *cobra.Command {
	return setEnabledCmd("disable", "Exclude a category from the computation", false)
}

func setEnabledCmd(use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id|nome>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, st := loadSession(cmd)

			cat, err := resolveCategory(session, args[0])
			if err != nil {
				return err
			}
			if err := session.SetEnabled(cat.ID, enabled); err != nil {
				return err
			}

			saveSession(cmd, st, session)
			return nil
		},
	}
}

func newCategoryResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear every category's consumption and re-enable all of them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, st := loadSession(cmd)

			session.ResetConsumption()

			saveSession(cmd, st, session)
			cmd.Println("Consumos limpos.")
			return nil
		},
	}
}

// resolveCategory finds a category by id first, then by folded name.
func resolveCategory(session *footprint.Session, ref string) (footprint.CategoryRecord, error) {
	if cat, ok := session.Find(ref); ok {
		return cat, nil
	}
	if cat, ok := session.FindByName(ref); ok {
		return cat, nil
	}
	return footprint.CategoryRecord{}, fmt.Errorf("categoria %q: %w", ref, footprint.ErrUnknownCategory)
}
