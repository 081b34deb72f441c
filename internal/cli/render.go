package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmacedo/pegada/internal/footprint"
)

// tabwriterPadding is the minimum padding between report columns.
const tabwriterPadding = 2

// barWidth is the track width of breakdown bars.
const barWidth = 28

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	totalStyle   = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	barFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// renderReport writes the full footprint report: category table, totals,
// per-capita, breakdown and warnings. styled selects lipgloss decoration
// for terminals; plain output stays pipe-friendly.
func renderReport(w io.Writer, session *footprint.Session, styled bool) {
	comp := session.Compute()
	params := session.Params()

	heading := func(s string) string {
		if styled {
			return titleStyle.Render(s)
		}
		return s
	}

	fmt.Fprintln(w, heading(reportTitle(params)))
	fmt.Fprintln(w)
	renderCategoryTable(w, comp)
	fmt.Fprintln(w)
	renderTotals(w, comp, params, styled)

	if breakdown := comp.Breakdown(); len(breakdown) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, heading("Contribuições"))
		renderBreakdown(w, comp, breakdown, styled)
	}

	if warnings := session.Warnings(); !warnings.Empty() {
		fmt.Fprintln(w)
		renderWarnings(w, warnings, styled)
	}
}

func reportTitle(params footprint.Parameters) string {
	title := "Pegada ecológica"
	if params.UnitName != "" {
		title += " — " + params.UnitName
	}
	if params.BaseYear != "" {
		title += " (" + params.BaseYear + ")"
	}
	return title
}

func renderCategoryTable(w io.Writer, comp footprint.Computation) {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	fmt.Fprintln(tw, "CATEGORIA\tATIVA\tCONSUMO\tUNIDADE\tFE\tEMISSÃO (t)\tÁREA (ha)\tPEGADA (gha)")

	for _, row := range comp.Rows {
		cat := row.Category
		active := "sim"
		if !cat.Enabled {
			active = "não"
		}
		ton, area, gha := "—", "—", "—"
		if row.Metrics.Valid {
			ton = footprint.FormatNumber(row.Metrics.Ton, footprint.FractionMetrics)
			area = footprint.FormatNumber(row.Metrics.AreaHa, footprint.FractionMetrics)
			gha = footprint.FormatNumber(row.Metrics.Gha, footprint.FractionMetrics)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			cat.Name, active, blankDash(cat.Consumption), cat.Unit, blankDash(cat.FE), ton, area, gha)
	}
	_ = tw.Flush()
}

func blankDash(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "—"
	}
	return raw
}

func renderTotals(w io.Writer, comp footprint.Computation, params footprint.Parameters, styled bool) {
	line := func(label, value string) {
		if styled {
			value = totalStyle.Render(value)
		}
		fmt.Fprintf(w, "%s: %s\n", label, value)
	}

	line("Emissão total", footprint.FormatNumber(comp.TotalTon, footprint.FractionMetrics)+" t CO₂/ano")
	line("Área total", footprint.FormatNumber(comp.TotalHa, footprint.FractionMetrics)+" ha/ano")
	line("Pegada total", footprint.FormatNumber(comp.Total(), footprint.FractionMetrics)+" "+params.FootprintUnit())

	if comp.HasPerCapita {
		line("Pegada per capita", footprint.FormatNumber(comp.PerCapita, footprint.FractionMetrics)+" "+params.PerCapitaUnit())
	} else {
		msg := "Informe a população"
		if styled {
			msg = mutedStyle.Render(msg)
		}
		fmt.Fprintf(w, "Pegada per capita: %s\n", msg)
	}
}

func renderBreakdown(w io.Writer, comp footprint.Computation, breakdown []footprint.Row, styled bool) {
	total := comp.Total()
	if total <= 0 {
		fmt.Fprintln(w, "Nenhuma contribuição para exibir. Informe consumos válidos.")
		return
	}

	unit := "ha/ano"
	if comp.UseGha {
		unit = "gha/ano"
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	for _, row := range breakdown {
		amount := row.Amount(comp.UseGha)
		percent := amount / total * 100
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\n",
			row.Category.Name,
			renderBar(percent, styled),
			footprint.FormatNumber(amount, footprint.FractionMetrics), unit,
			footprint.FormatNumber(percent, 2)+"%")
	}
	_ = tw.Flush()
}

func renderBar(percent float64, styled bool) string {
	filled := int(percent / 100 * barWidth)
	if filled < 1 {
		filled = 1
	}
	if filled > barWidth {
		filled = barWidth
	}
	fill := strings.Repeat("█", filled)
	track := strings.Repeat("░", barWidth-filled)
	if styled {
		fill = barFillStyle.Render(fill)
	}
	return fill + track
}

func renderWarnings(w io.Writer, warnings footprint.Warnings, styled bool) {
	warn := func(msg string) {
		if styled {
			msg = warnStyle.Render(msg)
		}
		fmt.Fprintln(w, msg)
	}

	if len(warnings.InvalidFE) > 0 {
		warn(fmt.Sprintf(
			"As categorias %s possuem consumo informado, mas FE inválido ou vazio. Elas não entraram no total até o FE ser corrigido.",
			strings.Join(warnings.InvalidFE, ", ")))
	}
	if len(warnings.InvalidLifeSpan) > 0 {
		warn(fmt.Sprintf(
			"As categorias %s exigem vida útil válida (anos > 0). Elas não entraram no total até a vida útil ser corrigida.",
			strings.Join(warnings.InvalidLifeSpan, ", ")))
	}
}
