package export

import (
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rmacedo/pegada/internal/footprint"
	"github.com/rmacedo/pegada/internal/numeric"
)

// Sheet names of the exported workbook.
const (
	SummarySheet    = "Resumo"
	CategoriesSheet = "Categorias"
)

// WriteExcel exports the computed session as a two-sheet workbook: a
// key/value summary and one row per category with its computed metrics.
func WriteExcel(session *footprint.Session, path string, now time.Time) error {
	comp := session.Compute()
	params := session.Params()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := buildSummarySheet(f, comp, params, now); err != nil {
		return err
	}
	if err := buildCategoriesSheet(f, comp); err != nil {
		return err
	}

	// Drop the implicit default sheet so the workbook opens on the summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	idx, err := f.GetSheetIndex(SummarySheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	return f.SaveAs(path)
}

func buildSummarySheet(f *excelize.File, comp footprint.Computation, params footprint.Parameters, now time.Time) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	consolidated := "ha"
	if comp.UseGha {
		consolidated = "gha"
	}
	var perCapita any
	if comp.HasPerCapita {
		perCapita = comp.PerCapita
	} else {
		perCapita = ""
	}

	rows := [][]any{
		{"Campo", "Valor"},
		{"Ano-base", params.BaseYear},
		{"Unidade", params.UnitName},
		{"Fator de absorção (t/ha/ano)", comp.AbsorptionFactor},
		{"Fator de equivalência", comp.EquivalenceFactor},
		{"População", params.Population},
		{"Consolidado em", consolidated},
		{"Emissão total (t CO₂/ano)", comp.TotalTon},
		{"Área total (ha/ano)", comp.TotalHa},
		{"Pegada total (gha/ano)", comp.TotalGha},
		{fmt.Sprintf("Pegada per capita (%s)", params.PerCapitaUnit()), perCapita},
		{"Data de exportação", now.UTC().Format(time.RFC3339)},
	}

	return writeRows(f, SummarySheet, rows)
}

func buildCategoriesSheet(f *excelize.File, comp footprint.Computation) error {
	if _, err := f.NewSheet(CategoriesSheet); err != nil {
		return err
	}

	rows := [][]any{{
		"Categoria", "Ativa", "Consumo anual", "Vida útil (anos)", "Unidade",
		"Fator de emissão (kg CO₂/unidade)", "Emissão (kg CO₂)", "Emissão (t CO₂)",
		"Área (ha/ano)", "Pegada (gha/ano)", "Base metodológica",
	}}

	for _, row := range comp.Rows {
		cat := row.Category
		active := "Não"
		if cat.Enabled {
			active = "Sim"
		}
		rows = append(rows, []any{
			cat.Name,
			active,
			quantityCell(cat.Consumption),
			lifeSpanCell(cat),
			cat.Unit,
			quantityCell(cat.FE),
			row.Metrics.Kg,
			row.Metrics.Ton,
			row.Metrics.AreaHa,
			row.Metrics.Gha,
			cat.Method,
		})
	}

	return writeRows(f, CategoriesSheet, rows)
}

// quantityCell exports a raw quantity as a number when it parses, keeping
// blanks blank instead of coercing them to zero.
func quantityCell(raw string) any {
	if v, ok := parseCell(raw); ok {
		return v
	}
	return ""
}

func lifeSpanCell(cat footprint.CategoryRecord) any {
	if !cat.HasUsefulLife {
		return ""
	}
	return quantityCell(cat.LifeSpan)
}

func parseCell(raw string) (float64, bool) {
	v := numeric.Parse(raw)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
