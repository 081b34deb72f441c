package footprint

import (
	"sort"
)

// Row pairs a category with its computed metrics.
type Row struct {
	Category CategoryRecord
	Metrics  RowMetrics
}

// Amount returns the row's contribution in the selected footprint unit.
func (r Row) Amount(useGha bool) float64 {
	if useGha {
		return r.Metrics.Gha
	}
	return r.Metrics.AreaHa
}

// Computation is the full result of one evaluation pass: every row plus the
// aggregate totals, resolved global factors, and per-capita value.
type Computation struct {
	AbsorptionFactor  float64
	EquivalenceFactor float64
	UseGha            bool

	Rows []Row

	TotalTon float64
	TotalHa  float64
	TotalGha float64

	// PerCapita is only meaningful when HasPerCapita is true; an unset
	// population must read as "unavailable", never as zero.
	PerCapita    float64
	HasPerCapita bool
	Population   float64
}

// Compute runs the whole pipeline: one ComputeRow per category, then the
// aggregate sums. Invalid rows carry zero metrics, so the sums run over all
// rows without filtering.
func Compute(categories []CategoryRecord, params Parameters) Computation {
	absorption := params.AbsorptionValue()
	equivalence := params.EquivalenceValue()

	comp := Computation{
		AbsorptionFactor:  absorption,
		EquivalenceFactor: equivalence,
		UseGha:            params.UseGha,
		Rows:              make([]Row, 0, len(categories)),
	}

	for _, cat := range categories {
		metrics := ComputeRow(cat, absorption, equivalence)
		comp.Rows = append(comp.Rows, Row{Category: cat, Metrics: metrics})
		comp.TotalTon += metrics.Ton
		comp.TotalHa += metrics.AreaHa
		comp.TotalGha += metrics.Gha
	}

	if population, ok := params.PopulationValue(); ok {
		comp.Population = population
		comp.HasPerCapita = true
		if params.UseGha {
			comp.PerCapita = comp.TotalGha / population
		} else {
			comp.PerCapita = comp.TotalHa / population
		}
	}

	return comp
}

// Total returns the aggregate footprint in the selected unit.
func (c Computation) Total() float64 {
	if c.UseGha {
		return c.TotalGha
	}
	return c.TotalHa
}

// Breakdown returns the valid rows sorted descending by their contribution
// in the selected unit. It drives proportional displays; totals do not
// depend on it.
func (c Computation) Breakdown() []Row {
	valid := make([]Row, 0, len(c.Rows))
	for _, row := range c.Rows {
		if row.Metrics.Valid {
			valid = append(valid, row)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Amount(c.UseGha) > valid[j].Amount(c.UseGha)
	})
	return valid
}

// Warnings lists categories excluded for a correctable reason, grouped by
// cause. A category appears when it is enabled and has a usable consumption
// but its emission factor (or required lifespan) is missing or invalid.
type Warnings struct {
	// InvalidFE names categories with consumption but unusable FE.
	InvalidFE []string
	// InvalidLifeSpan names amortized categories with unusable lifespan.
	InvalidLifeSpan []string
}

// Empty reports whether there is nothing to warn about.
func (w Warnings) Empty() bool {
	return len(w.InvalidFE) == 0 && len(w.InvalidLifeSpan) == 0
}

// CollectWarnings inspects every category for excluded-but-correctable
// conditions. Disabled categories and categories without consumption are
// silent: they are excluded on purpose.
func CollectWarnings(categories []CategoryRecord) Warnings {
	var w Warnings
	for _, cat := range categories {
		if !cat.Enabled {
			continue
		}
		if _, ok := cat.ConsumptionValue(); !ok {
			continue
		}
		if _, ok := cat.FEValue(); !ok {
			w.InvalidFE = append(w.InvalidFE, cat.Name)
			continue
		}
		if cat.HasUsefulLife {
			if _, ok := cat.LifeSpanValue(); !ok {
				w.InvalidLifeSpan = append(w.InvalidLifeSpan, cat.Name)
			}
		}
	}
	return w
}
