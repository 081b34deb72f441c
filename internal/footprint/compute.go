package footprint

// RowMetrics holds the derived emission and area values for one category.
// Metrics are recomputed from the record and global factors on every
// evaluation; they are never persisted or mutated independently.
type RowMetrics struct {
	Kg     float64 `json:"kg"`
	Ton    float64 `json:"ton"`
	AreaHa float64 `json:"area"`
	Gha    float64 `json:"gha"`
	Valid  bool    `json:"valid"`
}

// ComputeRow derives the metrics for one category record.
//
// A row is excluded (all-zero, Valid=false) when the category is disabled,
// its consumption or emission factor does not parse to a finite positive
// number, or useful-life amortization is requested with an unusable
// lifespan. Otherwise:
//
//	kg  = consumption * fe / divisor   (divisor = lifeSpan years, or 1)
//	ton = kg / 1000
//	ha  = ton / absorptionFactor
//	gha = ha * equivalenceFactor
//
// The lifespan divisor spreads a multi-year emission burden (constructed
// area) over its useful life instead of charging it all to one period.
func ComputeRow(cat CategoryRecord, absorptionFactor, equivalenceFactor float64) RowMetrics {
	if !cat.Enabled {
		return RowMetrics{}
	}

	consumption, ok := cat.ConsumptionValue()
	if !ok {
		return RowMetrics{}
	}

	fe, ok := cat.FEValue()
	if !ok {
		return RowMetrics{}
	}

	divisor := 1.0
	if cat.HasUsefulLife {
		lifeSpan, ok := cat.LifeSpanValue()
		if !ok {
			return RowMetrics{}
		}
		divisor = lifeSpan
	}

	kg := consumption * fe / divisor
	ton := kg / 1000
	area := ton / absorptionFactor
	gha := area * equivalenceFactor

	return RowMetrics{Kg: kg, Ton: ton, AreaHa: area, Gha: gha, Valid: true}
}
