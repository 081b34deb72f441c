package footprint

import "github.com/rmacedo/pegada/internal/numeric"

// Default global factors, used whenever the stored text is empty or does not
// parse to a positive number.
const (
	// DefaultAbsorptionFactor is the assumed annual CO2 absorption
	// capacity in t/ha/ano.
	DefaultAbsorptionFactor = 6.27
	// DefaultEquivalenceFactor converts hectares to global hectares.
	DefaultEquivalenceFactor = 1.37
)

// Parameters are the process-wide settings of a session. Numeric fields keep
// the raw text the user typed (preserving pt-BR formatting); values are
// resolved on demand.
type Parameters struct {
	BaseYear          string `json:"baseYear"`
	UnitName          string `json:"unitName"`
	AbsorptionFactor  string `json:"absorptionFactor"`
	EquivalenceFactor string `json:"equivalenceFactor"`
	Population        string `json:"population"`
	UseGha            bool   `json:"useGha"`
}

// DefaultParameters returns the settings of a fresh session.
func DefaultParameters() Parameters {
	return Parameters{UseGha: true}
}

// AbsorptionValue resolves the absorption factor, falling back to the
// default when unset or non-positive.
func (p Parameters) AbsorptionValue() float64 {
	return numeric.PositiveOr(p.AbsorptionFactor, DefaultAbsorptionFactor)
}

// EquivalenceValue resolves the equivalence factor, falling back to the
// default when unset or non-positive.
func (p Parameters) EquivalenceValue() float64 {
	return numeric.PositiveOr(p.EquivalenceFactor, DefaultEquivalenceFactor)
}

// PopulationValue resolves the population. There is no fallback: a missing
// or non-positive population makes the per-capita figure unavailable.
func (p Parameters) PopulationValue() (float64, bool) {
	if !numeric.IsPositive(p.Population) {
		return 0, false
	}
	return numeric.Parse(p.Population), true
}

// FootprintUnit returns the display label of the selected footprint unit.
func (p Parameters) FootprintUnit() string {
	if p.UseGha {
		return "gha/ano"
	}
	return "ha/ano"
}

// PerCapitaUnit returns the display label of the per-capita unit.
func (p Parameters) PerCapitaUnit() string {
	if p.UseGha {
		return "gha/pessoa/ano"
	}
	return "ha/pessoa/ano"
}
