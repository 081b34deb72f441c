// Package footprint implements the ecological-footprint computation engine:
// category records, per-row emission/area metrics, aggregation, and the
// session state container that owns the mutable category sequence.
package footprint

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/rmacedo/pegada/internal/numeric"
)

// Schema is the current category-record schema version. Version 2 added
// useful-life amortization (HasUsefulLife/LifeSpan).
const Schema = 2

// Field defaults applied during normalization.
const (
	DefaultUnit     = "unidade/ano"
	DefaultMethod   = "Base metodológica não informada."
	DefaultLifeSpan = "50"
)

// CategoryRecord is one consumption category. Quantity fields (FE,
// Consumption, LifeSpan) hold the raw text the user typed; numeric values
// are derived on demand via numeric.Parse and never cached.
type CategoryRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FE            string `json:"fe"`
	Unit          string `json:"unit"`
	Method        string `json:"method"`
	Enabled       bool   `json:"enabled"`
	Consumption   string `json:"consumption"`
	Custom        bool   `json:"custom"`
	HasUsefulLife bool   `json:"hasUsefulLife"`
	LifeSpan      string `json:"lifeSpan"`
}

// FEValue returns the parsed emission factor and whether it is usable
// (finite and positive).
func (c CategoryRecord) FEValue() (float64, bool) {
	return positiveValue(c.FE)
}

// ConsumptionValue returns the parsed consumption and whether it is usable.
func (c CategoryRecord) ConsumptionValue() (float64, bool) {
	return positiveValue(c.Consumption)
}

// LifeSpanValue returns the parsed lifespan in years and whether it is
// usable. Only meaningful when HasUsefulLife is set.
func (c CategoryRecord) LifeSpanValue() (float64, bool) {
	return positiveValue(c.LifeSpan)
}

func positiveValue(raw string) (float64, bool) {
	if !numeric.IsPositive(raw) {
		return 0, false
	}
	return numeric.Parse(raw), true
}

// NewID generates a fresh category identifier.
func NewID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// foldTransformer lowercases and strips diacritics so "Áreas Construídas"
// and "areas construidas" compare equal.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldName normalizes a category name for matching: trimmed, lowercased,
// diacritics removed. Reconciliation matches legacy categories to the
// built-in catalog by folded name, not by id.
func FoldName(name string) string {
	folded, _, err := transform.String(foldTransformer, strings.TrimSpace(name))
	if err != nil {
		folded = strings.TrimSpace(name)
	}
	return strings.ToLower(folded)
}

// SeedCategory is one canonical built-in catalog entry.
type SeedCategory struct {
	Name          string
	FE            string
	Unit          string
	Method        string
	HasUsefulLife bool
	LifeSpan      string
}

// Seed is the built-in category catalog, institutional Brazilian emission
// factors. FE values are data, not engine constants: the engine treats them
// like any user-supplied factor.
var Seed = []SeedCategory{
	{
		Name:   "Energia elétrica",
		FE:     "0.0545",
		Unit:   "kWh/ano",
		Method: "Fator implícito das emissões institucionais 2024 (matriz elétrica brasileira).",
	},
	{
		Name:   "Água",
		FE:     "0.5",
		Unit:   "m³/ano",
		Method: "Amaral (2010) - USC.",
	},
	{
		Name:   "Papel virgem",
		FE:     "1.84",
		Unit:   "kg/ano",
		Method: "USC (apud Amaral, 2010; Soares, 2015).",
	},
	{
		Name:   "Papel reciclado",
		FE:     "0.61",
		Unit:   "kg/ano",
		Method: "USC (apud Amaral, 2010; Soares, 2015).",
	},
	{
		Name:   "Diesel",
		FE:     "2.671",
		Unit:   "L/ano",
		Method: "MMA (2011) / Soares (2015).",
	},
	{
		Name:   "Gasolina",
		FE:     "2.269",
		Unit:   "L/ano",
		Method: "MMA (2011) / Soares (2015).",
	},
	{
		Name:   "Etanol",
		FE:     "1.178",
		Unit:   "L/ano",
		Method: "MMA (2011) / Soares (2015).",
	},
	{
		Name:   "Resíduos sólidos (aterro comum)",
		FE:     "",
		Unit:   "kg/ano",
		Method: "IPCC / literatura específica (ajuste o FE conforme o resíduo).",
	},
	{
		Name:          "Áreas construídas",
		FE:            "520",
		Unit:          "m²",
		Method:        "USC (apud Amaral, 2010).",
		HasUsefulLife: true,
		LifeSpan:      DefaultLifeSpan,
	},
}

// constructedAreaFold matches the built-in constructed-area category; legacy
// records whose name contains it inherit useful-life amortization.
var constructedAreaFold = FoldName("Áreas construídas")

// Record builds a fresh CategoryRecord from a seed entry.
func (s SeedCategory) Record() CategoryRecord {
	return CategoryRecord{
		ID:            NewID(),
		Name:          s.Name,
		FE:            s.FE,
		Unit:          s.Unit,
		Method:        s.Method,
		Enabled:       true,
		Consumption:   "",
		Custom:        false,
		HasUsefulLife: s.HasUsefulLife,
		LifeSpan:      s.LifeSpan,
	}
}

// DefaultCategories returns the built-in catalog as fresh records.
func DefaultCategories() []CategoryRecord {
	records := make([]CategoryRecord, 0, len(Seed))
	for _, s := range Seed {
		records = append(records, s.Record())
	}
	return records
}

// RawCategory is an untrusted category as decoded at an import or storage
// boundary. Loose fields absorb the duck typing of legacy payloads (numbers
// or strings for quantities, missing booleans); Normalize repairs them into
// a well-formed CategoryRecord.
type RawCategory struct {
	ID            any `json:"id"`
	Name          any `json:"name"`
	FE            any `json:"fe"`
	Unit          any `json:"unit"`
	Method        any `json:"method"`
	Enabled       any `json:"enabled"`
	Consumption   any `json:"consumption"`
	Custom        any `json:"custom"`
	HasUsefulLife any `json:"hasUsefulLife"`
	LifeSpan      any `json:"lifeSpan"`
}

// Normalize repairs an untrusted record into a well-formed CategoryRecord.
// index is the record's position, used for the fallback name. Each field is
// repaired independently; the function is idempotent apart from replacing an
// invalid id exactly once.
func Normalize(raw RawCategory, index int) CategoryRecord {
	name := stringOr(raw.Name, fmt.Sprintf("Categoria %d", index+1))

	rec := CategoryRecord{
		ID:          idOr(raw.ID),
		Name:        name,
		FE:          quantityText(raw.FE),
		Unit:        stringOr(raw.Unit, DefaultUnit),
		Method:      stringOr(raw.Method, DefaultMethod),
		Enabled:     raw.Enabled != false,
		Consumption: quantityText(raw.Consumption),
	}

	if custom, ok := raw.Custom.(bool); ok {
		rec.Custom = custom
	} else {
		// Unknown provenance: assume user-added so the record stays
		// removable instead of becoming a protected built-in.
		rec.Custom = true
	}

	if has, ok := raw.HasUsefulLife.(bool); ok {
		rec.HasUsefulLife = has
	} else {
		rec.HasUsefulLife = strings.Contains(FoldName(name), constructedAreaFold)
	}

	rec.LifeSpan = quantityText(raw.LifeSpan)
	if rec.LifeSpan == "" && rec.HasUsefulLife {
		rec.LifeSpan = DefaultLifeSpan
	}

	return rec
}

// stringOr returns the trimmed string value of v, or fallback when v is not
// a non-empty string.
func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

// idOr keeps a non-empty string id and generates a fresh one otherwise.
func idOr(v any) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return NewID()
}

// quantityText carries a quantity field through as raw text. Numbers from
// JSON arrive as float64 and are re-rendered; nil and empty stay empty.
// Parsing is deferred to computation time.
func quantityText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
