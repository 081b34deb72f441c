// Package snapshot serializes session state and reconciles persisted or
// imported snapshots of unknown schema against the current built-in catalog.
package snapshot

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rmacedo/pegada/internal/footprint"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrMalformed indicates input that could not be interpreted as a snapshot
// at all. The caller keeps its prior state (import) or falls back to the
// default catalog (load).
var ErrMalformed = constError("malformed snapshot")

// Snapshot is the persisted/exported state of a session. Numeric global
// parameters are raw strings, preserving the user's typed formatting.
type Snapshot struct {
	Schema            int                        `json:"schema"`
	SavedAt           string                     `json:"savedAt"`
	BaseYear          string                     `json:"baseYear"`
	UnitName          string                     `json:"unitName"`
	AbsorptionFactor  string                     `json:"absorptionFactor"`
	EquivalenceFactor string                     `json:"equivalenceFactor"`
	Population        string                     `json:"population"`
	UseGha            bool                       `json:"useGha"`
	Categories        []footprint.CategoryRecord `json:"categories"`
	ExportedAt        string                     `json:"exportedAt,omitempty"`
}

// Build captures the current session state with the current schema version.
func Build(s *footprint.Session, now time.Time) Snapshot {
	params := s.Params()
	return Snapshot{
		Schema:            footprint.Schema,
		SavedAt:           now.UTC().Format(time.RFC3339),
		BaseYear:          params.BaseYear,
		UnitName:          params.UnitName,
		AbsorptionFactor:  params.AbsorptionFactor,
		EquivalenceFactor: params.EquivalenceFactor,
		Population:        params.Population,
		UseGha:            params.UseGha,
		Categories:        s.Categories(),
	}
}

// Encode renders a snapshot as indented JSON.
func (s Snapshot) Encode() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// raw mirrors Snapshot with loose field types, absorbing legacy payloads
// where globals were numbers and category fields were duck-typed. It is the
// only place unvalidated shapes exist; everything past Parse is typed.
type raw struct {
	Schema            any                     `json:"schema"`
	BaseYear          any                     `json:"baseYear"`
	UnitName          any                     `json:"unitName"`
	AbsorptionFactor  any                     `json:"absorptionFactor"`
	EquivalenceFactor any                     `json:"equivalenceFactor"`
	Population        any                     `json:"population"`
	UseGha            any                     `json:"useGha"`
	Categories        []footprint.RawCategory `json:"categories"`
	State             json.RawMessage         `json:"state"`
}

// Parsed is the validated result of reading a snapshot at the boundary.
// Global-parameter fields are nil when absent from the payload, so applying
// a partial snapshot leaves the session's prior values untouched.
type Parsed struct {
	Schema            int
	BaseYear          *string
	UnitName          *string
	AbsorptionFactor  *string
	EquivalenceFactor *string
	Population        *string
	UseGha            *bool
	Categories        []footprint.RawCategory
}

// Parse interprets untrusted bytes as a snapshot. A {"state": {...}}
// wrapper is unwrapped one level. Returns ErrMalformed when the payload is
// not a JSON object.
func Parse(data []byte) (Parsed, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Parsed{}, ErrMalformed
	}

	var r raw
	if err := json.Unmarshal(trimmed, &r); err != nil {
		return Parsed{}, ErrMalformed
	}

	if len(r.State) > 0 && bytes.HasPrefix(bytes.TrimSpace(r.State), []byte("{")) {
		var inner raw
		if err := json.Unmarshal(r.State, &inner); err == nil {
			r = inner
		}
	}

	return Parsed{
		Schema:            intValue(r.Schema),
		BaseYear:          textValue(r.BaseYear),
		UnitName:          textValue(r.UnitName),
		AbsorptionFactor:  textValue(r.AbsorptionFactor),
		EquivalenceFactor: textValue(r.EquivalenceFactor),
		Population:        textValue(r.Population),
		UseGha:            boolValue(r.UseGha),
		Categories:        r.Categories,
	}, nil
}

// ApplyParams overlays the snapshot's global parameters onto prior ones,
// leaving absent fields alone.
func (p Parsed) ApplyParams(prior footprint.Parameters) footprint.Parameters {
	out := prior
	if p.BaseYear != nil {
		out.BaseYear = *p.BaseYear
	}
	if p.UnitName != nil {
		out.UnitName = *p.UnitName
	}
	if p.AbsorptionFactor != nil {
		out.AbsorptionFactor = *p.AbsorptionFactor
	}
	if p.EquivalenceFactor != nil {
		out.EquivalenceFactor = *p.EquivalenceFactor
	}
	if p.Population != nil {
		out.Population = *p.Population
	}
	if p.UseGha != nil {
		out.UseGha = *p.UseGha
	}
	return out
}

// intValue reads a schema number from a loose JSON value.
func intValue(v any) int {
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return 0
}

// textValue renders a loose global-parameter value as raw text, nil when
// the field was absent.
func textValue(v any) *string {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil
	}
	return &s
}

// boolValue reads a loose boolean, nil when absent or not a boolean.
func boolValue(v any) *bool {
	if b, ok := v.(bool); ok {
		return &b
	}
	return nil
}
