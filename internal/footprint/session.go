package footprint

import (
	"strings"
)

// Editable field names accepted by Session.UpdateField. They match the
// snapshot JSON keys.
const (
	FieldName          = "name"
	FieldUnit          = "unit"
	FieldFE            = "fe"
	FieldConsumption   = "consumption"
	FieldMethod        = "method"
	FieldLifeSpan      = "lifeSpan"
	FieldHasUsefulLife = "hasUsefulLife"
	FieldEnabled       = "enabled"
)

// Session owns the mutable state of one calculator run: the ordered category
// sequence and the global parameters. All mutation goes through its methods;
// callers re-run Compute after every change. The session itself is not
// concurrency-safe — the calculator is single-threaded by design.
type Session struct {
	categories []CategoryRecord
	params     Parameters
}

// NewSession creates a session over an existing category sequence.
func NewSession(categories []CategoryRecord, params Parameters) *Session {
	return &Session{categories: categories, params: params}
}

// DefaultSession creates a fresh session seeded with the built-in catalog.
func DefaultSession() *Session {
	return &Session{
		categories: DefaultCategories(),
		params:     DefaultParameters(),
	}
}

// Categories returns the ordered category sequence. The slice is shared;
// callers must mutate through session methods only.
func (s *Session) Categories() []CategoryRecord {
	return s.categories
}

// Params returns the current global parameters.
func (s *Session) Params() Parameters {
	return s.params
}

// SetParams replaces the global parameters wholesale.
func (s *Session) SetParams(params Parameters) {
	s.params = params
}

// Compute evaluates every category against the current parameters.
func (s *Session) Compute() Computation {
	return Compute(s.categories, s.params)
}

// Warnings reports the excluded-but-correctable categories.
func (s *Session) Warnings() Warnings {
	return CollectWarnings(s.categories)
}

// Find returns the category with the given id.
func (s *Session) Find(id string) (CategoryRecord, bool) {
	for _, cat := range s.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return CategoryRecord{}, false
}

// FindByName returns the first category whose folded name matches.
func (s *Session) FindByName(name string) (CategoryRecord, bool) {
	want := FoldName(name)
	for _, cat := range s.categories {
		if FoldName(cat.Name) == want {
			return cat, true
		}
	}
	return CategoryRecord{}, false
}

// AddCategory appends a new custom category and returns it.
func (s *Session) AddCategory(name string) CategoryRecord {
	if strings.TrimSpace(name) == "" {
		name = "Nova categoria"
	}
	cat := CategoryRecord{
		ID:      NewID(),
		Name:    strings.TrimSpace(name),
		FE:      "",
		Unit:    DefaultUnit,
		Method:  "Categoria personalizada.",
		Enabled: true,
		Custom:  true,
	}
	s.categories = append(s.categories, cat)
	return cat
}

// RemoveCategory removes the custom category with the given id, preserving
// the order of the rest. Built-in categories are protected.
func (s *Session) RemoveCategory(id string) error {
	for i, cat := range s.categories {
		if cat.ID != id {
			continue
		}
		if !cat.Custom {
			return ErrBuiltinCategory
		}
		s.categories = append(s.categories[:i], s.categories[i+1:]...)
		return nil
	}
	return ErrUnknownCategory
}

// UpdateField assigns one editable field of the category with the given id.
// Quantity fields keep the raw text; name/unit/method fall back to their
// repair defaults when blanked, mirroring normalization.
func (s *Session) UpdateField(id, field, value string) error {
	for i := range s.categories {
		cat := &s.categories[i]
		if cat.ID != id {
			continue
		}
		switch field {
		case FieldName:
			cat.Name = stringOr(value, "Categoria sem nome")
		case FieldUnit:
			cat.Unit = stringOr(value, DefaultUnit)
		case FieldMethod:
			cat.Method = stringOr(value, DefaultMethod)
		case FieldFE:
			cat.FE = value
		case FieldConsumption:
			cat.Consumption = value
		case FieldLifeSpan:
			cat.LifeSpan = value
		case FieldHasUsefulLife:
			cat.HasUsefulLife = parseBool(value)
			if cat.HasUsefulLife && cat.LifeSpan == "" {
				cat.LifeSpan = DefaultLifeSpan
			}
		case FieldEnabled:
			cat.Enabled = parseBool(value)
		default:
			return ErrUnknownField
		}
		return nil
	}
	return ErrUnknownCategory
}

// SetEnabled toggles a category in or out of the computation.
func (s *Session) SetEnabled(id string, enabled bool) error {
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Enabled = enabled
			return nil
		}
	}
	return ErrUnknownCategory
}

// ResetConsumption clears every category's consumption and re-enables all of
// them, keeping names, factors and custom categories intact.
func (s *Session) ResetConsumption() {
	for i := range s.categories {
		s.categories[i].Consumption = ""
		s.categories[i].Enabled = true
	}
}

// ReplaceCategories swaps in a new category sequence (after reconciliation).
func (s *Session) ReplaceCategories(categories []CategoryRecord) {
	s.categories = categories
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "sim", "yes", "on":
		return true
	default:
		return false
	}
}
