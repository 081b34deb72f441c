package snapshot

import (
	"github.com/rmacedo/pegada/internal/footprint"
)

// Reconcile turns a parsed snapshot into the authoritative category
// sequence.
//
// Snapshots at the current schema (or newer) already have the current field
// set: every record is normalized positionally and used as-is, preserving
// all user customization including useful-life overrides.
//
// Older snapshots go through a merge: every entry of the current built-in
// catalog is rebuilt with current methodology values (name, unit, fe,
// method, lifespan default) and only the user-entered values (consumption,
// enabled flag, id) are carried over from a legacy record matched by folded
// name. Legacy records flagged custom survive verbatim after the built-ins.
// Matching is by name, not id: a built-in renamed before the save is
// treated as unmatched and gets pure catalog defaults.
//
// A snapshot without any categories yields the default catalog.
func Reconcile(p Parsed) []footprint.CategoryRecord {
	if len(p.Categories) == 0 {
		return footprint.DefaultCategories()
	}

	normalized := make([]footprint.CategoryRecord, 0, len(p.Categories))
	for i, rawCat := range p.Categories {
		normalized = append(normalized, footprint.Normalize(rawCat, i))
	}

	if p.Schema >= footprint.Schema {
		return normalized
	}

	return mergeLegacy(normalized)
}

// mergeLegacy rebuilds the built-in catalog with current methodology while
// keeping legacy user data and appending legacy custom categories.
func mergeLegacy(legacy []footprint.CategoryRecord) []footprint.CategoryRecord {
	byName := make(map[string]footprint.CategoryRecord, len(legacy))
	for _, cat := range legacy {
		key := footprint.FoldName(cat.Name)
		if _, exists := byName[key]; !exists {
			byName[key] = cat
		}
	}

	merged := make([]footprint.CategoryRecord, 0, len(footprint.Seed))
	for _, seed := range footprint.Seed {
		rec := seed.Record()
		if old, ok := byName[footprint.FoldName(seed.Name)]; ok {
			rec.ID = old.ID
			rec.Consumption = old.Consumption
			rec.Enabled = old.Enabled
		}
		merged = append(merged, rec)
	}

	for _, cat := range legacy {
		if cat.Custom {
			merged = append(merged, cat)
		}
	}

	return merged
}
