package model

import "sort"

// DefaultWasteFactor applies to any material/pattern combination missing
// from a WasteFactorTable.
const DefaultWasteFactor = 0.10

// AnyPattern marks a waste entry that applies to every pattern of a material.
const AnyPattern Pattern = ""

// WasteEntry is one row of a waste factor table.
type WasteEntry struct {
	Material Material `json:"material"`
	Pattern  Pattern  `json:"pattern,omitempty"` // AnyPattern matches all patterns
	Factor   float64  `json:"factor"`            // fraction, e.g. 0.15 for 15%
}

// Key returns the "material-pattern" (or bare "material") name of the entry.
func (e WasteEntry) Key() string {
	if e.Pattern == AnyPattern {
		return string(e.Material)
	}
	return string(e.Material) + "-" + string(e.Pattern)
}

type wasteKey struct {
	material Material
	pattern  Pattern
}

// WasteFactorTable maps material and pattern to a waste fraction.
// A table is immutable once built and safe for concurrent lookups.
// The zero value has no entries and falls back to DefaultWasteFactor.
type WasteFactorTable struct {
	factors  map[wasteKey]float64
	fallback float64
}

// NewWasteFactorTable builds a table from the given entries. Later entries
// for the same key replace earlier ones.
func NewWasteFactorTable(fallback float64, entries ...WasteEntry) WasteFactorTable {
	factors := make(map[wasteKey]float64, len(entries))
	for _, e := range entries {
		factors[wasteKey{material: e.Material, pattern: e.Pattern}] = e.Factor
	}
	return WasteFactorTable{factors: factors, fallback: fallback}
}

// DefaultWasteFactors returns the industry-standard (NWFA, TCNA) waste table.
// Carpet has a single entry that covers every pattern.
func DefaultWasteFactors() WasteFactorTable {
	return NewWasteFactorTable(DefaultWasteFactor,
		WasteEntry{Material: MaterialTile, Pattern: PatternStraight, Factor: 0.10},
		WasteEntry{Material: MaterialTile, Pattern: PatternDiagonal, Factor: 0.15},
		WasteEntry{Material: MaterialTile, Pattern: PatternHerringbone, Factor: 0.22},
		WasteEntry{Material: MaterialHardwood, Pattern: PatternStraight, Factor: 0.10},
		WasteEntry{Material: MaterialHardwood, Pattern: PatternDiagonal, Factor: 0.15},
		WasteEntry{Material: MaterialLaminate, Pattern: PatternStraight, Factor: 0.08},
		WasteEntry{Material: MaterialLaminate, Pattern: PatternDiagonal, Factor: 0.13},
		WasteEntry{Material: MaterialVinyl, Pattern: PatternStraight, Factor: 0.05},
		WasteEntry{Material: MaterialVinyl, Pattern: PatternDiagonal, Factor: 0.10},
		WasteEntry{Material: MaterialCarpet, Pattern: AnyPattern, Factor: 0.10},
	)
}

// Lookup returns the waste factor for a material and pattern. An exact
// entry wins over a material-wide entry; otherwise the fallback applies.
func (t WasteFactorTable) Lookup(m Material, p Pattern) float64 {
	f, _ := t.LookupExact(m, p)
	return f
}

// LookupExact is like Lookup but also reports whether the table had an
// entry for the combination.
func (t WasteFactorTable) LookupExact(m Material, p Pattern) (float64, bool) {
	if f, ok := t.factors[wasteKey{material: m, pattern: p}]; ok {
		return f, true
	}
	if f, ok := t.factors[wasteKey{material: m, pattern: AnyPattern}]; ok {
		return f, true
	}
	return t.Fallback(), false
}

// Fallback returns the factor used for unmatched combinations.
func (t WasteFactorTable) Fallback() float64 {
	if t.factors == nil {
		return DefaultWasteFactor
	}
	return t.fallback
}

// Entries returns the table rows sorted by key.
func (t WasteFactorTable) Entries() []WasteEntry {
	entries := make([]WasteEntry, 0, len(t.factors))
	for k, f := range t.factors {
		entries = append(entries, WasteEntry{Material: k.material, Pattern: k.pattern, Factor: f})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key() < entries[j].Key()
	})
	return entries
}

// CoverageRates holds the area covered by one purchase unit of each
// auxiliary material.
type CoverageRates struct {
	Underlayment float64 `json:"underlayment"` // area units per roll
	Adhesive     float64 `json:"adhesive"`     // area units per gallon
	Grout        float64 `json:"grout"`        // area units per 25lb bag
}

// DefaultCoverageRates returns the standard auxiliary coverage rates.
func DefaultCoverageRates() CoverageRates {
	return CoverageRates{
		Underlayment: 100,
		Adhesive:     50,
		Grout:        150,
	}
}
