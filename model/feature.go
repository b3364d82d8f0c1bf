package model

// FeatureRow holds the derived per-item feature vector: one binary indicator
// per keyword plus optional numeric fields carried through from the raw row.
type FeatureRow struct {
	// Indicators maps keyword key -> 0 or 1. Never any other value.
	Indicators map[string]int `json:"indicators"`
	// Numerics maps numeric column name -> parsed value, nil when the source
	// value was missing or unparsable.
	Numerics map[string]*float64 `json:"numerics,omitempty"`
}

// HitCount returns the number of keyword indicators set to 1. Numeric fields
// never contribute.
func (fr FeatureRow) HitCount() int {
	n := 0
	for _, v := range fr.Indicators {
		n += v
	}
	return n
}

// FeatureTable is the ordered collection of feature rows for one batch.
// KeywordKeys and NumericColumns record column order for export and display.
type FeatureTable struct {
	KeywordKeys    []string     `json:"keyword_keys"`
	NumericColumns []string     `json:"numeric_columns,omitempty"`
	Rows           []FeatureRow `json:"rows"`
}

// Len returns the number of feature rows.
func (ft FeatureTable) Len() int { return len(ft.Rows) }

// MetaTable carries the descriptive columns retained for display, aligned
// 1:1 by position with its FeatureTable: row i of each describes the same
// original item.
type MetaTable struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Len returns the number of meta rows.
func (mt MetaTable) Len() int { return len(mt.Rows) }
