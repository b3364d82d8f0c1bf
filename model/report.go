package model

import (
	"fmt"
	"strings"
)

// ColumnIssue records a feature column holding values outside {0, 1},
// with a small sample of the offending values.
type ColumnIssue struct {
	Column string    `json:"column"`
	Values []float64 `json:"values"`
}

// ValidationReport is the diagnostic summary of a preprocessed batch.
// It is purely observational: producing it never fails and never gates
// the pipeline.
type ValidationReport struct {
	FeatureRows    int            `json:"feature_rows"`
	FeatureColumns int            `json:"feature_columns"`
	MissingByCol   map[string]int `json:"missing_by_column,omitempty"`
	DuplicateRows  int            `json:"duplicate_rows"`
	NonBinaryCols  []ColumnIssue  `json:"non_binary_columns,omitempty"`
	MetaRows       int            `json:"meta_rows"`
	MetaChecked    bool           `json:"meta_checked"`
	MetaAligned    bool           `json:"meta_aligned"`
}

// Healthy reports whether the batch passed every check that applies.
func (r ValidationReport) Healthy() bool {
	if len(r.NonBinaryCols) > 0 {
		return false
	}
	for _, n := range r.MissingByCol {
		if n > 0 {
			return false
		}
	}
	if r.MetaChecked && !r.MetaAligned {
		return false
	}
	return true
}

// String renders the report for terminal display.
func (r ValidationReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "features: %d rows x %d columns\n", r.FeatureRows, r.FeatureColumns)

	missing := 0
	for _, n := range r.MissingByCol {
		missing += n
	}
	fmt.Fprintf(&b, "missing values: %d\n", missing)
	fmt.Fprintf(&b, "duplicate rows: %d\n", r.DuplicateRows)

	if len(r.NonBinaryCols) == 0 {
		b.WriteString("all indicators in {0,1}: yes\n")
	} else {
		fmt.Fprintf(&b, "all indicators in {0,1}: no (%d columns affected)\n", len(r.NonBinaryCols))
		for _, issue := range r.NonBinaryCols {
			fmt.Fprintf(&b, "  - %s: %v\n", issue.Column, issue.Values)
		}
	}

	if r.MetaChecked {
		if r.MetaAligned {
			fmt.Fprintf(&b, "meta alignment: ok (%d rows)\n", r.MetaRows)
		} else {
			fmt.Fprintf(&b, "meta alignment: MISMATCH (features=%d meta=%d)\n", r.FeatureRows, r.MetaRows)
		}
	}
	return b.String()
}
