package textutil

import (
	"strings"

	"github.com/nutrireco/go-reco-engine/model"
)

// Merger concatenates a fixed set of text columns per row into one normalized
// string. The candidate list is intersected with the batch's actual schema
// once at construction, so per-row merging never re-checks column presence.
type Merger struct {
	columns []string
}

// Schema returns the set of column names appearing in any row of the batch.
// Registry schemas differ per service ID, so the available set is computed
// from the data rather than assumed.
func Schema(rows []model.Row) map[string]struct{} {
	schema := make(map[string]struct{})
	for _, row := range rows {
		for col := range row {
			schema[col] = struct{}{}
		}
	}
	return schema
}

// NewMerger builds a Merger for the given candidate columns, keeping only
// those present in the schema. Declared order is preserved; missing columns
// are skipped silently.
func NewMerger(candidates []string, schema map[string]struct{}) *Merger {
	columns := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := schema[c]; ok {
			columns = append(columns, c)
		}
	}
	return &Merger{columns: columns}
}

// Columns returns the negotiated column list.
func (m *Merger) Columns() []string {
	return append([]string(nil), m.columns...)
}

// MergeRow produces the normalized merged text for one row. Same row and
// same candidate list always yield the same string.
func (m *Merger) MergeRow(row model.Row) string {
	parts := make([]string, 0, len(m.columns))
	for _, col := range m.columns {
		if norm := Normalize(row[col]); norm != "" {
			parts = append(parts, norm)
		}
	}
	return strings.Join(parts, " ")
}
