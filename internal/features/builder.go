// Package features assembles keyword indicator tables from raw registry rows
// and applies the zero-hit row filter.
package features

import (
	"strconv"
	"strings"

	"github.com/nutrireco/go-reco-engine/config"
	"github.com/nutrireco/go-reco-engine/internal/keywords"
	"github.com/nutrireco/go-reco-engine/internal/textutil"
	"github.com/nutrireco/go-reco-engine/model"
)

// Builder derives feature and meta tables from raw rows for one profile.
// It never mutates caller-supplied rows; every derived row is newly allocated.
type Builder struct {
	profile *config.Profile
	matcher *keywords.Matcher
}

// NewBuilder compiles the profile's keyword table. Pattern errors surface
// here, before any data is touched.
func NewBuilder(profile *config.Profile) (*Builder, error) {
	matcher, err := keywords.NewMatcher(profile.Keywords)
	if err != nil {
		return nil, err
	}
	return &Builder{profile: profile, matcher: matcher}, nil
}

// Matcher exposes the compiled matcher, mainly for diagnostics.
func (b *Builder) Matcher() *keywords.Matcher { return b.matcher }

// Build runs merge → match → filter over a batch and returns aligned feature
// and meta tables: row i of each describes the same original item.
//
// A row is kept only when at least one keyword indicator is 1; numeric
// columns never rescue a row. The profile's KeepZeroHitRows toggle disables
// the filter for auditing.
func (b *Builder) Build(rows []model.Row) (model.FeatureTable, model.MetaTable) {
	schema := textutil.Schema(rows)
	merger := textutil.NewMerger(b.profile.TextColumns, schema)
	metaColumns := negotiateMetaColumns(b.profile, schema)
	numericColumns := intersect(b.profile.NumericColumns, schema)

	featureTable := model.FeatureTable{
		KeywordKeys:    b.matcher.Keys(),
		NumericColumns: numericColumns,
		Rows:           make([]model.FeatureRow, 0, len(rows)),
	}
	metaTable := model.MetaTable{
		Columns: metaColumns,
		Rows:    make([]model.Row, 0, len(rows)),
	}

	for _, row := range rows {
		text := merger.MergeRow(row)
		featureRow := model.FeatureRow{Indicators: b.matcher.Match(text)}

		if featureRow.HitCount() == 0 && !b.profile.KeepZeroHitRows {
			continue
		}

		if len(numericColumns) > 0 {
			featureRow.Numerics = make(map[string]*float64, len(numericColumns))
			for _, col := range numericColumns {
				featureRow.Numerics[col] = parseNumeric(row[col])
			}
		}

		metaRow := make(model.Row, len(metaColumns))
		for _, col := range metaColumns {
			if v, ok := row[col]; ok {
				metaRow[col] = v
			}
		}

		featureTable.Rows = append(featureTable.Rows, featureRow)
		metaTable.Rows = append(metaTable.Rows, metaRow)
	}

	return featureTable, metaTable
}

// negotiateMetaColumns intersects the declared meta columns with the schema,
// falling back to the minimal descriptive set when nothing matches.
func negotiateMetaColumns(profile *config.Profile, schema map[string]struct{}) []string {
	columns := intersect(profile.MetaColumns, schema)
	if len(columns) == 0 {
		columns = intersect(profile.FallbackMetaColumns, schema)
	}
	return columns
}

func intersect(declared []string, schema map[string]struct{}) []string {
	out := make([]string, 0, len(declared))
	for _, col := range declared {
		if _, ok := schema[col]; ok {
			out = append(out, col)
		}
	}
	return out
}

// parseNumeric coerces a cell value to a float, returning nil for anything
// unparsable. Soft failure: bad values become nulls, never errors.
func parseNumeric(value interface{}) *float64 {
	switch v := value.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}
