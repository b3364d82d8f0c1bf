// Package report produces diagnostic health reports for preprocessed batches.
// Validation is purely observational: it never fails and never gates the
// pipeline.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nutrireco/go-reco-engine/model"
)

// maxIssueSamples bounds how many offending values are kept per column.
const maxIssueSamples = 10

// Validate inspects a feature table (and, when supplied, its meta table) and
// reports shape, missing values, duplicate rows, non-binary indicator columns,
// and meta alignment.
func Validate(features model.FeatureTable, meta *model.MetaTable) model.ValidationReport {
	rep := model.ValidationReport{
		FeatureRows:    features.Len(),
		FeatureColumns: len(features.KeywordKeys) + len(features.NumericColumns),
		MissingByCol:   map[string]int{},
	}

	// Missing values can only occur in numeric columns; indicators are always
	// materialized as 0 or 1.
	for _, col := range features.NumericColumns {
		count := 0
		for _, row := range features.Rows {
			if row.Numerics == nil || row.Numerics[col] == nil {
				count++
			}
		}
		if count > 0 {
			rep.MissingByCol[col] = count
		}
	}

	rep.DuplicateRows = countDuplicates(features)
	rep.NonBinaryCols = findNonBinaryColumns(features)

	if meta != nil {
		rep.MetaChecked = true
		rep.MetaRows = meta.Len()
		rep.MetaAligned = meta.Len() == features.Len()
	}

	return rep
}

// countDuplicates counts rows that are exact duplicates of an earlier row,
// comparing indicators and numeric values over the canonical column order.
func countDuplicates(features model.FeatureTable) int {
	seen := make(map[string]bool, features.Len())
	duplicates := 0
	for _, row := range features.Rows {
		key := fingerprint(features, row)
		if seen[key] {
			duplicates++
		}
		seen[key] = true
	}
	return duplicates
}

func fingerprint(features model.FeatureTable, row model.FeatureRow) string {
	var b strings.Builder
	for _, key := range features.KeywordKeys {
		fmt.Fprintf(&b, "%d|", row.Indicators[key])
	}
	for _, col := range features.NumericColumns {
		if row.Numerics == nil || row.Numerics[col] == nil {
			b.WriteString("null|")
		} else {
			fmt.Fprintf(&b, "%g|", *row.Numerics[col])
		}
	}
	return b.String()
}

// findNonBinaryColumns lists indicator columns holding values outside {0, 1},
// with a sample of the offending values per column.
func findNonBinaryColumns(features model.FeatureTable) []model.ColumnIssue {
	bad := map[string][]float64{}
	for _, row := range features.Rows {
		for key, v := range row.Indicators {
			if v != 0 && v != 1 {
				if len(bad[key]) < maxIssueSamples {
					bad[key] = append(bad[key], float64(v))
				}
			}
		}
	}
	if len(bad) == 0 {
		return nil
	}

	columns := make([]string, 0, len(bad))
	for col := range bad {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	issues := make([]model.ColumnIssue, 0, len(columns))
	for _, col := range columns {
		issues = append(issues, model.ColumnIssue{Column: col, Values: bad[col]})
	}
	return issues
}
