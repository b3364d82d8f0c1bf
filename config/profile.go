// Package config provides configuration structures for the recommendation
// engine: keyword pattern tables, need weighting profiles, and the column
// lists that drive text merging and meta retention.
package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Profile bundles every configurable table for one text domain (e.g. the
// general supplement registry vs. the gut-health subset). Profiles are
// immutable once loaded and are passed explicitly into each pipeline call.
type Profile struct {
	Tag string `yaml:"tag" json:"tag"` // Unique tag identifying the profile (e.g. "supplement")

	// Keywords maps a feature key to a case-insensitive regular expression
	// matched against merged product text. Patterns should use non-capturing
	// groups; matching never relies on capture groups.
	Keywords map[string]string `yaml:"keywords" json:"keywords"`

	// Needs maps a need key (e.g. "fatigue") to {feature key -> positive weight}.
	Needs map[string]map[string]int `yaml:"needs" json:"needs"`

	// TextColumns lists candidate free-text columns merged per row, in order.
	// Columns absent from a batch's schema are skipped silently.
	TextColumns []string `yaml:"text_columns" json:"text_columns"`

	// MetaColumns lists descriptive columns retained for display.
	MetaColumns []string `yaml:"meta_columns" json:"meta_columns"`

	// FallbackMetaColumns is used when none of MetaColumns exist in the schema.
	FallbackMetaColumns []string `yaml:"fallback_meta_columns" json:"fallback_meta_columns"`

	// NumericColumns lists columns carried through as parsed numbers
	// (unparsable values become null). They never affect row filtering.
	NumericColumns []string `yaml:"numeric_columns" json:"numeric_columns"`

	// KeepZeroHitRows disables the default removal of rows whose keyword
	// indicators are all zero. Off by default; auditing consumers can enable
	// it to see the unfiltered set.
	KeepZeroHitRows bool `yaml:"keep_zero_hit_rows" json:"keep_zero_hit_rows"`
}

// NeedKeys returns the configured need keys in sorted order.
func (p *Profile) NeedKeys() []string {
	keys := make([]string, 0, len(p.Needs))
	for k := range p.Needs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeywordKeys returns the configured feature keys in sorted order.
// The sorted order is the canonical column order for feature tables.
func (p *Profile) KeywordKeys() []string {
	keys := make([]string, 0, len(p.Keywords))
	for k := range p.Keywords {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the profile for configuration conflicts and returns
// human-readable messages for each one found.
func (p *Profile) Validate() []string {
	var conflicts []string

	if strings.TrimSpace(p.Tag) == "" {
		conflicts = append(conflicts, "Profile tag cannot be empty")
	}
	if len(p.Keywords) == 0 {
		conflicts = append(conflicts, "Profile must define at least one keyword pattern")
	}

	for key, pattern := range p.Keywords {
		if strings.TrimSpace(key) == "" {
			conflicts = append(conflicts, "Keyword key cannot be empty or whitespace-only")
			continue
		}
		if _, err := regexp.Compile("(?i)" + pattern); err != nil {
			conflicts = append(conflicts, fmt.Sprintf("Keyword '%s' has an invalid pattern: %v", key, err))
		}
	}

	for need, weights := range p.Needs {
		if strings.TrimSpace(need) == "" {
			conflicts = append(conflicts, "Need key cannot be empty or whitespace-only")
			continue
		}
		if len(weights) == 0 {
			conflicts = append(conflicts, fmt.Sprintf("Need '%s' has an empty weight profile", need))
		}
		for key, weight := range weights {
			if _, ok := p.Keywords[key]; !ok {
				conflicts = append(conflicts, fmt.Sprintf("Need '%s' references unknown keyword '%s'", need, key))
			}
			if weight <= 0 {
				conflicts = append(conflicts, fmt.Sprintf("Need '%s' has non-positive weight %d for keyword '%s'", need, weight, key))
			}
		}
	}

	conflicts = append(conflicts, checkDuplicates("text_columns", p.TextColumns)...)
	conflicts = append(conflicts, checkDuplicates("meta_columns", p.MetaColumns)...)
	conflicts = append(conflicts, checkDuplicates("numeric_columns", p.NumericColumns)...)

	allColumns := make([]string, 0)
	allColumns = append(allColumns, p.TextColumns...)
	allColumns = append(allColumns, p.MetaColumns...)
	allColumns = append(allColumns, p.FallbackMetaColumns...)
	allColumns = append(allColumns, p.NumericColumns...)
	for _, col := range allColumns {
		if strings.TrimSpace(col) == "" {
			conflicts = append(conflicts, "Column name cannot be empty or whitespace-only")
		}
	}

	return conflicts
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, fields []string) []string {
	var errors []string
	seen := make(map[string]bool)

	for _, field := range fields {
		if seen[field] {
			errors = append(errors, "Duplicate column '"+field+"' found in "+fieldName)
		}
		seen[field] = true
	}

	return errors
}

// ApplyDefaults fills unset column lists with the registry defaults so that
// a YAML override file only has to declare what it changes.
func (p *Profile) ApplyDefaults() {
	if p.TextColumns == nil {
		p.TextColumns = append([]string(nil), defaultTextColumns...)
	}
	if p.MetaColumns == nil {
		p.MetaColumns = append([]string(nil), defaultMetaColumns...)
	}
	if p.FallbackMetaColumns == nil {
		p.FallbackMetaColumns = append([]string(nil), defaultFallbackMetaColumns...)
	}
	if p.NumericColumns == nil {
		p.NumericColumns = []string{}
	}
	if p.Keywords == nil {
		p.Keywords = map[string]string{}
	}
	if p.Needs == nil {
		p.Needs = map[string]map[string]int{}
	}
}
