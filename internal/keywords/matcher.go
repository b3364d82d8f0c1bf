// Package keywords turns a profile's keyword pattern table into a compiled
// matcher producing binary presence indicators.
package keywords

import (
	"fmt"
	"regexp"
	"sort"
)

// Matcher holds the compiled patterns for one profile. Compile once per
// profile load; matching itself is allocation-light and safe for concurrent use.
type Matcher struct {
	keys     []string
	patterns map[string]*regexp.Regexp
}

// NewMatcher compiles every pattern in the table with case-insensitive
// matching. A single bad pattern fails the whole table so configuration
// errors surface at load time rather than per row.
func NewMatcher(table map[string]string) (*Matcher, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("keyword table is empty")
	}

	keys := make([]string, 0, len(table))
	patterns := make(map[string]*regexp.Regexp, len(table))
	for key, pattern := range table {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile keyword '%s': %w", key, err)
		}
		keys = append(keys, key)
		patterns[key] = re
	}
	sort.Strings(keys)

	return &Matcher{keys: keys, patterns: patterns}, nil
}

// Keys returns the keyword keys in canonical (sorted) order.
func (m *Matcher) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Match evaluates every pattern against the merged text and returns one
// indicator per keyword: 1 if the pattern matches anywhere, else 0.
func (m *Matcher) Match(text string) map[string]int {
	indicators := make(map[string]int, len(m.keys))
	for _, key := range m.keys {
		if m.patterns[key].MatchString(text) {
			indicators[key] = 1
		} else {
			indicators[key] = 0
		}
	}
	return indicators
}
