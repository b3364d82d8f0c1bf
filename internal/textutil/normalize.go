// Package textutil provides the text normalization and merging primitives the
// preprocessing pipeline is built on.
package textutil

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// whitespaceRegex matches runs of whitespace, including full-width spaces
// after width folding.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize converts an arbitrary cell value into canonical matchable text:
// nil becomes "", everything else is stringified, width-folded (full-width
// ASCII and half-width jamo appear in registry data), lowercased, and runs of
// whitespace are collapsed to a single space. Total function, idempotent.
func Normalize(value interface{}) string {
	if value == nil {
		return ""
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprintf("%v", v)
	}

	s = width.Fold.String(s)
	s = strings.ToLower(s)
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
