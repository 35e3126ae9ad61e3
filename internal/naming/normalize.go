package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds case and strips diacritics so that "Épée" and "epee"
// compare equal. Surrounding and repeated inner whitespace is collapsed.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	folded := cases.Fold().String(stripped)
	return strings.Join(strings.Fields(folded), " ")
}

// Matcher tests names against a normalized substring query
type Matcher struct {
	query string
}

// NewMatcher builds a matcher. An empty or blank query matches everything.
func NewMatcher(query string) Matcher {
	return Matcher{query: Normalize(query)}
}

// Empty reports whether the matcher accepts every name
func (m Matcher) Empty() bool {
	return m.query == ""
}

// Match reports whether name contains the query after normalization
func (m Matcher) Match(name string) bool {
	if m.query == "" {
		return true
	}
	return strings.Contains(Normalize(name), m.query)
}
