package match

import (
	"strings"
	"unicode"
)

// NormalizeName normalizes a unit name for fuzzy matching.
// The normalization pipeline:
// 1. Lower-case every rune.
// 2. Strip separators (_, -, ., spaces).
// 3. Strip a leading "degree"/"degrees" token, so "Degrees Celsius" compares
// equal to "celsius".
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	out := b.String()
	for _, prefix := range []string{"degrees", "degree"} {
		if rest, ok := strings.CutPrefix(out, prefix); ok && rest != "" {
			return rest
		}
	}

	return out
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
