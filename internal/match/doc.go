// Package match provides unit-name normalization, Levenshtein distance and
// the ranking behind "did you mean" suggestions for unknown units.
//
// Key functions:
//   - NormalizeName: folds a unit name for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks registered names against an unknown query
package match
