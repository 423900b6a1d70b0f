// Package diagnostic provides structured errors, warnings and infos
// collected while validating a unit configuration.
//
// Key capabilities:
//   - Stable diagnostic codes (e.g. "duplicate_name", "missing_factor")
//   - Locations pointing at the offending config entry
//   - "Did you mean" suggestions for unknown unit references
//   - Access to the underlying typed errors through errors.Is/As
package diagnostic
