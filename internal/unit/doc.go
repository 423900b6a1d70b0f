// Package unit provides the unit registry: the single boundary where unit
// names and aliases are resolved to dense integer identifiers.
//
// Every name and alias maps to exactly one ID across the whole registry.
// IDs are allocated in registration order starting at zero, so they can be
// used to index slices directly.
//
// # Case folding
//
// By default lookups are exact. A registry created WithCaseFolding folds
// every key once at registration time and folds each query once at lookup,
// so "celsius", "CELSIUS" and "Celsius" resolve to the same unit.
package unit
