// Package watch keeps a converter in sync with its configuration file.
//
// A Holder owns the current *convert.Converter. When the file changes on
// disk the holder rebuilds a converter from scratch and swaps it in; the
// graph itself is never mutated. A reload that fails to load, validate or
// build leaves the previous converter in place.
package watch
