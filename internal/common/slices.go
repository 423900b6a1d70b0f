package common

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// OrEmpty returns s, or an empty non-nil slice when s is nil. Encoders then
// write [] instead of null.
func OrEmpty[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}

	return s
}
