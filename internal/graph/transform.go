package graph

import (
	"fmt"
	"math"
)

//go:generate go tool stringer -type=TransformKind,Origin -linecomment -output=kind_string.go

// TransformKind selects the arithmetic an edge performs.
type TransformKind int

const (
	KindScale  TransformKind = iota // scale
	KindOffset                      // offset
)

// Transform is a single scale or offset step.
type Transform struct {
	Kind  TransformKind
	Value float64
}

// Scale returns a transform that multiplies by factor.
func Scale(factor float64) Transform {
	return Transform{Kind: KindScale, Value: factor}
}

// Offset returns a transform that adds offset.
func Offset(offset float64) Transform {
	return Transform{Kind: KindOffset, Value: offset}
}

// Apply runs the transform on v.
func (t Transform) Apply(v float64) float64 {
	switch t.Kind {
	case KindScale:
		return v * t.Value
	case KindOffset:
		return v + t.Value
	default:
		panic(fmt.Sprintf("graph: unknown transform kind %d", t.Kind))
	}
}

// Inverse returns the transform that undoes t: the reciprocal factor for a
// Scale, the negated offset for an Offset.
func (t Transform) Inverse() Transform {
	if t.Kind == KindScale {
		return Scale(1 / t.Value)
	}

	return Offset(-t.Value)
}

// Validate rejects transforms that cannot be applied or inverted.
func (t Transform) Validate() error {
	if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
		return fmt.Errorf("%w: %s value must be finite, got %v", ErrInvalidTransform, t.Kind, t.Value)
	}

	switch t.Kind {
	case KindScale:
		if t.Value == 0 {
			return fmt.Errorf("%w: scale factor cannot be 0", ErrInvalidTransform)
		}
	case KindOffset:
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrInvalidTransform, t.Kind)
	}

	return nil
}

// String renders the transform as "×1.8" or "+32".
func (t Transform) String() string {
	switch t.Kind {
	case KindScale:
		return fmt.Sprintf("×%g", t.Value)
	case KindOffset:
		if t.Value < 0 {
			return fmt.Sprintf("-%g", -t.Value)
		}

		return fmt.Sprintf("+%g", t.Value)
	default:
		return t.Kind.String()
	}
}
