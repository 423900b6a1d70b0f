package graph

// Apply folds the path's transforms over v from left to right. The order is
// never changed: a Scale followed by an Offset is (v*f)+o, never (v+o)*f.
func Apply(p Path, v float64) float64 {
	for _, e := range p {
		v = e.Transform.Apply(v)
	}

	return v
}

// Compose collapses a path into an equivalent affine map v*scale + offset.
// It is used for display; Apply remains the reference computation.
func Compose(p Path) (scale, offset float64) {
	scale = 1

	for _, e := range p {
		switch e.Transform.Kind {
		case KindScale:
			scale *= e.Transform.Value
			offset *= e.Transform.Value
		case KindOffset:
			offset += e.Transform.Value
		}
	}

	return scale, offset
}
