package convert

import (
	"fmt"

	"unitconv/internal/graph"
)

// NoPathError reports two known units with no directed path between them,
// using the names the caller supplied.
type NoPathError struct {
	From, To string
	Cause    error
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no conversion path found from %q to %q", e.From, e.To)
}

func (e *NoPathError) Is(target error) bool { return target == graph.ErrNoPath }

func (e *NoPathError) Unwrap() error { return e.Cause }
