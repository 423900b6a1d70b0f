package graph

import (
	"errors"
	"fmt"

	"unitconv/internal/unit"
)

var (
	ErrUnknownUnitID    = errors.New("unit id out of range")
	ErrInvalidTransform = errors.New("invalid transform")
	ErrSelfLoop         = errors.New("self-loops are not allowed")
	ErrDuplicateEdge    = errors.New("duplicate edge")
	ErrNoPath           = errors.New("no conversion path")
)

// DuplicateEdgeError is returned when an ordered pair already has an edge.
type DuplicateEdgeError struct {
	From, To unit.ID
	Existing Transform
}

func (e *DuplicateEdgeError) Error() string {
	return fmt.Sprintf("duplicate edge %d -> %d (already %s)", e.From, e.To, e.Existing)
}

func (e *DuplicateEdgeError) Is(target error) bool { return target == ErrDuplicateEdge }

// NoPathError is returned when both units exist but are disconnected.
type NoPathError struct {
	From, To unit.ID
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no conversion path from unit %d to unit %d", e.From, e.To)
}

func (e *NoPathError) Is(target error) bool { return target == ErrNoPath }
