package graph

import (
	"fmt"

	"unitconv/internal/common"
	"unitconv/internal/unit"
)

// Origin records whether an edge came from configuration or was generated
// as the inverse of a configured edge.
type Origin int

const (
	OriginConfigured Origin = iota // configured
	OriginInverse                  // inverse
)

// Edge is a directed conversion step.
type Edge struct {
	From, To  unit.ID
	Transform Transform
	Origin    Origin
}

// Graph holds the outgoing edges of every unit. It is built once and then
// only read; it is safe for concurrent readers after construction.
type Graph struct {
	adj   [][]Edge
	edges int
}

// New creates a graph with n units and no edges.
func New(n int) *Graph {
	return &Graph{adj: make([][]Edge, n)}
}

// Len returns the number of units.
func (g *Graph) Len() int {
	return len(g.adj)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// AddEdge inserts a configured edge. See AddEdgeWithOrigin.
func (g *Graph) AddEdge(from, to unit.ID, t Transform) error {
	return g.AddEdgeWithOrigin(from, to, t, OriginConfigured)
}

// AddEdgeWithOrigin inserts a directed edge. A second edge for the same
// ordered pair is rejected.
func (g *Graph) AddEdgeWithOrigin(from, to unit.ID, t Transform, origin Origin) error {
	if !g.valid(from) {
		return fmt.Errorf("%w: %d", ErrUnknownUnitID, from)
	}

	if !g.valid(to) {
		return fmt.Errorf("%w: %d", ErrUnknownUnitID, to)
	}

	if from == to {
		return fmt.Errorf("%w: unit %d", ErrSelfLoop, from)
	}

	if err := t.Validate(); err != nil {
		return err
	}

	if e, ok := g.Edge(from, to); ok {
		return &DuplicateEdgeError{From: from, To: to, Existing: e.Transform}
	}

	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Transform: t, Origin: origin})
	g.edges++

	return nil
}

// Neighbors returns the outgoing edges of id in insertion order.
// The returned slice must not be modified.
func (g *Graph) Neighbors(id unit.ID) []Edge {
	if !g.valid(id) {
		return nil
	}

	return g.adj[id]
}

// Edge returns the edge for an ordered pair, if any.
func (g *Graph) Edge(from, to unit.ID) (Edge, bool) {
	for _, e := range g.Neighbors(from) {
		if e.To == to {
			return e, true
		}
	}

	return Edge{}, false
}

// HasEdge reports whether an ordered pair has an edge.
func (g *Graph) HasEdge(from, to unit.ID) bool {
	_, ok := g.Edge(from, to)
	return ok
}

// Edges returns every edge, grouped by source unit in ID order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, es := range g.adj {
		out = append(out, es...)
	}

	return out
}

func (g *Graph) valid(id unit.ID) bool {
	return common.IsInRange(0, int(id), len(g.adj)-1)
}
