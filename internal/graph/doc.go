// Package graph provides the conversion graph, the breadth-first path
// resolver and the composer that folds a path over a value.
//
// The graph is a directed graph in adjacency-list form, indexed by
// unit.ID. Each edge carries exactly one transform: a Scale (multiply) or an
// Offset (add). Composite conversions such as Celsius to Fahrenheit are two
// edges through an intermediate unit.
//
// # Determinism
//
// Neighbors are kept in insertion order and FindPath expands them in that
// order with a FIFO queue, so the same graph and request always yield the
// same path.
//
// # Duplicate edges
//
// A second edge for the same ordered pair is rejected with ErrDuplicateEdge.
package graph
