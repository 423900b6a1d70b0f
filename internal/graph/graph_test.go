package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitconv/internal/unit"
)

func TestAddEdge(t *testing.T) {
	g := New(3)

	require.NoError(t, g.AddEdge(0, 1, Scale(1.8)))
	require.NoError(t, g.AddEdge(1, 2, Offset(32)))

	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0), "edges are directed")

	e, ok := g.Edge(1, 2)
	require.True(t, ok)
	assert.Equal(t, Offset(32), e.Transform)
	assert.Equal(t, OriginConfigured, e.Origin)
}

func TestAddEdgeErrors(t *testing.T) {
	tests := []struct {
		name    string
		from    unit.ID
		to      unit.ID
		tr      Transform
		wantErr error
	}{
		{"from out of range", 5, 1, Scale(2), ErrUnknownUnitID},
		{"negative id", -1, 1, Scale(2), ErrUnknownUnitID},
		{"to out of range", 0, 3, Scale(2), ErrUnknownUnitID},
		{"self loop", 1, 1, Scale(2), ErrSelfLoop},
		{"zero factor", 0, 1, Scale(0), ErrInvalidTransform},
		{"nan factor", 0, 1, Scale(math.NaN()), ErrInvalidTransform},
		{"inf offset", 0, 1, Offset(math.Inf(1)), ErrInvalidTransform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(3)
			err := g.AddEdge(tt.from, tt.to, tt.tr)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, g.EdgeCount())
		})
	}
}

func TestAddEdgeRejectsDuplicatePair(t *testing.T) {
	g := New(2)
	require.NoError(t, g.AddEdge(0, 1, Scale(2)))

	err := g.AddEdge(0, 1, Scale(3))
	require.ErrorIs(t, err, ErrDuplicateEdge)

	var dup *DuplicateEdgeError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, Scale(2), dup.Existing)

	// The first edge is untouched and the reverse pair is still free.
	e, _ := g.Edge(0, 1)
	assert.Equal(t, Scale(2), e.Transform)
	assert.NoError(t, g.AddEdgeWithOrigin(1, 0, Scale(0.5), OriginInverse))
}

func TestNeighborsInsertionOrder(t *testing.T) {
	g := New(4)
	require.NoError(t, g.AddEdge(0, 3, Scale(3)))
	require.NoError(t, g.AddEdge(0, 1, Scale(1.5)))
	require.NoError(t, g.AddEdge(0, 2, Offset(2)))

	var to []unit.ID
	for _, e := range g.Neighbors(0) {
		to = append(to, e.To)
	}

	assert.Equal(t, []unit.ID{3, 1, 2}, to)
	assert.Nil(t, g.Neighbors(9))
	assert.Len(t, g.Edges(), 3)
}

func TestTransform(t *testing.T) {
	assert.Equal(t, 18.0, Scale(1.8).Apply(10))
	assert.Equal(t, 42.0, Offset(32).Apply(10))

	assert.InDelta(t, 1/1.8, Scale(1.8).Inverse().Value, 1e-12)
	assert.Equal(t, Offset(-32), Offset(32).Inverse())

	assert.Equal(t, "×1.8", Scale(1.8).String())
	assert.Equal(t, "+32", Offset(32).String())
	assert.Equal(t, "-273.15", Offset(-273.15).String())
	assert.Equal(t, "scale", KindScale.String())
	assert.Equal(t, "offset", KindOffset.String())
	assert.Equal(t, "TransformKind(7)", TransformKind(7).String())
	assert.Equal(t, "inverse", OriginInverse.String())
}
