package graph

import (
	"sort"

	"unitconv/internal/unit"
)

// Components returns the groups of units connected by edges in either
// direction. Conversions are only possible within a group.
//
// The result is deterministic: units within a group are in ID order, and
// groups are ordered by their smallest ID. Units without any edge form
// groups of one.
func Components(g *Graph) [][]unit.ID {
	n := g.Len()
	if n == 0 {
		return nil
	}

	links := make([][]unit.ID, n)
	for _, e := range g.Edges() {
		links[e.From] = append(links[e.From], e.To)
		links[e.To] = append(links[e.To], e.From)
	}

	seen := make([]bool, n)

	var groups [][]unit.ID

	for start := range n {
		if seen[start] {
			continue
		}

		seen[start] = true
		group := []unit.ID{unit.ID(start)}

		for queue := []unit.ID{unit.ID(start)}; len(queue) > 0; {
			id := queue[0]
			queue = queue[1:]

			for _, next := range links[id] {
				if !seen[next] {
					seen[next] = true
					group = append(group, next)
					queue = append(queue, next)
				}
			}
		}

		sort.Slice(group, func(i, j int) bool { return group[i] < group[j] })
		groups = append(groups, group)
	}

	return groups
}
