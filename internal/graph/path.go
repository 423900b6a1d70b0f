package graph

import (
	"unitconv/internal/unit"
)

// Path is an ordered sequence of edges from a source unit to a target unit.
// An empty path is the identity conversion.
type Path []Edge

// Units returns the units visited by the path, source first.
func (p Path) Units() []unit.ID {
	if len(p) == 0 {
		return nil
	}

	ids := make([]unit.ID, 0, len(p)+1)
	ids = append(ids, p[0].From)

	for _, e := range p {
		ids = append(ids, e.To)
	}

	return ids
}

// Apply folds the path over v. See the package-level Apply.
func (p Path) Apply(v float64) float64 {
	return Apply(p, v)
}

// FindPath returns a path with the fewest edges from source to target.
//
// The search is an unweighted breadth-first search. Among equally short
// paths the one found first wins: neighbors are expanded in insertion order
// and a unit keeps the parent that discovered it.
func FindPath(g *Graph, source, target unit.ID) (Path, error) {
	if !g.valid(source) || !g.valid(target) {
		return nil, &NoPathError{From: source, To: target}
	}

	if source == target {
		return Path{}, nil
	}

	// via[u] is the edge that discovered u; visited tracks discovery since
	// the source itself has no incoming edge.
	via := make([]Edge, g.Len())
	visited := make([]bool, g.Len())
	visited[source] = true

	queue := []unit.ID{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, e := range g.adj[current] {
			if visited[e.To] {
				continue
			}

			visited[e.To] = true
			via[e.To] = e

			if e.To == target {
				return walkBack(via, source, target), nil
			}

			queue = append(queue, e.To)
		}
	}

	return nil, &NoPathError{From: source, To: target}
}

func walkBack(via []Edge, source, target unit.ID) Path {
	var rev Path
	for at := target; at != source; at = via[at].From {
		rev = append(rev, via[at])
	}

	p := make(Path, len(rev))
	for i, e := range rev {
		p[len(rev)-1-i] = e
	}

	return p
}
