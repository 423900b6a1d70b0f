package match

import (
	"sort"
)

// MinSuggestScore is the lowest similarity a name needs to be suggested.
const MinSuggestScore = 0.5

// Candidate is a registered name scored against a query.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sortable by score (descending), then name.
type CandidateList []Candidate

func (c CandidateList) Len() int      { return len(c) }
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Rank scores every name against query. Names scoring below
// MinSuggestScore are dropped.
func Rank(query string, names []string) CandidateList {
	var list CandidateList

	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		score := NameSimilarity(query, name)
		if score < MinSuggestScore {
			continue
		}

		list = append(list, Candidate{Name: name, Score: score})
	}

	sort.Sort(list)

	return list
}

// Suggest returns up to n names closest to query, best first.
func Suggest(query string, names []string, n int) []string {
	if n <= 0 || query == "" {
		return nil
	}

	ranked := Rank(query, names)
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.Name)
	}

	return out
}
