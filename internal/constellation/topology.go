package constellation

import "github.com/dhruvywuvy/ursa-minor/internal/portfolio"

// Edge connects two stars by index.
type Edge struct {
	From, To int
}

// The Little Dipper: the handle runs Polaris down to the bowl, and the
// last star closes the bowl back onto the fourth.
var edges = [...]Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6},
	{6, 3},
}

// Edges returns the fixed edge set of the constellation.
func Edges() []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges[:])
	return out
}

// Line is an edge resolved to the positions of its end stars.
type Line struct {
	Edge Edge
	From portfolio.Position
	To   portfolio.Position
}

// Lines resolves every edge against stars. Edges referring to a missing
// star are skipped.
func Lines(stars []portfolio.Star) []Line {
	out := make([]Line, 0, len(edges))
	for _, e := range edges {
		if e.From >= len(stars) || e.To >= len(stars) {
			continue
		}
		out = append(out, Line{Edge: e, From: stars[e.From].Position, To: stars[e.To].Position})
	}
	return out
}
