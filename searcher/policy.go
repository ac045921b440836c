package searcher

import "math"

// Hyperparameter defaults for the search

const DefaultSimulations = 1000

const DefaultExploration = math.Sqrt2 // Exploration constant C

type ucb struct {
	c        float64
	logTotal float64
}

func newUCB(c float64, total int) ucb {
	if total == 0 {
		panic("cannot compute UCB: 0 total visits")
	}
	return ucb{c: c, logTotal: math.Log(float64(total))}
}

func (u ucb) evaluate(e *edge) float64 {
	if e.visits == 0 {
		panic("cannot compute UCB: 0 visits")
	}
	// UCB = Q + C*sqrt(ln(N_total)/N)
	return u.c*math.Sqrt(u.logTotal/float64(e.visits)) + e.mean
}

// bestEdge picks the outgoing edge with the highest upper confidence bound.
// A never-visited edge wins outright (first-play urgency): every action gets
// tried once before any exploitation, which also keeps ln(total) well-defined
// below. Ties go to the earliest edge in expansion order.
func bestEdge(n *node, c float64) *edge {
	total := 0
	for _, e := range n.edges {
		if e.visits == 0 {
			return e
		}
		total += e.visits
	}

	policy := newUCB(c, total)
	var best *edge
	max := math.Inf(-1)
	for _, e := range n.edges {
		if score := policy.evaluate(e); score > max {
			max = score
			best = e
		}
	}
	return best
}
