package searcher

import "fiverow/game"

// node is one vertex of the search graph: a game state plus its outgoing
// edges. A node with no edges is a leaf. Edge order is the order actions were
// expanded in, which makes selection tie-breaking deterministic.
type node struct {
	state game.State
	edges []*edge
}

// edge is a directed arc to a child node, labeled with the action that
// produced it and the player who took it. The child is a reference into the
// graph store, not owned here: transposed move orders share children across
// parents, so the structure is a DAG rather than a strict tree.
type edge struct {
	child  *node
	action int
	player string
	visits int     // N
	total  float64 // W, cumulative value
	mean   float64 // Q = W/N whenever N > 0
}

func newNode(state game.State) *node {
	return &node{state: state}
}

func newEdge(parent, child *node, action int) *edge {
	return &edge{
		child:  child,
		action: action,
		player: parent.state.Player(),
	}
}

func (n *node) isLeaf() bool {
	return len(n.edges) == 0
}
