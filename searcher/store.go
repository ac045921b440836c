package searcher

import "fiverow/game"

// store owns every node of the search graph, keyed by state key so that
// transposed move orders resolve to the same node. One node per distinct key:
// a node is created either when a root is (re)established or during expansion
// and lives until pruned away.
type store struct {
	nodes map[game.StateKey]*node
	root  *node
}

func newStore() *store {
	return &store{nodes: make(map[game.StateKey]*node)}
}

func (s *store) size() int {
	return len(s.nodes)
}

func (s *store) lookup(state game.State) (*node, bool) {
	n, ok := s.nodes[state.Key()]
	return n, ok
}

// reset discards the whole graph and starts over from a fresh root for state.
func (s *store) reset(state game.State) *node {
	root := newNode(state)
	s.nodes = map[game.StateKey]*node{state.Key(): root}
	s.root = root
	return root
}

// lookupOrInsert returns the node for state's key, registering a new one if
// the key has not been seen. A miss is the expected case, not an error.
func (s *store) lookupOrInsert(state game.State) *node {
	if n, ok := s.nodes[state.Key()]; ok {
		return n
	}
	n := newNode(state)
	s.nodes[state.Key()] = n
	return n
}

// pruneTo keeps only the nodes reachable from newRoot and makes it the root;
// everything else is dropped and reclaimed. The full reachable set is
// computed before anything is discarded, so a node shared via several paths
// is never lost. The graph can be deep, so traversal runs on an explicit
// worklist rather than recursion.
func (s *store) pruneTo(newRoot *node) {
	kept := map[game.StateKey]*node{newRoot.state.Key(): newRoot}
	worklist := []*node{newRoot}
	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, e := range n.edges {
			key := e.child.state.Key()
			if _, ok := kept[key]; ok {
				continue
			}
			kept[key] = e.child
			worklist = append(worklist, e.child)
		}
	}
	s.nodes = kept
	s.root = newRoot
}
