package searcher

import (
	"testing"

	"fiverow/game"

	"github.com/stretchr/testify/require"
)

// chainState is a degenerate single-action game whose positions never repeat,
// for exercising the store on arbitrarily deep graphs.
type chainState struct {
	depth int
}

func (c chainState) Player() string {
	if c.depth%2 == 0 {
		return game.Black
	}
	return game.White
}

func (c chainState) IsTerminal() bool     { return false }
func (c chainState) LegalActions() []int  { return []int{0} }
func (c chainState) Apply(int) game.State { return chainState{depth: c.depth + 1} }
func (c chainState) Key() game.StateKey   { return game.StateKey(c.depth) }
func (c chainState) Value() float64       { panic("value is undefined on a non-terminal state") }

func TestStoreReset(t *testing.T) {
	t.Run("discards everything and roots a fresh node", func(t *testing.T) {
		s := newStore()
		s.reset(tictactoe())
		s.lookupOrInsert(tictactoe().Apply(0))
		require.Equal(t, 2, s.size())

		root := s.reset(tictactoe().Apply(4))

		require.Equal(t, 1, s.size(), "Reset should drop all prior nodes")
		require.Same(t, root, s.root)
	})
}

func TestStoreLookupOrInsert(t *testing.T) {
	t.Run("returns the same node for transposed move orders", func(t *testing.T) {
		s := newStore()
		s.reset(tictactoe())

		// Swapping black's move order around white's reply reaches the same
		// position.
		a := s.lookupOrInsert(playout(t, tictactoe(), 0, 4, 2))
		b := s.lookupOrInsert(playout(t, tictactoe(), 2, 4, 0))

		require.Same(t, a, b, "Transpositions should share one node")
		require.Equal(t, 2, s.size())
	})

	t.Run("inserts on a miss", func(t *testing.T) {
		s := newStore()
		s.reset(tictactoe())

		n := s.lookupOrInsert(tictactoe().Apply(0))

		require.NotNil(t, n)
		require.Equal(t, 2, s.size(), "A miss is handled by insertion, not an error")
	})
}

func TestStorePruneTo(t *testing.T) {
	t.Run("keeps exactly the nodes reachable from the new root", func(t *testing.T) {
		s := newStore()
		root := s.reset(tictactoe())

		left := s.lookupOrInsert(root.state.Apply(0))
		right := s.lookupOrInsert(root.state.Apply(1))
		root.edges = []*edge{newEdge(root, left, 0), newEdge(root, right, 1)}

		leftChild := s.lookupOrInsert(left.state.Apply(4))
		left.edges = []*edge{newEdge(left, leftChild, 4)}
		require.Equal(t, 4, s.size())

		s.pruneTo(left)

		require.Equal(t, 2, s.size(), "Only left and its child should survive")
		require.Same(t, left, s.root)
		_, ok := s.nodes[leftChild.state.Key()]
		require.True(t, ok, "A reachable node must survive pruning")
		_, ok = s.nodes[right.state.Key()]
		require.False(t, ok, "An unreachable node must be dropped")
		_, ok = s.nodes[root.state.Key()]
		require.False(t, ok, "The old root is unreachable from the new one")
	})

	t.Run("handles shared children without dropping them", func(t *testing.T) {
		s := newStore()
		root := s.reset(tictactoe())

		left := s.lookupOrInsert(playout(t, root.state, 0, 4))
		right := s.lookupOrInsert(playout(t, root.state, 2, 4))
		// Both parents transpose into the same child.
		shared := s.lookupOrInsert(playout(t, root.state, 0, 4, 2))
		root.edges = []*edge{newEdge(root, left, 0), newEdge(root, right, 2)}
		left.edges = []*edge{newEdge(left, shared, 2)}
		right.edges = []*edge{newEdge(right, shared, 0)}

		s.pruneTo(left)

		_, ok := s.nodes[shared.state.Key()]
		require.True(t, ok, "The shared child reachable through left must survive")
		require.Equal(t, 2, s.size())
	})

	t.Run("tolerates deep graphs", func(t *testing.T) {
		s := newStore()
		root := s.reset(chainState{})

		n := root
		for depth := 0; depth < 100000; depth++ {
			child := s.lookupOrInsert(n.state.Apply(0))
			n.edges = []*edge{newEdge(n, child, 0)}
			n = child
		}

		require.NotPanics(t, func() {
			s.pruneTo(root)
		}, "Pruning should run on a worklist, not recursion")
		require.Equal(t, 100001, s.size())
	})
}
