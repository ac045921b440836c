package searcher

import (
	"errors"
	"time"

	"fiverow/experiments/metrics"
	"fiverow/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrNoDistribution is returned when no simulation has credited a root edge,
// i.e. the root is terminal or the simulation budget is zero.
var ErrNoDistribution = errors.New("distribution undefined: no simulations completed on a non-terminal root")

type Option func(m *MCTS)

// MCTS runs classic Monte Carlo tree search over a transposition-shared
// graph: descend by UCB to a leaf, expand it, estimate it by random rollout,
// and back the value up the traversal path. Execution is single-threaded;
// exactly one simulation runs at a time.
type MCTS struct {
	actions     int // action space size, fixes the distribution length
	simulations int
	exploration float64
	rng         *rand.Rand
	progress    Progress
	metrics     metrics.Collector
	graph       *store
}

func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// WithRand injects the rollout randomness source. Fixing the seed makes whole
// searches reproducible, since everything else is deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithProgress(progress Progress) Option {
	return func(m *MCTS) {
		m.progress = progress
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMCTS(actions int, options ...Option) *MCTS {
	if actions <= 0 {
		panic("action space size must be positive")
	}
	m := &MCTS{ // Default values
		actions:     actions,
		simulations: DefaultSimulations,
		exploration: DefaultExploration,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     metrics.NewDummyCollector(),
		graph:       newStore(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// GetDistribution runs the configured number of simulations from state and
// returns the root's visit counts normalized into a probability vector
// indexed by action id. Statistics accumulate in the graph across calls, so
// querying successive positions of one game reuses the shared subtree.
func (m *MCTS) GetDistribution(state game.State) ([]float64, error) {
	m.metrics.Start(m.simulations, m.exploration)

	root := m.findRoot(state)
	if root.state.IsTerminal() {
		return nil, ErrNoDistribution
	}

	for i := 0; i < m.simulations; i++ {
		m.simulate(root)
		m.metrics.AddSimulation()
		if m.progress != nil {
			m.progress(i+1, m.simulations, "exploring tree")
		}
	}

	counts := make([]float64, m.actions)
	sum := 0.0
	for _, e := range root.edges {
		counts[e.action] = float64(e.visits)
		sum += float64(e.visits)
	}
	if sum == 0 {
		return nil, ErrNoDistribution
	}
	for i := range counts {
		counts[i] /= sum
	}
	return counts, nil
}

// findRoot reuses the node for state if an earlier query built one, pruning
// everything no longer reachable from it; otherwise the graph starts over.
// A non-terminal root is expanded up front so that every simulation credits
// exactly one root edge.
func (m *MCTS) findRoot(state game.State) *node {
	root, ok := m.graph.lookup(state)
	if ok {
		m.graph.pruneTo(root)
		m.metrics.SetTreeReuse(true)
		log.Debug().Uint64("key", uint64(state.Key())).Int("nodes", m.graph.size()).Msg("reusing search graph")
	} else {
		root = m.graph.reset(state)
		m.metrics.SetTreeReuse(false)
		log.Debug().Uint64("key", uint64(state.Key())).Msg("rebuilding search graph")
	}

	if root.isLeaf() && !root.state.IsTerminal() {
		m.expand(root)
	}
	return root
}

// simulate runs one full iteration: select a leaf, evaluate it (terminal
// value or expand-and-rollout), and backpropagate.
func (m *MCTS) simulate(root *node) {
	leaf, path := m.selectLeaf(root)
	var value float64
	if leaf.state.IsTerminal() {
		value = leaf.state.Value()
	} else {
		value = m.rollout(leaf.state)
		m.expand(leaf)
	}
	backup(leaf, value, path)
}

// selectLeaf descends from root by UCB until a node with no outgoing edges,
// recording the traversal path.
func (m *MCTS) selectLeaf(root *node) (*node, []*edge) {
	n := root
	var path []*edge
	for !n.isLeaf() {
		e := bestEdge(n, m.exploration)
		path = append(path, e)
		n = e.child
	}
	return n, path
}

// expand adds one edge per legal action of the leaf, resolving children
// through the store so transpositions share nodes. Called at most once per
// node: a node with edges is never a leaf again.
func (m *MCTS) expand(leaf *node) {
	actions := leaf.state.LegalActions()
	if len(actions) == 0 {
		panic("non-terminal state reports no legal actions")
	}
	for _, action := range actions {
		child := m.graph.lookupOrInsert(leaf.state.Apply(action))
		leaf.edges = append(leaf.edges, newEdge(leaf, child, action))
	}
	m.metrics.AddExpansion()
}

// rollout plays uniformly random moves from state to the end of the game and
// returns the terminal value from the perspective of the player to move at
// state.
func (m *MCTS) rollout(state game.State) float64 {
	origin := state.Player()
	for !state.IsTerminal() {
		actions := state.LegalActions()
		if len(actions) == 0 {
			panic("non-terminal state reports no legal actions")
		}
		state = state.Apply(actions[m.rng.Intn(len(actions))])
	}
	m.metrics.AddPlayout()

	value := state.Value()
	if state.Player() != origin {
		value = -value
	}
	return value
}

// backup credits value to every edge on the path from root to the evaluated
// leaf. value is from the leaf player's perspective; edges taken by the other
// player score its negation, encoding the zero-sum flip per ply.
func backup(leaf *node, value float64, path []*edge) {
	leafPlayer := leaf.state.Player()
	for i := len(path) - 1; i >= 0; i-- {
		e := path[i]
		sign := 1.0
		if e.player != leafPlayer {
			sign = -1.0
		}
		e.visits++
		e.total += sign * value
		e.mean = e.total / float64(e.visits)
	}
}
