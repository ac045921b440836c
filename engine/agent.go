package engine

import (
	"math"

	"fiverow/game"
	"fiverow/searcher"

	"golang.org/x/exp/rand"
)

// Agent picks an action for the player to move. Only called on non-terminal
// states.
type Agent interface {
	SelectAction(state game.State) int
}

// MCTSAgent plays the action with the highest visit share of a search.
type MCTSAgent struct {
	searcher *searcher.MCTS
}

func NewMCTSAgent(m *searcher.MCTS) *MCTSAgent {
	return &MCTSAgent{searcher: m}
}

func (a *MCTSAgent) SelectAction(state game.State) int {
	distribution, err := a.searcher.GetDistribution(state)
	if err != nil {
		panic(err)
	}

	best := -1
	max := math.Inf(-1)
	for action, p := range distribution {
		if p > max {
			max = p
			best = action
		}
	}
	return best
}

// GreedyAgent plays the action whose resulting position scores worst for the
// opponent under a heuristic evaluation. A cheap baseline for experiments.
type GreedyAgent struct {
	evaluate game.Evaluate
}

func NewGreedyAgent(evaluate game.Evaluate) *GreedyAgent {
	return &GreedyAgent{evaluate: evaluate}
}

func (a *GreedyAgent) SelectAction(state game.State) int {
	actions := state.LegalActions()
	if len(actions) == 0 {
		panic("non-terminal state reports no legal actions")
	}

	best := actions[0]
	max := math.Inf(-1)
	for _, action := range actions {
		child := state.Apply(action)
		// The child state is from the opponent's perspective.
		var score float64
		if child.IsTerminal() {
			score = -child.Value()
		} else {
			score = -a.evaluate(child)
		}
		if score > max {
			max = score
			best = action
		}
	}
	return best
}

// RandomAgent plays a uniformly random legal action.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) SelectAction(state game.State) int {
	actions := state.LegalActions()
	if len(actions) == 0 {
		panic("non-terminal state reports no legal actions")
	}
	return actions[a.rng.Intn(len(actions))]
}
