package game

// StateKey is a total hash key for a game state. Strategically identical
// states reached via different move orders must share a key so the searcher
// can deduplicate transpositions.
type StateKey uint64

// State should be immutable - operations on State always return a new copy.
// Actions are ids into a fixed action space (board cells for grid games), so
// callers can index result vectors by action id.
type State interface {
	Player() string
	IsTerminal() bool
	// LegalActions is non-empty unless the state is terminal.
	LegalActions() []int
	Apply(action int) State
	Key() StateKey
	// Value is defined only on terminal states, from the perspective of the
	// player to move there: -1 loss, 0 draw.
	Value() float64
}

// Evaluate scores a game state between -1 and 1 indicating how favorable the
// current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64
