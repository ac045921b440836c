package game

// DefaultWinRun is the classic five-in-a-row winning run length.
const DefaultWinRun = 5

// GameState is a five-in-a-row position on an N×N board. It is immutable:
// Apply returns a new state and never mutates the receiver.
type GameState struct {
	board  Board
	toMove Cell
	winRun int
	stones uint64 // zobrist XOR of placed stones
	won    bool   // the last move completed a winning run
}

// NewGameState returns an empty position, black to move. winRun is the number
// of contiguous stones needed to win (DefaultWinRun for the standard game;
// smaller for small boards).
func NewGameState(size, winRun int) GameState {
	if winRun < 1 || winRun > size {
		panic("winning run length must be between 1 and the board size")
	}
	return GameState{
		board:  NewBoard(size),
		toMove: CellBlack,
		winRun: winRun,
	}
}

func (gs GameState) Player() string {
	if gs.toMove == CellWhite {
		return White
	}
	return Black
}

func (gs GameState) IsTerminal() bool {
	return gs.won || gs.board.full()
}

func (gs GameState) LegalActions() []int {
	if gs.won {
		return nil
	}
	var actions []int
	for a := 0; a < gs.board.size*gs.board.size; a++ {
		if gs.board.At(a) == CellEmpty {
			actions = append(actions, a)
		}
	}
	return actions
}

func (gs GameState) Apply(action int) State {
	if gs.IsTerminal() {
		panic("cannot apply an action to a terminal state")
	}
	if gs.board.At(action) != CellEmpty {
		panic("cell is already occupied")
	}

	next := gs
	next.board = gs.board.place(action, gs.toMove)
	next.stones ^= zobristFor(gs.board.size).stone(action, gs.toMove)
	next.won = next.completesRun(action)
	next.toMove = gs.opponent()
	return next
}

func (gs GameState) Key() StateKey {
	key := gs.stones
	if gs.toMove == CellWhite {
		key ^= zobristFor(gs.board.size).side
	}
	return StateKey(key)
}

// Value reports the game outcome for the player to move: -1 if the opponent
// completed a winning run, 0 for a drawn full board.
func (gs GameState) Value() float64 {
	if !gs.IsTerminal() {
		panic("value is undefined on a non-terminal state")
	}
	if gs.won {
		return -1
	}
	return 0
}

// Winner returns the winning player, or "" while the game is undecided or
// drawn.
func (gs GameState) Winner() string {
	if !gs.won {
		return ""
	}
	// The winner is the player who made the last move.
	if gs.toMove == CellBlack {
		return White
	}
	return Black
}

// Board returns the underlying grid.
func (gs GameState) Board() Board {
	return gs.board
}

func (gs GameState) opponent() Cell {
	if gs.toMove == CellBlack {
		return CellWhite
	}
	return CellBlack
}

// completesRun reports whether the stone at action sits in a run of at least
// winRun same-colored stones along any of the four line directions.
func (gs GameState) completesRun(action int) bool {
	size := gs.board.size
	row, col := action/size, action%size
	color := gs.board.At(action)

	directions := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for _, d := range directions {
		run := 1
		run += gs.countRun(row, col, d[0], d[1], color)
		run += gs.countRun(row, col, -d[0], -d[1], color)
		if run >= gs.winRun {
			return true
		}
	}
	return false
}

func (gs GameState) countRun(row, col, dr, dc int, color Cell) int {
	size := gs.board.size
	count := 0
	for {
		row += dr
		col += dc
		if row < 0 || row >= size || col < 0 || col >= size {
			return count
		}
		if gs.board.At(row*size+col) != color {
			return count
		}
		count++
	}
}
