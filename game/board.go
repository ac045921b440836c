package game

type Cell int8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

const (
	Black = "black"
	White = "white"
)

// Board is a square grid of cells. Action ids map to cells in row-major
// order: action = row*size + col.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) Board {
	if size < 1 {
		panic("board size must be positive")
	}
	return Board{size: size, cells: make([]Cell, size*size)}
}

func (b Board) Size() int {
	return b.size
}

func (b Board) At(action int) Cell {
	return b.cells[action]
}

// Cells returns a copy of the raw grid in row-major order.
func (b Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// place returns a new board with the cell set; the receiver is unchanged.
func (b Board) place(action int, c Cell) Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	cells[action] = c
	return Board{size: b.size, cells: cells}
}

func (b Board) full() bool {
	for _, c := range b.cells {
		if c == CellEmpty {
			return false
		}
	}
	return true
}
