package game

import "sync"

// Zobrist keys give every (cell, stone) pair and the side to move a random
// bitstring; a position's key is the XOR of its pairs, so transposed move
// orders hash identically.

type zobristTable struct {
	cells []uint64 // two entries per cell: black, white
	side  uint64   // XORed in when white is to move
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[int]*zobristTable
}

var zobristTables = &zobristStore{tables: make(map[int]*zobristTable)}

// zobristFor returns the table for a board size, building it on first use.
// Tables are seeded deterministically so keys are stable across processes.
func zobristFor(size int) *zobristTable {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	if table, ok := zobristTables.tables[size]; ok {
		return table
	}

	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ uint64(size)}
	table := &zobristTable{cells: make([]uint64, size*size*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	zobristTables.tables[size] = table
	return table
}

func (z *zobristTable) stone(action int, c Cell) uint64 {
	idx := action * 2
	if c == CellWhite {
		idx++
	}
	return z.cells[idx]
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
