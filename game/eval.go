package game

// EvaluateInfluence scores a position by stone connectivity: each stone counts
// itself plus its same-colored neighbors, so clustered stones (the ones that
// grow into winning runs) outweigh scattered ones. The result is the relative
// advantage in [-1, 1] from the current player's perspective.
func EvaluateInfluence(neighbors [][]int) Evaluate {
	return func(s State) float64 {
		gs, ok := s.(GameState)
		if !ok {
			panic("unexpected state type")
		}

		own := gs.toMove
		mine, theirs := 0.0, 0.0
		size := gs.board.Size()
		for a := 0; a < size*size; a++ {
			color := gs.board.At(a)
			if color == CellEmpty {
				continue
			}
			weight := 1.0
			for _, adj := range neighbors[a] {
				if gs.board.At(adj) == color {
					weight++
				}
			}
			if color == own {
				mine += weight
			} else {
				theirs += weight
			}
		}

		if mine+theirs == 0 {
			return 0
		}
		return (mine - theirs) / (mine + theirs)
	}
}
