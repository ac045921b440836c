package game

// Neighbors precomputes, for each cell of an n×n board, the action ids of its
// adjacent cells including diagonals (3 for a corner, 5 for an edge, 8 for an
// interior cell). The table is pure data: compute it once and pass it to the
// heuristics that need it.
func Neighbors(n int) [][]int {
	neighbors := make([][]int, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			var adjacent []int
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					r, c := row+dr, col+dc
					if r < 0 || r >= n || c < 0 || c >= n {
						continue
					}
					adjacent = append(adjacent, r*n+c)
				}
			}
			neighbors[row*n+col] = adjacent
		}
	}
	return neighbors
}
