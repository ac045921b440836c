package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	neighbors := Neighbors(5)

	t.Run("covers every cell", func(t *testing.T) {
		require.Len(t, neighbors, 25)
	})

	t.Run("a corner has 3 neighbors", func(t *testing.T) {
		require.ElementsMatch(t, []int{1, 5, 6}, neighbors[0])
		require.ElementsMatch(t, []int{18, 19, 23}, neighbors[24])
	})

	t.Run("an edge cell has 5 neighbors", func(t *testing.T) {
		require.ElementsMatch(t, []int{1, 3, 6, 7, 8}, neighbors[2])
	})

	t.Run("an interior cell has 8 neighbors", func(t *testing.T) {
		require.ElementsMatch(t, []int{6, 7, 8, 11, 13, 16, 17, 18}, neighbors[12])
	})

	t.Run("adjacency is symmetric", func(t *testing.T) {
		for cell, adjacent := range neighbors {
			for _, other := range adjacent {
				require.Contains(t, neighbors[other], cell,
					"If a neighbors b then b neighbors a")
			}
		}
	})
}
