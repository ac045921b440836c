package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func play(t *testing.T, state State, actions ...int) State {
	t.Helper()
	for _, action := range actions {
		state = state.Apply(action)
	}
	return state
}

func TestNewGameState(t *testing.T) {
	t.Run("starts empty with black to move", func(t *testing.T) {
		gs := NewGameState(5, 4)

		require.Equal(t, Black, gs.Player())
		require.False(t, gs.IsTerminal())
		require.Len(t, gs.LegalActions(), 25, "Every cell should be playable")
	})

	t.Run("rejects a winning run longer than the board", func(t *testing.T) {
		require.Panics(t, func() {
			NewGameState(3, 4)
		})
	})
}

func TestApply(t *testing.T) {
	t.Run("places a stone and alternates the turn", func(t *testing.T) {
		gs := NewGameState(3, 3)

		next := gs.Apply(4).(GameState)

		require.Equal(t, White, next.Player())
		require.Equal(t, CellBlack, next.Board().At(4))
		require.Len(t, next.LegalActions(), 8)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		gs := NewGameState(3, 3)

		gs.Apply(4)

		require.Equal(t, CellEmpty, gs.Board().At(4), "Apply should return a copy")
		require.Equal(t, Black, gs.Player())
	})

	t.Run("panics on an occupied cell", func(t *testing.T) {
		gs := play(t, NewGameState(3, 3), 4)

		require.Panics(t, func() {
			gs.Apply(4)
		})
	})
}

func TestWinDetection(t *testing.T) {
	t.Run("detects a horizontal run", func(t *testing.T) {
		gs := play(t, NewGameState(3, 3), 0, 3, 1, 4, 2).(GameState)

		require.True(t, gs.IsTerminal())
		require.Equal(t, Black, gs.Winner())
	})

	t.Run("detects a diagonal run completed in the middle", func(t *testing.T) {
		gs := play(t, NewGameState(3, 3), 0, 1, 8, 2, 4).(GameState)

		require.True(t, gs.IsTerminal())
		require.Equal(t, Black, gs.Winner(), "A run closed from inside should count")
	})

	t.Run("a full board without a run is a draw", func(t *testing.T) {
		gs := play(t, NewGameState(3, 3), 0, 1, 2, 4, 3, 5, 7, 6, 8).(GameState)

		require.True(t, gs.IsTerminal())
		require.Empty(t, gs.Winner())
		require.Zero(t, gs.Value())
	})
}

func TestValue(t *testing.T) {
	t.Run("a loss for the player to move scores -1", func(t *testing.T) {
		gs := play(t, NewGameState(3, 3), 0, 3, 1, 4, 2)

		require.Equal(t, -1.0, gs.Value(),
			"White is to move and black just won")
	})

	t.Run("is undefined before the game ends", func(t *testing.T) {
		require.Panics(t, func() {
			NewGameState(3, 3).Value()
		})
	})
}

func TestKey(t *testing.T) {
	t.Run("transposed move orders share a key", func(t *testing.T) {
		a := play(t, NewGameState(3, 3), 0, 4, 2)
		b := play(t, NewGameState(3, 3), 2, 4, 0)

		require.Equal(t, a.Key(), b.Key(),
			"Identical positions reached differently must hash alike")
	})

	t.Run("the side to move is part of the key", func(t *testing.T) {
		a := NewGameState(3, 3)
		b := play(t, NewGameState(3, 3), 0)

		require.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("different stone placements differ", func(t *testing.T) {
		a := play(t, NewGameState(3, 3), 0)
		b := play(t, NewGameState(3, 3), 1)

		require.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("keys are stable across board instances", func(t *testing.T) {
		a := play(t, NewGameState(5, 4), 7)
		b := play(t, NewGameState(5, 4), 7)

		require.Equal(t, a.Key(), b.Key())
	})
}

func TestLegalActions(t *testing.T) {
	t.Run("a won position has no legal actions", func(t *testing.T) {
		gs := play(t, NewGameState(3, 3), 0, 3, 1, 4, 2)

		require.Empty(t, gs.LegalActions())
	})

	t.Run("lists exactly the empty cells in ascending order", func(t *testing.T) {
		gs := play(t, NewGameState(3, 3), 4, 0)

		require.Equal(t, []int{1, 2, 3, 5, 6, 7, 8}, gs.LegalActions())
	})
}
