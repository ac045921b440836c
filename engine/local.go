package engine

import (
	"time"

	"fiverow/experiments/metrics"
	"fiverow/game"

	"github.com/rs/zerolog/log"
)

// MaxMoves aborts runaway games; a grid game fills the board long before
// this.
const MaxMoves = 10000

// Engine plays two agents against each other on one game.
type Engine struct {
	State      game.State
	Agents     map[string]Agent
	Collectors map[string]metrics.Collector
}

// LocalEngine wires agents keyed by player name to an initial state. Pass a
// collector per player to record search metrics, or nil for none.
func LocalEngine(state game.State, agents map[string]Agent, collectors map[string]metrics.Collector) *Engine {
	if len(agents) < 2 {
		panic("need at least two players")
	}
	return &Engine{
		State:      state,
		Agents:     agents,
		Collectors: collectors,
	}
}

// Run plays the game to the end and returns the winner ("" for a draw) with
// per-game and per-move metrics.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	startingPlayer := e.State.Player()
	var moveMetrics []metrics.MoveMetric

	moves := 0
	for !e.State.IsTerminal() {
		if moves >= MaxMoves {
			panic("game exceeded the maximum number of moves")
		}

		player := e.State.Player()
		agent, ok := e.Agents[player]
		if !ok {
			panic("no agent registered for player " + player)
		}

		action := agent.SelectAction(e.State)
		e.State = e.State.Apply(action)
		moves++

		log.Info().Str("player", player).Int("action", action).Int("move", moves).Msg("move played")

		if collector, ok := e.Collectors[player]; ok {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         moves,
				Player:       player,
				SearchMetric: collector.Complete(),
			})
		}
	}

	winner := e.winner()
	end := time.Now()
	log.Info().Str("winner", winner).Int("moves", moves).Msg("game over")

	return winner, metrics.GameMetric{
		StartingPlayer: startingPlayer,
		Winner:         winner,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     moves,
	}, moveMetrics
}

// winner derives the winning player from the terminal value: a negative
// value means the player to move lost to whoever moved last.
func (e *Engine) winner() string {
	value := e.State.Value()
	loser := e.State.Player()
	if value == 0 {
		return ""
	}
	if value > 0 {
		return loser
	}
	for player := range e.Agents {
		if player != loser {
			return player
		}
	}
	panic("no opponent registered for player " + loser)
}
