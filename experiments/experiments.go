package experiments

import (
	"fmt"

	"fiverow/engine"
	"fiverow/experiments/metrics"
	"fiverow/game"
	"fiverow/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Config drives one self-play experiment run.
type Config struct {
	Name      string
	BoardSize int
	WinRun    int
	NumGames  int
	OutputDir string
	Agent1    metrics.AgentConfig
	Agent2    metrics.AgentConfig
}

// Run plays NumGames between the two configured MCTS agents, writes game and
// move records as CSV, and renders the final search distribution of agent 1
// to an HTML chart. Returns the output directory.
func Run(config Config) (string, error) {
	log.Info().Msgf("starting %s experiment...", config.Name)

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	var lastDistribution []float64

	for i := 0; i < config.NumGames; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, config.NumGames)

		winner, gameMetric, moveMetrics, distribution := runGame(config)
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     config.Agent1.ID,
			Agent2:     config.Agent2.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}
		lastDistribution = distribution

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, config.NumGames, winner)
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	writer, err := metrics.NewWriter(config.OutputDir, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs([]metrics.AgentConfig{config.Agent1, config.Agent2})
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	if lastDistribution != nil {
		err = WriteDistributionChart(writer.Dir(), config.BoardSize, lastDistribution)
		if err != nil {
			return "", fmt.Errorf("failed to render distribution chart: %w", err)
		}
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment results")

	return writer.Dir(), nil
}

// runGame executes a single game between the two agents and additionally
// returns agent 1's distribution on the opening position.
func runGame(config Config) (string, metrics.GameMetric, []metrics.MoveMetric, []float64) {
	state := game.NewGameState(config.BoardSize, config.WinRun)

	collector1 := metrics.NewCollector()
	collector2 := metrics.NewCollector()
	mcts1 := createMCTS(config.BoardSize, config.Agent1, collector1)
	mcts2 := createMCTS(config.BoardSize, config.Agent2, collector2)

	distribution, err := mcts1.GetDistribution(state)
	if err != nil {
		panic(err)
	}

	e := engine.LocalEngine(state,
		map[string]engine.Agent{
			game.Black: engine.NewMCTSAgent(mcts1),
			game.White: engine.NewMCTSAgent(mcts2),
		},
		map[string]metrics.Collector{
			game.Black: collector1,
			game.White: collector2,
		})
	winner, gameMetric, moveMetrics := e.Run()

	return winner, gameMetric, moveMetrics, distribution
}

func createMCTS(boardSize int, config metrics.AgentConfig, collector metrics.Collector) *searcher.MCTS {
	options := []searcher.Option{searcher.WithMetrics(collector)}

	if config.Simulations > 0 {
		options = append(options, searcher.WithSimulations(config.Simulations))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithRand(rand.New(rand.NewSource(config.Seed))))
	}

	return searcher.NewMCTS(boardSize*boardSize, options...)
}
