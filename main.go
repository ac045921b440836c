package main

import (
	"flag"
	"fmt"

	"fiverow/engine"
	"fiverow/experiments"
	"fiverow/experiments/metrics"
	"fiverow/game"
	"fiverow/searcher"
	"fiverow/server"
	"fiverow/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	mode := flag.String("mode", "demo", "demo | selfplay | serve")
	size := flag.Int("size", 9, "board size N (N×N grid)")
	winRun := flag.Int("win", game.DefaultWinRun, "stones in a row needed to win")
	simulations := flag.Int("sims", searcher.DefaultSimulations, "simulations per search")
	exploration := flag.Float64("c", searcher.DefaultExploration, "exploration constant")
	seed := flag.Uint64("seed", 0, "rollout RNG seed (0 = time-based)")
	games := flag.Int("games", 10, "games per self-play experiment")
	addr := flag.String("addr", ":8080", "listen address for serve mode")
	out := flag.String("out", "results", "output directory for experiment records")
	verbose := flag.Bool("verbose", false, "debug logging and progress display")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch *mode {
	case "demo":
		runDemo(*size, *winRun, *simulations, *exploration, *seed, *verbose)
	case "selfplay":
		runSelfplay(*size, *winRun, *simulations, *exploration, *seed, *games, *out)
	case "serve":
		runServer(*addr, *size, *winRun, *simulations, *exploration, *seed)
	default:
		log.Fatal().Msgf("unknown mode: %s", *mode)
	}
}

// runDemo searches the opening position once and prints the strongest moves.
func runDemo(size, winRun, simulations int, exploration float64, seed uint64, verbose bool) {
	options := []searcher.Option{
		searcher.WithSimulations(simulations),
		searcher.WithExploration(exploration),
	}
	if seed > 0 {
		options = append(options, searcher.WithRand(rand.New(rand.NewSource(seed))))
	}
	if verbose {
		options = append(options, searcher.WithProgress(utils.ProgressBar))
	}

	m := searcher.NewMCTS(size*size, options...)
	state := game.NewGameState(size, winRun)

	distribution, err := m.GetDistribution(state)
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}

	best, max := 0, 0.0
	for action, p := range distribution {
		if p > max {
			best, max = action, p
		}
	}
	fmt.Printf("best opening move: (%d,%d) with visit share %.3f\n", best/size, best%size, max)
}

func runSelfplay(size, winRun, simulations int, exploration float64, seed uint64, games int, out string) {
	dir, err := experiments.Run(experiments.Config{
		Name:      "selfplay",
		BoardSize: size,
		WinRun:    winRun,
		NumGames:  games,
		OutputDir: out,
		Agent1:    metrics.AgentConfig{ID: 1, Simulations: simulations, Exploration: exploration, Seed: seed},
		Agent2:    metrics.AgentConfig{ID: 2, Simulations: simulations, Exploration: exploration, Seed: seed},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	fmt.Printf("experiment results written to %s\n", dir)
}

func runServer(addr string, size, winRun, simulations int, exploration float64, seed uint64) {
	newAgent := func() engine.Agent {
		options := []searcher.Option{
			searcher.WithSimulations(simulations),
			searcher.WithExploration(exploration),
		}
		if seed > 0 {
			options = append(options, searcher.WithRand(rand.New(rand.NewSource(seed))))
		}
		return engine.NewMCTSAgent(searcher.NewMCTS(size*size, options...))
	}

	s := server.New(addr, size, winRun, newAgent)
	if err := s.Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
