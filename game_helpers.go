package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/model"
	"github.com/sheikhrachel/go-gol3d/utils"
)

// game bundles the generation pair with everything the presentation loop tracks
type game struct {
	previous *model.World
	current  *model.World
	history  model.History
	seed     uint64
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, *model.TerminalRenderer, *utils.Stats, error) {
	g, err := newGame(config)
	if err != nil {
		return nil, nil, nil, err
	}
	return g, &model.TerminalRenderer{}, utils.NewStats(), nil
}

// newGame builds a freshly seeded world pair from config
func newGame(config utils.Config) (*game, error) {
	r, err := config.BuildRules()
	if err != nil {
		return nil, errors.Wrap(err, "[newGame] failed to build rules")
	}

	seed := config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	species := model.Species{MaxHealth: config.MaxHealth, MinHealth: config.MinHealth}
	rng := rand.New(rand.NewPCG(seed, 0))

	previous, current, err := model.NewWorld(r, species.Factory(), rng, model.WithTasks(config.TaskCount))
	if err != nil {
		return nil, errors.Wrap(err, "[newGame] failed to build world")
	}
	return &game{previous: previous, current: current, seed: seed}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, g *game) {
	census := g.current.Census()
	fmt.Printf("Cube: %d³ | Neighbourhood: %s | Sustaining: %v | Tasks: %d | Seed: %d\n",
		config.Dims, config.Neighbourhood, config.Neighbours, g.current.Tasks(), g.seed)
	fmt.Printf("Initial cells: %d alive, %d decaying, %d dead | Showing layer i=%d\n",
		census.Alive, census.Decaying, census.Dead, config.RenderLayer())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState records stats for the live generation and checks for stagnation
func updateGameState(
	g *game,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (status string, isStagnant bool) {
	census := g.current.Census()
	stats.Update(generation, census.Alive, census.Decaying, census.Dead, time.Since(lastFrameTime))

	hash := g.current.Hash()
	isStagnant = g.history.IsStagnant(hash)
	g.history.Record(hash)

	status = "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if census.Alive == 0 && census.Decaying == 0 {
		status = "Extinct"
	}
	return status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(generation int, status string, stats *utils.Stats, lastRestartGen int) {
	fmt.Printf("Gen: %d | Alive: %d | Decaying: %d | Density: %.1f%% | Status: %s\n",
		generation, stats.Alive, stats.Decaying, stats.Density(), status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(stats *utils.Stats, stagnantCount int, config utils.Config) (bool, string) {
	if stats.Alive == 0 && stats.Decaying == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame rebuilds the world, drawing a new seed unless one is pinned
func restartGame(config utils.Config) (*game, error) {
	log.Printf("restarting with a new world")
	time.Sleep(1 * time.Second)

	g, err := newGame(config)
	if err != nil {
		return nil, err
	}
	log.Printf("new world seeded (seed %d), alive cells: %d", g.seed, g.current.Census().Alive)
	return g, nil
}
