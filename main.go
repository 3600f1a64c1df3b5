package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-gol3d/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		config = utils.DefaultConfig()
	}
	if err = utils.ParseEnv(&config); err != nil {
		log.Fatal(err)
	}

	g, renderer, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	displayGameInfo(config, g)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
		layer          = config.RenderLayer()
	)

	for {
		select {
		case <-sigChan:
			log.Printf("shutting down: %d generations in %.1f seconds, %.1f avg population",
				generation, time.Since(stats.StartTime).Seconds(), stats.AveragePopulation)
			return
		default:
		}

		frameStart := time.Now()
		renderer.Clear()

		status, isStagnant := updateGameState(g, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, status, stats, lastRestartGen)
		renderer.Display(g.current, layer)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			log.Printf("reached maximum generations limit (%d)", config.MaxGenerations)
			return
		}

		if shouldRestart, reason := checkRestartConditions(stats, stagnantCount, config); shouldRestart && config.AutoRestart {
			log.Printf("restarting due to %s", reason)
			if g, err = restartGame(config); err != nil {
				log.Fatal(err)
			}
			lastRestartGen = generation
			stagnantCount = 0
		}

		if err = g.current.Update(g.previous); err != nil {
			log.Fatalf("generation %d failed: %v", generation, err)
		}
		generation++

		time.Sleep(config.FrameRate)
	}
}
