package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

func main() {
	var (
		duration       time.Duration
		maxGames       int
		gcPauseMetrics bool
	)
	cfg, err := config.Load("tetris-stress", os.Args[1:], func(fs *flag.FlagSet) {
		fs.DurationVar(&duration, "duration", 10*time.Second, "The total duration the test should run for.")
		fs.IntVar(&maxGames, "games", 0, "Stop after this many finished games; 0 runs until the duration ends.")
		fs.BoolVar(&gcPauseMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	log.Println("Starting tetris stress test...")

	// 1. Setup the scheduler and its systems
	report := &Report{
		Duration:       duration,
		Seed:           seed,
		Gravity:        cfg.Gravity,
		MaxGames:       maxGames,
		GCPauseMetrics: gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	game := 0
	stats := &session.StatsSystem{}
	scheduler := session.NewScheduler(tetris.NewSeededGame(gameSeed(seed, game)))
	scheduler.Register(&RandomPlayer{
		Rand:           rand.New(rand.NewPCG(seed, 1)),
		MovesPerFrame:  2,
		HardDropChance: 0.1,
	})
	scheduler.Register(&session.GravitySystem{Interval: cfg.Gravity})
	scheduler.Register(stats)
	scheduler.Register(&session.GameOverSystem{OnGameOver: func(g tetris.Game) {
		report.AddGame(g, stats.Snapshot())
		if cfg.Debug {
			log.Printf("Game %d over: %d points, %d lines\n", game, g.Score().Points, g.Score().LinesCleared)
		}
		game++
		scheduler.Reset(tetris.NewSeededGame(gameSeed(seed, game)))
	}})

	runtime.ReadMemStats(&report.MemStatsStart)

	// 2. Run the simulation loop
	log.Printf("Running simulation for %s...\n", duration)
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	// Frames advance a fixed 1/60s of game time regardless of wall time.
	const frameTime = 1.0 / 60.0

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if maxGames > 0 && len(report.Games) >= maxGames {
				break Loop
			}

			updateStart := time.Now()
			scheduler.Once(frameTime)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.Unfinished = scheduler.Game()
	report.UpdateTime.Finalize()
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// gameSeed derives the seed of the n-th game from the run seed.
func gameSeed(seed uint64, n int) uint64 {
	return seed + uint64(n)*0x9e3779b97f4a7c15
}
