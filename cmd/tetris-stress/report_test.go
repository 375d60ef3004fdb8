package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportScores(t *testing.T) {
	r := &Report{}
	assert.Zero(t, r.MeanScore())

	r.Games = []GameResult{
		{Score: tetris.Score{Points: 100}, Stats: session.GameStats{Pieces: 10, Singles: 1}},
		{Score: tetris.Score{Points: 400}, Stats: session.GameStats{Pieces: 20, Tetrises: 1, HardDrops: 3}},
	}
	assert.Equal(t, 400, r.BestScore())
	assert.InDelta(t, 250.0, r.MeanScore(), 1e-9)
	assert.Equal(t, session.GameStats{Pieces: 30, Singles: 1, Tetrises: 1, HardDrops: 3}, r.Totals())
	assert.Equal(t, 5, r.Totals().Lines())
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:     time.Second,
		Seed:         9,
		Gravity:      500 * time.Millisecond,
		TotalUpdates: 60,
		Unfinished:   tetris.NewSeededGame(9),
		Systems:      []session.SystemStats{{Name: "RandomPlayer", ExecutionCount: 60}},
	}
	r.AddGame(tetris.NewSeededGame(1).HardDrop(), session.GameStats{Pieces: 2, HardDrops: 1})

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Tetris Stress Test Report")
	assert.Contains(t, out, "**Seed:** 9")
	assert.Contains(t, out, "**Game Limit:** none")
	assert.Contains(t, out, "**Finished Games:** 1")
	assert.Contains(t, out, "**Hard Drops:** 1")
	assert.Contains(t, out, "**RandomPlayer:**")
	assert.NotContains(t, out, "GC Pause Durations")
}

func TestRandomPlayerFinishesGames(t *testing.T) {
	var finished []tetris.Game
	scheduler := session.NewScheduler(tetris.NewSeededGame(1))
	scheduler.Register(&RandomPlayer{Rand: rand.New(rand.NewPCG(1, 1)), MovesPerFrame: 2, HardDropChance: 0.5})
	scheduler.Register(&session.GravitySystem{Interval: 10 * time.Millisecond})
	scheduler.Register(&session.GameOverSystem{OnGameOver: func(g tetris.Game) {
		finished = append(finished, g)
		scheduler.Reset(tetris.NewSeededGame(gameSeed(1, len(finished))))
	}})

	for range 100000 {
		if len(finished) == 2 {
			break
		}
		scheduler.Once(1.0 / 60.0)
	}
	require.Len(t, finished, 2)
	for _, g := range finished {
		assert.True(t, g.IsGameOver())
		assert.Greater(t, g.Pieces(), 1)
	}
	assert.Equal(t, 2, scheduler.Generation())
}

func TestGameSeed(t *testing.T) {
	assert.Equal(t, uint64(5), gameSeed(5, 0))
	assert.NotEqual(t, gameSeed(5, 1), gameSeed(5, 2))
}
