package session

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/plus3/tetris/tetris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Generation      int
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler owns a game and executes systems against it in order.
//
// Send, Game and Reset may be called from any goroutine. Register must be
// called before the scheduler starts running frames.
type Scheduler struct {
	systems     []System
	systemStats []*systemStatsInternal

	// frameMu serializes frames, resets and stats reads.
	frameMu    sync.Mutex
	previous   []Transition
	generation int
	frames     int64

	gameMu sync.RWMutex
	game   tetris.Game

	inputMu sync.Mutex
	input   []tetris.Command
}

// NewScheduler creates a scheduler for game.
func NewScheduler(game tetris.Game) *Scheduler {
	return &Scheduler{
		game:    game,
		systems: make([]System, 0),
	}
}

// Register adds a system to the end of the execution order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Send queues a command for the next frame's Input.
func (s *Scheduler) Send(cmd tetris.Command) {
	s.inputMu.Lock()
	s.input = append(s.input, cmd)
	s.inputMu.Unlock()
}

// Game returns the most recently committed game.
func (s *Scheduler) Game() tetris.Game {
	s.gameMu.RLock()
	defer s.gameMu.RUnlock()
	return s.game
}

// Generation returns the number of times the scheduler has been reset.
func (s *Scheduler) Generation() int {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	return s.generation
}

// Reset replaces the game, discarding pending input and the previous frame's
// transitions, and starts a new generation.
func (s *Scheduler) Reset(game tetris.Game) {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()

	s.inputMu.Lock()
	s.input = nil
	s.inputMu.Unlock()

	s.gameMu.Lock()
	s.game = game
	s.gameMu.Unlock()

	s.previous = nil
	s.generation++
}

// Once executes all registered systems once with the given delta time, applies
// the commands they queued and then runs their deferred functions.
func (s *Scheduler) Once(dt float64) {
	commands := s.step(dt)
	commands.runDeferred()
}

func (s *Scheduler) step(dt float64) *Commands {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()

	s.inputMu.Lock()
	input := s.input
	s.input = nil
	s.inputMu.Unlock()

	game := s.Game()
	frame := newFrame(dt, game, input, s.previous, s.generation)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	game, s.previous = frame.Commands.apply(game)
	s.gameMu.Lock()
	s.game = game
	s.gameMu.Unlock()
	s.frames++

	return frame.Commands
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution. It must not be called
// from inside a system.
func (s *Scheduler) GetStats() *SchedulerStats {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()

	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Generation:  s.generation,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
