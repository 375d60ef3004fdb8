package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	ExecuteCount int
	TotalTime    float64
}

func (s *countingSystem) Execute(frame *session.Frame) {
	s.ExecuteCount++
	s.TotalTime += frame.DeltaTime
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		scheduler := session.NewScheduler(tetris.NewSeededGame(1))

		var order []string
		scheduler.Register(systemFunc(func(*session.Frame) { order = append(order, "first") }))
		scheduler.Register(systemFunc(func(*session.Frame) { order = append(order, "second") }))

		scheduler.Once(1.0)
		scheduler.Once(1.0)
		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
	})

	t.Run("custom state persistence", func(t *testing.T) {
		scheduler := session.NewScheduler(tetris.NewSeededGame(1))
		counter := &countingSystem{}
		scheduler.Register(counter)

		scheduler.Once(0.5)
		scheduler.Once(0.25)
		assert.Equal(t, 2, counter.ExecuteCount)
		assert.InDelta(t, 0.75, counter.TotalTime, 1e-9)
	})

	t.Run("input arrives in send order", func(t *testing.T) {
		game := tetris.NewSeededGame(1)
		scheduler := session.NewScheduler(game)
		record := &recordSystem{}
		scheduler.Register(record)
		scheduler.Register(&session.InputSystem{})

		scheduler.Send(tetris.CommandRight)
		scheduler.Send(tetris.CommandRotateCCW)
		scheduler.Once(0)

		assert.Equal(t, []tetris.Command{tetris.CommandRight, tetris.CommandRotateCCW}, record.last().Input)
		assert.Equal(t, game.Right().RotateCCW(), scheduler.Game())

		scheduler.Once(0)
		assert.Empty(t, record.last().Input)
	})

	t.Run("send from other goroutines", func(t *testing.T) {
		scheduler := session.NewScheduler(tetris.NewSeededGame(1))
		record := &recordSystem{}
		scheduler.Register(record)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 25 {
					scheduler.Send(tetris.CommandLeft)
				}
			}()
		}
		wg.Wait()

		scheduler.Once(0)
		assert.Len(t, record.last().Input, 200)
	})

	t.Run("reset", func(t *testing.T) {
		scheduler := session.NewScheduler(tetris.NewSeededGame(1))
		record := &recordSystem{}
		scheduler.Register(&queueSystem{commands: []tetris.Command{tetris.CommandHardDrop}})
		scheduler.Register(record)

		scheduler.Once(0)
		scheduler.Send(tetris.CommandLeft)

		fresh := tetris.NewSeededGame(2)
		scheduler.Reset(fresh)
		assert.Equal(t, fresh, scheduler.Game())
		assert.Equal(t, 1, scheduler.Generation())

		scheduler.Once(0)
		frame := record.last()
		assert.Equal(t, 1, frame.Generation)
		assert.Equal(t, fresh, frame.Game)
		assert.Empty(t, frame.Previous, "transitions of the old game are dropped")
		assert.Empty(t, frame.Input, "pending input of the old game is dropped")
	})

	t.Run("reset from a deferred function", func(t *testing.T) {
		scheduler := session.NewScheduler(tetris.NewSeededGame(1))
		scheduler.Register(systemFunc(func(frame *session.Frame) {
			if frame.Generation == 0 {
				frame.Commands.Defer(func() { scheduler.Reset(tetris.NewSeededGame(3)) })
			}
		}))

		scheduler.Once(0)
		assert.Equal(t, 1, scheduler.Generation())
		assert.Equal(t, tetris.NewSeededGame(3), scheduler.Game())
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := session.NewScheduler(tetris.NewSeededGame(1))
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, time.Millisecond)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after the context was cancelled")
		}
		assert.Positive(t, scheduler.GetStats().Frames)
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := session.NewScheduler(tetris.NewSeededGame(1))
	scheduler.Register(&session.InputSystem{})
	scheduler.Register(&countingSystem{})

	for range 5 {
		scheduler.Once(0.016)
	}

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(10), stats.TotalExecutions)
	assert.Equal(t, int64(5), stats.Frames)
	assert.Equal(t, "InputSystem", stats.Systems[0].Name)
	assert.Equal(t, "countingSystem", stats.Systems[1].Name)

	for _, sys := range stats.Systems {
		assert.Equal(t, int64(5), sys.ExecutionCount, sys.Name)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration, sys.Name)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration, sys.Name)
		assert.GreaterOrEqual(t, sys.TotalDuration, sys.MaxDuration, sys.Name)
	}
}
