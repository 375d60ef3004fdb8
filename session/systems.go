package session

import (
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetris/tetris"
)

// InputSystem forwards the commands sent to the scheduler into the frame.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *Frame) {
	for _, cmd := range frame.Input {
		frame.Commands.Queue(cmd)
	}
}

// GravitySystem queues one Tick for every Interval of elapsed time. The
// interval is fixed for the whole game.
type GravitySystem struct {
	Interval time.Duration

	accumulated time.Duration
	generation  int
}

func (s *GravitySystem) Execute(frame *Frame) {
	if s.generation != frame.Generation {
		s.generation = frame.Generation
		s.accumulated = 0
	}
	if s.Interval <= 0 || frame.Game.IsGameOver() {
		s.accumulated = 0
		return
	}

	s.accumulated += time.Duration(frame.DeltaTime * float64(time.Second))
	for s.accumulated >= s.Interval {
		s.accumulated -= s.Interval
		frame.Commands.Queue(tetris.CommandTick)
	}
}

// GameStats summarizes one game as seen by a StatsSystem.
type GameStats struct {
	Pieces     int
	Singles    int
	Doubles    int
	Triples    int
	Tetrises   int
	BackToBack int
	HardDrops  int
}

// Lines returns the total number of lines cleared.
func (g GameStats) Lines() int {
	return g.Singles + 2*g.Doubles + 3*g.Triples + 4*g.Tetrises
}

// StatsSystem counts what happened in the current game from the transitions
// of each frame. Counters restart with every generation.
type StatsSystem struct {
	spawns     *intmap.Map[tetris.Block, int]
	stats      GameStats
	generation int
}

func (s *StatsSystem) Execute(frame *Frame) {
	if s.spawns == nil || s.generation != frame.Generation {
		s.reset(frame.Generation)
		s.spawned(frame.Game.Current().Kind)
	}

	for _, t := range frame.Previous {
		if t.Command == tetris.CommandHardDrop && (t.Locked() || t.Ended()) {
			s.stats.HardDrops++
		}
		if !t.Locked() {
			continue
		}
		s.spawned(t.After.Current().Kind)

		switch t.Cleared() {
		case 1:
			s.stats.Singles++
		case 2:
			s.stats.Doubles++
		case 3:
			s.stats.Triples++
		case 4:
			s.stats.Tetrises++
			if t.Before.Score().LastClearWasTetris {
				s.stats.BackToBack++
			}
		}
	}
}

func (s *StatsSystem) reset(generation int) {
	s.spawns = intmap.New[tetris.Block, int](len(tetris.Kinds))
	s.stats = GameStats{}
	s.generation = generation
}

func (s *StatsSystem) spawned(kind tetris.Block) {
	n, _ := s.spawns.Get(kind)
	s.spawns.Put(kind, n+1)
	s.stats.Pieces++
}

// Spawns returns how many pieces of kind have entered play this game.
func (s *StatsSystem) Spawns(kind tetris.Block) int {
	if s.spawns == nil {
		return 0
	}
	n, _ := s.spawns.Get(kind)
	return n
}

// Kinds returns the number of distinct kinds dealt so far.
func (s *StatsSystem) Kinds() int {
	if s.spawns == nil {
		return 0
	}
	return s.spawns.Len()
}

// Snapshot returns the counters for the current game.
func (s *StatsSystem) Snapshot() GameStats {
	return s.stats
}

// GameOverSystem calls OnGameOver once per generation, after the frame in
// which it first sees a finished game has been committed.
type GameOverSystem struct {
	OnGameOver func(game tetris.Game)

	fired      bool
	generation int
}

func (s *GameOverSystem) Execute(frame *Frame) {
	if s.generation != frame.Generation {
		s.generation = frame.Generation
		s.fired = false
	}
	if s.fired || !frame.Game.IsGameOver() {
		return
	}
	s.fired = true

	game := frame.Game
	if s.OnGameOver != nil {
		frame.Commands.Defer(func() { s.OnGameOver(game) })
	}
}
