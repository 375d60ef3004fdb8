package main

import (
	"math/rand/v2"

	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

// RandomPlayer queues a few random commands every frame and finishes each
// piece with a hard drop.
type RandomPlayer struct {
	Rand           *rand.Rand
	MovesPerFrame  int
	HardDropChance float64
}

func (p *RandomPlayer) Execute(frame *session.Frame) {
	if frame.Game.IsGameOver() {
		return
	}
	for range p.MovesPerFrame {
		frame.Commands.Queue(tetris.Commands[p.Rand.IntN(len(tetris.Commands))])
	}
	if p.Rand.Float64() < p.HardDropChance {
		frame.Commands.Queue(tetris.CommandHardDrop)
	}
}
