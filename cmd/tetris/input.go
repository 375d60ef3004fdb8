package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/tetris"
)

// Auto-repeat timings, in ticks.
const (
	RepeatDelay = 10
	RepeatRate  = 3
)

type binding struct {
	keys   []ebiten.Key
	cmd    tetris.Command
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft}, cmd: tetris.CommandLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight}, cmd: tetris.CommandRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown}, cmd: tetris.CommandSoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX}, cmd: tetris.CommandRotateCW},
	{keys: []ebiten.Key{ebiten.KeyZ}, cmd: tetris.CommandRotateCCW},
	{keys: []ebiten.Key{ebiten.KeySpace}, cmd: tetris.CommandHardDrop},
}

// Keyboard turns held keys into engine commands.
type Keyboard struct {
	Delay int
	Rate  int
}

func NewKeyboard() *Keyboard {
	return &Keyboard{Delay: RepeatDelay, Rate: RepeatRate}
}

// Commands returns the commands for this tick. held reports how many ticks a
// key has been down, zero when it is up.
func (k *Keyboard) Commands(held func(ebiten.Key) int) []tetris.Command {
	var cmds []tetris.Command
	for _, b := range bindings {
		for _, key := range b.keys {
			if k.fires(held(key), b.repeat) {
				cmds = append(cmds, b.cmd)
				break
			}
		}
	}
	return cmds
}

func (k *Keyboard) fires(ticks int, repeat bool) bool {
	switch {
	case ticks == 1:
		return true
	case !repeat || ticks <= k.Delay || k.Rate <= 0:
		return false
	default:
		return (ticks-k.Delay)%k.Rate == 0
	}
}
