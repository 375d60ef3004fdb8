package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
)

func held(durations map[ebiten.Key]int) func(ebiten.Key) int {
	return func(k ebiten.Key) int { return durations[k] }
}

func TestKeyboardCommands(t *testing.T) {
	k := NewKeyboard()

	assert.Empty(t, k.Commands(held(nil)))
	assert.Equal(t, []tetris.Command{tetris.CommandLeft, tetris.CommandHardDrop},
		k.Commands(held(map[ebiten.Key]int{ebiten.KeyArrowLeft: 1, ebiten.KeySpace: 1})))
	assert.Equal(t, []tetris.Command{tetris.CommandRotateCW},
		k.Commands(held(map[ebiten.Key]int{ebiten.KeyArrowUp: 1, ebiten.KeyX: 1})),
		"two keys bound to one command fire it once")
}

func TestKeyboardAutoRepeat(t *testing.T) {
	k := &Keyboard{Delay: 10, Rate: 3}

	var fired []int
	for tick := 1; tick <= 20; tick++ {
		if len(k.Commands(held(map[ebiten.Key]int{ebiten.KeyArrowRight: tick}))) > 0 {
			fired = append(fired, tick)
		}
	}
	assert.Equal(t, []int{1, 13, 16, 19}, fired)

	for tick := 2; tick <= 20; tick++ {
		assert.Empty(t, k.Commands(held(map[ebiten.Key]int{ebiten.KeySpace: tick})), "hard drop does not repeat")
	}
}

func TestVisibleRow(t *testing.T) {
	_, ok := visibleRow(1)
	assert.False(t, ok)
	y, ok := visibleRow(tetris.BufferRows)
	assert.True(t, ok)
	assert.Equal(t, 0, y)
	y, ok = visibleRow(tetris.FieldHeight - 1)
	assert.True(t, ok)
	assert.Equal(t, tetris.FieldVisibleHeight-1, y)
}

func TestGhostCoordinates(t *testing.T) {
	game := tetris.NewGame(tetris.NewBag(nil))
	assert.Equal(t, tetris.BlockCoordinates(game.Current(), tetris.Position{X: 4, Y: 21}), ghostCoordinates(game))
	assert.Equal(t, game.HardDrop().Field(), game.Field().Lock(game.Current(), tetris.Position{X: 4, Y: 21}))

	for !game.IsGameOver() {
		game = game.HardDrop()
	}
	assert.Nil(t, ghostCoordinates(game))
}

func TestBlockColorsCoverEveryKind(t *testing.T) {
	for _, kind := range tetris.Kinds {
		_, ok := blockColors[kind]
		assert.True(t, ok, kind.String())
	}
}
