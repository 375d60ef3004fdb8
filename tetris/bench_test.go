package tetris_test

import (
	"testing"

	"github.com/plus3/tetris/tetris"
)

func BenchmarkBagDraw(b *testing.B) {
	bag := tetris.NewSeededBag(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, bag = bag.Draw()
	}
}

func BenchmarkRotateCW(b *testing.B) {
	piece := tetris.TetrominoT

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		piece = piece.RotateCW()
	}
}

func BenchmarkClearLines(b *testing.B) {
	f := tetris.MustParseField("" +
		"---T------\n" +
		"IIIIIIIIII\n" +
		"OOOO-OOOOO\n" +
		"ZZZZZZZZZZ")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.ClearLines()
	}
}

func BenchmarkTick(b *testing.B) {
	start := tetris.NewSeededGame(1)
	g := start

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g = g.Tick()
		if g.IsGameOver() {
			g = start
		}
	}
}

func BenchmarkHardDrop(b *testing.B) {
	start := tetris.NewSeededGame(1)
	g := start

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g = g.HardDrop()
		if g.IsGameOver() {
			g = start
		}
	}
}
