package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

const (
	CellSize     = 30
	BoardX       = 50
	BoardY       = 50
	BoardWidth   = tetris.FieldWidth * CellSize
	BoardHeight  = tetris.FieldVisibleHeight * CellSize
	PanelX       = BoardX + BoardWidth + 30
	ScreenWidth  = PanelX + 6*CellSize
	ScreenHeight = BoardY*2 + BoardHeight
)

var (
	background = color.RGBA{16, 16, 24, 255}
	gridColor  = color.RGBA{40, 40, 52, 255}
	ghostColor = color.RGBA{255, 255, 255, 48}
	overlay    = color.RGBA{0, 0, 0, 180}
)

var blockColors = map[tetris.Block]color.RGBA{
	tetris.BlockI: {102, 204, 255, 255},
	tetris.BlockJ: {64, 96, 255, 255},
	tetris.BlockL: {255, 160, 48, 255},
	tetris.BlockO: {255, 220, 64, 255},
	tetris.BlockS: {96, 220, 96, 255},
	tetris.BlockT: {192, 96, 255, 255},
	tetris.BlockZ: {255, 80, 96, 255},
}

func drawGame(screen *ebiten.Image, game tetris.Game, stats session.GameStats) {
	screen.Fill(background)
	vector.StrokeRect(screen, BoardX-2, BoardY-2, BoardWidth+4, BoardHeight+4, 2, gridColor, false)

	for _, p := range ghostCoordinates(game) {
		if y, ok := visibleRow(p.Y); ok {
			drawCell(screen, BoardX+p.X*CellSize, BoardY+y*CellSize, ghostColor)
		}
	}

	for y, line := range game.Composite().VisibleRows() {
		for x, b := range line {
			if b.IsEmpty() {
				continue
			}
			drawCell(screen, BoardX+x*CellSize, BoardY+y*CellSize, blockColors[b])
		}
	}

	drawPanel(screen, game, stats)

	if game.IsGameOver() {
		vector.DrawFilledRect(screen, BoardX, BoardY+BoardHeight/2-40, BoardWidth, 80, overlay, false)
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("GAME OVER\nScore: %d\nPress R to restart", game.Score().Points),
			BoardX+90, BoardY+BoardHeight/2-24)
	}
}

func drawPanel(screen *ebiten.Image, game tetris.Game, stats session.GameStats) {
	score := game.Score()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"SCORE\n%d\n\nLEVEL\n%d\n\nLINES\n%d\n\nPIECES\n%d\nTETRISES\n%d",
		score.Points, score.Level(), score.LinesCleared, stats.Pieces, stats.Tetrises,
	), PanelX, BoardY)

	ebitenutil.DebugPrintAt(screen, "NEXT", PanelX, BoardY+200)
	next := game.Next()
	for row, cells := range next.Grid {
		for col, b := range cells {
			if b.IsEmpty() {
				continue
			}
			drawCell(screen, PanelX+col*CellSize, BoardY+220+row*CellSize, blockColors[b])
		}
	}
}

func drawCell(screen *ebiten.Image, x, y int, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x)+1, float32(y)+1, CellSize-2, CellSize-2, clr, false)
}

// visibleRow maps a field row to a screen row, hiding the buffer rows.
func visibleRow(y int) (int, bool) {
	y -= tetris.BufferRows
	return y, y >= 0 && y < tetris.FieldVisibleHeight
}

// ghostCoordinates returns where the active piece would land.
func ghostCoordinates(game tetris.Game) []tetris.Position {
	if game.IsGameOver() {
		return nil
	}
	return tetris.BlockCoordinates(game.Current(), game.DropPosition())
}
