package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

var blockStyles = map[tetris.Block]lipgloss.Style{
	tetris.BlockI: lipgloss.NewStyle().Background(lipgloss.Color("#66ccff")),
	tetris.BlockJ: lipgloss.NewStyle().Background(lipgloss.Color("#4060ff")),
	tetris.BlockL: lipgloss.NewStyle().Background(lipgloss.Color("#ffa030")),
	tetris.BlockO: lipgloss.NewStyle().Background(lipgloss.Color("#ffdc40")),
	tetris.BlockS: lipgloss.NewStyle().Background(lipgloss.Color("#60dc60")),
	tetris.BlockT: lipgloss.NewStyle().Background(lipgloss.Color("#c060ff")),
	tetris.BlockZ: lipgloss.NewStyle().Background(lipgloss.Color("#ff5060")),
}

var (
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#383848"))
	ghostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808090"))
	boardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#505064"))
	panelStyle    = lipgloss.NewStyle().PaddingLeft(2)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a0a0b4"))
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5060"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#606074"))
)

const (
	blockCell = "  "
	emptyCell = " ."
	ghostCell = "[]"
)

func (m model) View() string {
	game := m.scheduler.Game()
	view := lipgloss.JoinHorizontal(lipgloss.Top,
		boardStyle.Render(renderBoard(game)),
		panelStyle.Render(renderPanel(game, m.stats)),
	)
	help := helpStyle.Render("←/h →/l move  ↓/j drop  ↑/x z rotate  space hard drop  r restart  q quit")
	return view + "\n" + help + "\n"
}

func renderBoard(game tetris.Game) string {
	ghost := make(map[tetris.Position]bool)
	if !game.IsGameOver() {
		for _, p := range tetris.BlockCoordinates(game.Current(), game.DropPosition()) {
			ghost[p] = true
		}
	}

	var b strings.Builder
	for y, line := range game.Composite().VisibleRows() {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, block := range line {
			switch {
			case !block.IsEmpty():
				b.WriteString(blockStyles[block].Render(blockCell))
			case ghost[tetris.Position{X: x, Y: y + tetris.BufferRows}]:
				b.WriteString(ghostStyle.Render(ghostCell))
			default:
				b.WriteString(emptyStyle.Render(emptyCell))
			}
		}
	}
	return b.String()
}

func renderPiece(piece tetris.Tetromino) string {
	rows := make([]string, 0, piece.Rows())
	for _, cells := range piece.Grid {
		var b strings.Builder
		for _, block := range cells {
			if block.IsEmpty() {
				b.WriteString(blockCell)
				continue
			}
			b.WriteString(blockStyles[block].Render(blockCell))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func renderPanel(game tetris.Game, stats *session.StatsSystem) string {
	score := game.Score()
	sections := []string{
		labelStyle.Render("SCORE") + "\n" + fmt.Sprint(score.Points),
		labelStyle.Render("LEVEL") + "\n" + fmt.Sprint(score.Level()),
		labelStyle.Render("LINES") + "\n" + fmt.Sprint(score.LinesCleared),
		labelStyle.Render("NEXT") + "\n" + renderPiece(game.Next()),
	}

	var spawns strings.Builder
	spawns.WriteString(labelStyle.Render("PIECES"))
	for _, kind := range tetris.Kinds {
		fmt.Fprintf(&spawns, "\n%s %3d", blockStyles[kind].Render(blockCell), stats.Spawns(kind))
	}
	snap := stats.Snapshot()
	fmt.Fprintf(&spawns, "\ntetrises %d  b2b %d", snap.Tetrises, snap.BackToBack)
	sections = append(sections, spawns.String())

	if game.IsGameOver() {
		sections = append(sections, gameOverStyle.Render("GAME OVER")+"\npress r to restart")
	}
	return strings.Join(sections, "\n\n")
}
