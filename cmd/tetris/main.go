package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

const TicksPerSecond = 60

type Game struct {
	config    config.Config
	scheduler *session.Scheduler
	stats     *session.StatsSystem
	keyboard  *Keyboard
}

func main() {
	cfg, err := config.Load("tetris", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Tetris")
	ebiten.SetTPS(TicksPerSecond)

	game := newGame(cfg)
	log.Printf("Starting tetris (seed=%d, gravity=%s)\n", cfg.Seed, cfg.Gravity)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited with an error: %v", err)
	}
}

func newGame(cfg config.Config) *Game {
	stats := &session.StatsSystem{}

	scheduler := session.NewScheduler(cfg.NewGame())
	scheduler.Register(&session.InputSystem{})
	scheduler.Register(&session.GravitySystem{Interval: cfg.Gravity})
	scheduler.Register(stats)
	scheduler.Register(&session.GameOverSystem{OnGameOver: func(g tetris.Game) {
		s := g.Score()
		log.Printf("Game over: %d points, %d lines, level %d, %d pieces\n",
			s.Points, s.LinesCleared, s.Level(), g.Pieces())
	}})

	return &Game{
		config:    cfg,
		scheduler: scheduler,
		stats:     stats,
		keyboard:  NewKeyboard(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scheduler.Reset(g.config.NewGame())
		if g.config.Debug {
			log.Println("Restarted")
		}
	}

	for _, cmd := range g.keyboard.Commands(inpututil.KeyPressDuration) {
		g.scheduler.Send(cmd)
	}
	g.scheduler.Once(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawGame(screen, g.scheduler.Game(), g.stats.Snapshot())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
