package main

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

const FrameRate = 60

type frameMsg time.Time

var keyCommands = map[string]tetris.Command{
	"left":  tetris.CommandLeft,
	"h":     tetris.CommandLeft,
	"right": tetris.CommandRight,
	"l":     tetris.CommandRight,
	"down":  tetris.CommandSoftDrop,
	"j":     tetris.CommandSoftDrop,
	"up":    tetris.CommandRotateCW,
	"x":     tetris.CommandRotateCW,
	"z":     tetris.CommandRotateCCW,
	" ":     tetris.CommandHardDrop,
}

type model struct {
	config    config.Config
	scheduler *session.Scheduler
	stats     *session.StatsSystem
	last      time.Time
}

func newModel(cfg config.Config) model {
	stats := &session.StatsSystem{}

	scheduler := session.NewScheduler(cfg.NewGame())
	scheduler.Register(&session.InputSystem{})
	scheduler.Register(&session.GravitySystem{Interval: cfg.Gravity})
	scheduler.Register(stats)
	scheduler.Register(&session.GameOverSystem{OnGameOver: func(g tetris.Game) {
		log.Printf("Game over: %d points, %d lines, %d pieces", g.Score().Points, g.Score().LinesCleared, g.Pieces())
	}})

	return model{
		config:    cfg,
		scheduler: scheduler,
		stats:     stats,
	}
}

func frame() tea.Cmd {
	return tea.Tick(time.Second/FrameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m model) Init() tea.Cmd {
	return frame()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.scheduler.Reset(m.config.NewGame())
			log.Println("Restarted")
		default:
			if cmd, ok := keyCommands[key]; ok {
				m.scheduler.Send(cmd)
			}
		}
		return m, nil
	case frameMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.scheduler.Once(dt)
		return m, frame()
	}
	return m, nil
}
