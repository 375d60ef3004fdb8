package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/tetris/config"
)

func main() {
	cfg, err := config.Load("tetris-tui", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The terminal belongs to the UI while it runs.
	log.SetOutput(io.Discard)
	if cfg.Debug {
		f, err := tea.LogToFile(cfg.Log, "tetris")
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
	}

	log.Printf("Starting tetris-tui (seed=%d, gravity=%s)", cfg.Seed, cfg.Gravity)
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Program exited with an error: %v", err)
	}
}
