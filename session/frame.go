package session

import "github.com/plus3/tetris/tetris"

// Frame is what a system sees when it executes.
type Frame struct {
	// DeltaTime is the time since the previous frame, in seconds.
	DeltaTime float64
	// Game is the state at the start of the frame. Commands queued during the
	// frame are not visible here until the next one.
	Game tetris.Game
	// Input holds the commands sent to the scheduler since the last frame.
	Input []tetris.Command
	// Previous holds the transitions committed by the last frame.
	Previous []Transition
	// Generation changes every time the scheduler is reset.
	Generation int
	Commands   *Commands
}

func newFrame(dt float64, game tetris.Game, input []tetris.Command, previous []Transition, generation int) *Frame {
	return &Frame{
		DeltaTime:  dt,
		Game:       game,
		Input:      input,
		Previous:   previous,
		Generation: generation,
		Commands:   newCommands(),
	}
}
