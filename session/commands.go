package session

import "github.com/plus3/tetris/tetris"

// Transition records one applied command.
type Transition struct {
	Command tetris.Command
	Before  tetris.Game
	After   tetris.Game
}

// Locked reports whether the command locked a piece and dealt a new one.
func (t Transition) Locked() bool {
	return t.After.Pieces() > t.Before.Pieces()
}

// Cleared returns the number of lines the command removed.
func (t Transition) Cleared() int {
	return t.After.Score().LinesCleared - t.Before.Score().LinesCleared
}

// Ended reports whether the command lost the game.
func (t Transition) Ended() bool {
	return t.After.IsGameOver() && !t.Before.IsGameOver()
}

// Commands buffers the engine commands queued by systems during a frame.
// Nothing is applied until the frame ends.
type Commands struct {
	queue  []tetris.Command
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Queue adds cmd to the end of the frame's command list.
func (c *Commands) Queue(cmd tetris.Command) {
	if cmd == tetris.CommandNone {
		return
	}
	c.queue = append(c.queue, cmd)
}

// Defer queues a function to run after the frame's result is committed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Flush applies every queued command to game in order, runs the deferred
// functions and resets the buffer. It returns the final game and one
// transition per command.
func (c *Commands) Flush(game tetris.Game) (tetris.Game, []Transition) {
	game, transitions := c.apply(game)
	c.runDeferred()
	return game, transitions
}

func (c *Commands) apply(game tetris.Game) (tetris.Game, []Transition) {
	if len(c.queue) == 0 {
		return game, nil
	}

	transitions := make([]Transition, 0, len(c.queue))
	for _, cmd := range c.queue {
		next := game.Apply(cmd)
		transitions = append(transitions, Transition{Command: cmd, Before: game, After: next})
		game = next
	}
	c.queue = c.queue[:0]
	return game, transitions
}

func (c *Commands) runDeferred() {
	defers := c.defers
	c.defers = nil
	for _, fn := range defers {
		fn()
	}
}
