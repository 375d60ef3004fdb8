// Package session runs a tetris game on a clock. A Scheduler owns the current
// game and executes a list of systems every frame; systems read the frame and
// queue engine commands, which are applied in order once every system has run.
package session

// System represents a behavior that runs once per frame.
// Implementations may keep their own state in fields between frames.
type System interface {
	Execute(frame *Frame)
}
