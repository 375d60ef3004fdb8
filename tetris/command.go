package tetris

import "strings"

// Command is a single input to the engine, either from the player or the clock.
type Command uint8

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandRotateCW
	CommandRotateCCW
	CommandSoftDrop
	CommandHardDrop
	CommandTick
)

// Commands lists every command that changes the game.
var Commands = [...]Command{
	CommandLeft,
	CommandRight,
	CommandRotateCW,
	CommandRotateCCW,
	CommandSoftDrop,
	CommandHardDrop,
	CommandTick,
}

var commandNames = [...]string{
	CommandNone:      "none",
	CommandLeft:      "left",
	CommandRight:     "right",
	CommandRotateCW:  "rotate_cw",
	CommandRotateCCW: "rotate_ccw",
	CommandSoftDrop:  "soft_drop",
	CommandHardDrop:  "hard_drop",
	CommandTick:      "tick",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// ParseCommand looks a command up by the name String returns.
func ParseCommand(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range commandNames {
		if n == name {
			return Command(c), true
		}
	}
	return CommandNone, false
}

// Apply runs the operation named by c. Unknown commands and CommandNone
// return g unchanged.
func (g Game) Apply(c Command) Game {
	switch c {
	case CommandLeft:
		return g.Left()
	case CommandRight:
		return g.Right()
	case CommandRotateCW:
		return g.RotateCW()
	case CommandRotateCCW:
		return g.RotateCCW()
	case CommandSoftDrop:
		return g.SoftDrop()
	case CommandHardDrop:
		return g.HardDrop()
	case CommandTick:
		return g.Tick()
	}
	return g
}
