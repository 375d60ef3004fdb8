package tetris

// Game is the complete state of a game in progress. It is a value: every
// operation returns the successor state and leaves the receiver unchanged.
// Once a game is over every operation returns it as is.
type Game struct {
	field    Field
	current  Tetromino
	next     Tetromino
	bag      Bag
	position Position
	score    Score
	gameOver bool
	pieces   int
}

// NewGame starts a game, dealing the current and next pieces from bag.
func NewGame(bag Bag) Game {
	current, bag := bag.Draw()
	next, bag := bag.Draw()
	return Game{
		field:    NewField(),
		current:  current,
		next:     next,
		bag:      bag,
		position: StartPosition,
		score:    NewScore(),
		pieces:   1,
	}
}

// NewSeededGame starts a game whose piece sequence is fixed by seed.
func NewSeededGame(seed uint64) Game {
	return NewGame(NewSeededBag(seed))
}

// NewRandomGame starts a game with a randomly seeded bag.
func NewRandomGame() Game {
	return NewGame(NewRandomBag())
}

// NewGameWithField starts a game on a prepared field. The game is over at once
// if the first piece cannot spawn.
func NewGameWithField(field Field, bag Bag) Game {
	g := NewGame(bag)
	g.field = field
	g.gameOver = BlockedByField(field, g.current, g.position)
	return g
}

// Accessors for rendering and inspection.
func (g Game) Field() Field        { return g.field }
func (g Game) Cell(x, y int) Block { return g.field.Cell(x, y) }
func (g Game) Current() Tetromino  { return g.current }
func (g Game) Next() Tetromino     { return g.next }
func (g Game) Position() Position  { return g.position }
func (g Game) Score() Score        { return g.score }
func (g Game) Level() int          { return g.score.Level() }
func (g Game) IsGameOver() bool    { return g.gameOver }

// Pieces returns how many pieces have entered play, including the current one.
func (g Game) Pieces() int { return g.pieces }

// CurrentCoordinates returns the field coordinates of the active piece.
func (g Game) CurrentCoordinates() []Position {
	return BlockCoordinates(g.current, g.position)
}

// Composite returns the field with the active piece drawn in, for rendering.
func (g Game) Composite() Field {
	return g.field.Lock(g.current, g.position)
}

// DropPosition returns where the active piece would come to rest if dropped
// straight down. Renderers draw it as a ghost piece.
func (g Game) DropPosition() Position {
	p := g.position
	for g.fits(g.current, Position{X: p.X, Y: p.Y + 1}) {
		p.Y++
	}
	return p
}

// fits reports whether t can occupy p. A piece without blocks, as in the zero
// Game, never fits: it cannot move and locks on the next drop.
func (g Game) fits(t Tetromino, p Position) bool {
	return len(BlockCoordinates(t, p)) > 0 && !IsBlocked(g.field, t, p)
}

// Left shifts the active piece one column left if it fits.
func (g Game) Left() Game {
	return g.shift(-1)
}

// Right shifts the active piece one column right if it fits.
func (g Game) Right() Game {
	return g.shift(1)
}

func (g Game) shift(dx int) Game {
	if g.gameOver {
		return g
	}
	p := Position{X: g.position.X + dx, Y: g.position.Y}
	if !g.fits(g.current, p) {
		return g
	}
	g.position = p
	return g
}

// RotateCW rotates the active piece clockwise in place. There are no wall
// kicks: a rotation that does not fit is rejected.
func (g Game) RotateCW() Game {
	if g.gameOver {
		return g
	}
	return g.rotate(g.current.RotateCW())
}

// RotateCCW rotates the active piece counter-clockwise in place.
func (g Game) RotateCCW() Game {
	if g.gameOver {
		return g
	}
	return g.rotate(g.current.RotateCCW())
}

func (g Game) rotate(t Tetromino) Game {
	if !g.fits(t, g.position) {
		return g
	}
	g.current = t
	return g
}

// descend moves the active piece down one row. The boolean is false, and the
// game unchanged, when the piece is resting on something.
func (g Game) descend() (Game, bool) {
	p := Position{X: g.position.X, Y: g.position.Y + 1}
	if !g.fits(g.current, p) {
		return g, false
	}
	g.position = p
	return g, true
}

// SoftDrop moves the piece down one row for one point. A piece that cannot
// move locks without scoring.
func (g Game) SoftDrop() Game {
	if g.gameOver {
		return g
	}
	descended, ok := g.descend()
	if !ok {
		return g.lockAndAdvance()
	}
	descended.score = descended.score.AddPoints(1)
	return descended
}

// HardDrop drops the piece as far as it goes, scoring two points per row,
// and locks it.
func (g Game) HardDrop() Game {
	if g.gameOver {
		return g
	}
	rows := 0
	for {
		descended, ok := g.descend()
		if !ok {
			break
		}
		g = descended
		rows++
	}
	g.score = g.score.AddPoints(2 * rows)
	return g.lockAndAdvance()
}

// Tick advances the game by one turn: the piece falls one row, or locks if it
// cannot. Ticks never score drop points.
func (g Game) Tick() Game {
	if g.gameOver {
		return g
	}
	descended, ok := g.descend()
	if ok {
		return descended
	}
	return g.lockAndAdvance()
}

// NextTurn is an alias for Tick.
func (g Game) NextTurn() Game {
	return g.Tick()
}

// lockAndAdvance ends the current turn: the piece is locked, full lines are
// cleared and scored, and two fresh pieces are dealt. The game is lost if the
// piece already overlaps locked blocks or the new piece cannot spawn; either
// way the losing game is returned as it stood before the lock.
func (g Game) lockAndAdvance() Game {
	if BlockedByField(g.field, g.current, g.position) {
		g.gameOver = true
		return g
	}

	field, cleared := g.field.Lock(g.current, g.position).ClearLines()
	current, bag := g.bag.Draw()
	if BlockedByField(field, current, StartPosition) {
		g.gameOver = true
		return g
	}
	next, bag := bag.Draw()

	g.field = field
	g.score = g.score.ClearedLines(cleared)
	g.current = current
	g.next = next
	g.bag = bag
	g.position = StartPosition
	g.pieces++
	return g
}
