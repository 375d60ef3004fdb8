package tetris

// LinesPerLevel is the number of cleared lines that advances the level.
const LinesPerLevel = 10

// Score tracks points, the running line total, and whether the most recent
// non-empty clear was a Tetris.
type Score struct {
	Points             int
	LinesCleared       int
	LastClearWasTetris bool
}

// NewScore returns the score of a fresh game.
func NewScore() Score {
	return Score{}
}

// Level starts at 1 and advances every LinesPerLevel lines.
func (s Score) Level() int {
	return s.LinesCleared/LinesPerLevel + 1
}

// clearPoints is the base award per level for 0..4 cleared lines.
var clearPoints = [...]int{0, 100, 300, 500, 800}

const backToBackTetrisPoints = 1200

// ClearedLines applies a lock that removed n lines. The award is scaled by the
// level in effect before the lines are added. A Tetris directly following a
// Tetris scores the back-to-back rate; locks that clear nothing leave the chain
// intact. Counts above four score as a Tetris.
func (s Score) ClearedLines(n int) Score {
	if n <= 0 {
		return s
	}
	n = min(n, 4)

	level := s.Level()
	var base int
	switch {
	case n == 4 && s.LastClearWasTetris:
		base = backToBackTetrisPoints
	case n < len(clearPoints):
		base = clearPoints[n]
	}

	s.Points += base * level
	s.LinesCleared += n
	s.LastClearWasTetris = n == 4
	return s
}

// AddPoints adds drop points. Negative amounts are ignored.
func (s Score) AddPoints(points int) Score {
	if points > 0 {
		s.Points += points
	}
	return s
}
