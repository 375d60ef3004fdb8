package tetris

import "math"

// Position is where a tetromino's centre lies in field coordinates.
type Position struct {
	X, Y int
}

// StartPosition is where every new piece spawns.
var StartPosition = Position{X: FieldWidth/2 - 1, Y: 0}

// BlockCoordinates projects each block of t, centred at p, onto field
// coordinates. The centre is floored, so O's half-integer centre and I's
// second cell act as the pivot.
func BlockCoordinates(t Tetromino, p Position) []Position {
	cx := int(math.Floor(t.Center.X))
	cy := int(math.Floor(t.Center.Y))

	coords := make([]Position, 0, 4)
	for row, line := range t.Grid {
		for col, b := range line {
			if b == Empty {
				continue
			}
			coords = append(coords, Position{
				X: p.X + col - cx,
				Y: p.Y + row - cy,
			})
		}
	}
	return coords
}

// BlockedBelow reports whether any block is past the bottom of the field.
func BlockedBelow(t Tetromino, p Position) bool {
	for _, c := range BlockCoordinates(t, p) {
		if c.Y >= FieldHeight {
			return true
		}
	}
	return false
}

// BlockedLeft reports whether any block is past the left wall.
func BlockedLeft(t Tetromino, p Position) bool {
	for _, c := range BlockCoordinates(t, p) {
		if c.X < 0 {
			return true
		}
	}
	return false
}

// BlockedRight reports whether any block is past the right wall.
func BlockedRight(t Tetromino, p Position) bool {
	for _, c := range BlockCoordinates(t, p) {
		if c.X >= FieldWidth {
			return true
		}
	}
	return false
}

// BlockedByField reports whether any in-field block overlaps a locked cell.
// Blocks above row 0 never collide.
func BlockedByField(f Field, t Tetromino, p Position) bool {
	for _, c := range BlockCoordinates(t, p) {
		if f.Contains(c.X, c.Y) && f[c.Y][c.X] != Empty {
			return true
		}
	}
	return false
}

// IsBlocked reports whether t cannot occupy p on f.
func IsBlocked(f Field, t Tetromino, p Position) bool {
	for _, c := range BlockCoordinates(t, p) {
		if c.Y >= FieldHeight || c.X < 0 || c.X >= FieldWidth {
			return true
		}
		if c.Y >= 0 && f[c.Y][c.X] != Empty {
			return true
		}
	}
	return false
}
