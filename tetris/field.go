package tetris

import (
	"errors"
	"fmt"
	"strings"
)

const (
	FieldWidth         = 10
	FieldHeight        = 22
	FieldVisibleHeight = 20

	// BufferRows is the number of rows above the visible playfield.
	BufferRows = FieldHeight - FieldVisibleHeight
)

// ErrInvalidField is returned by ParseField for malformed input.
var ErrInvalidField = errors.New("tetris: invalid field")

// Line is one row of the field.
type Line [FieldWidth]Block

// Field holds the locked blocks, row 0 at the top. The first BufferRows rows
// are not displayed. Being an array, a Field is copied on assignment, so its
// dimensions are fixed and no two games share cells.
type Field [FieldHeight]Line

// NewField returns an empty field.
func NewField() Field {
	return Field{}
}

// Contains reports whether (x, y) lies inside the field.
func (f Field) Contains(x, y int) bool {
	return x >= 0 && x < FieldWidth && y >= 0 && y < FieldHeight
}

// Cell returns the block at (x, y). Coordinates outside the field read as Empty.
func (f Field) Cell(x, y int) Block {
	if !f.Contains(x, y) {
		return Empty
	}
	return f[y][x]
}

// VisibleRows returns the rows below the buffer zone.
func (f Field) VisibleRows() []Line {
	return f[BufferRows:]
}

func (l Line) full() bool {
	for _, b := range l {
		if b == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifting the rows above it down, and
// reports how many were removed. Row order is otherwise preserved.
func (f Field) ClearLines() (Field, int) {
	var out Field
	dst := FieldHeight - 1
	for y := FieldHeight - 1; y >= 0; y-- {
		if f[y].full() {
			continue
		}
		out[dst] = f[y]
		dst--
	}
	return out, dst + 1
}

// Lock writes the tetromino's blocks into a copy of the field. Blocks that
// fall outside the field, such as those still in the space above row 0, are
// skipped.
func (f Field) Lock(t Tetromino, p Position) Field {
	for _, c := range BlockCoordinates(t, p) {
		if !f.Contains(c.X, c.Y) {
			continue
		}
		f[c.Y][c.X] = t.Kind
	}
	return f
}

// String renders the field one row per line, using "-" for empty cells.
func (f Field) String() string {
	var sb strings.Builder
	sb.Grow(FieldHeight * (FieldWidth + 1))
	for y, line := range f {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, b := range line {
			sb.WriteString(b.String())
		}
	}
	return sb.String()
}

// ParseField reads a field in the notation produced by String. Blank lines are
// ignored. Fewer than FieldHeight rows may be given; they fill the bottom of
// the field.
func ParseField(s string) (Field, error) {
	var rows []string
	for line := range strings.SplitSeq(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) > FieldHeight {
		return Field{}, fmt.Errorf("%w: %d rows, at most %d allowed", ErrInvalidField, len(rows), FieldHeight)
	}

	var f Field
	offset := FieldHeight - len(rows)
	for i, row := range rows {
		cells := []rune(row)
		if len(cells) != FieldWidth {
			return Field{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidField, i, len(cells), FieldWidth)
		}
		for x, r := range cells {
			b, ok := ParseBlock(r)
			if !ok {
				return Field{}, fmt.Errorf("%w: row %d column %d: unknown cell %q", ErrInvalidField, i, x, r)
			}
			f[offset+i][x] = b
		}
	}
	return f, nil
}

// MustParseField is like ParseField but panics on error. It is intended for
// fixtures and tests.
func MustParseField(s string) Field {
	f, err := ParseField(s)
	if err != nil {
		panic(err)
	}
	return f
}
