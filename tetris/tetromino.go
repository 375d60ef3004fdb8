package tetris

// Center is a tetromino's rotation centre in grid coordinates. O uses a
// half-integer centre, every other canonical shape an integral one.
type Center struct {
	X, Y float64
}

// Tetromino is a shape in a particular rotation. Grid rows run top to bottom
// and columns left to right. Tetromino values are never modified in place:
// rotations build a fresh grid.
type Tetromino struct {
	Kind   Block
	Center Center
	Grid   [][]Block
}

// The canonical tetrominoes. These values must not be modified.
var (
	TetrominoI = Tetromino{
		Kind:   BlockI,
		Center: Center{1, 0},
		Grid: [][]Block{
			{BlockI, BlockI, BlockI, BlockI},
		},
	}
	TetrominoJ = Tetromino{
		Kind:   BlockJ,
		Center: Center{1, 0},
		Grid: [][]Block{
			{BlockJ, BlockJ, BlockJ},
			{Empty, Empty, BlockJ},
		},
	}
	TetrominoL = Tetromino{
		Kind:   BlockL,
		Center: Center{1, 0},
		Grid: [][]Block{
			{BlockL, BlockL, BlockL},
			{BlockL, Empty, Empty},
		},
	}
	TetrominoO = Tetromino{
		Kind:   BlockO,
		Center: Center{0.5, 0.5},
		Grid: [][]Block{
			{BlockO, BlockO},
			{BlockO, BlockO},
		},
	}
	TetrominoS = Tetromino{
		Kind:   BlockS,
		Center: Center{1, 0},
		Grid: [][]Block{
			{Empty, BlockS, BlockS},
			{BlockS, BlockS, Empty},
		},
	}
	TetrominoT = Tetromino{
		Kind:   BlockT,
		Center: Center{1, 0},
		Grid: [][]Block{
			{BlockT, BlockT, BlockT},
			{Empty, BlockT, Empty},
		},
	}
	TetrominoZ = Tetromino{
		Kind:   BlockZ,
		Center: Center{1, 0},
		Grid: [][]Block{
			{BlockZ, BlockZ, Empty},
			{Empty, BlockZ, BlockZ},
		},
	}
)

// Canonical returns the spawn orientation of the given kind.
func Canonical(kind Block) (Tetromino, bool) {
	switch kind {
	case BlockI:
		return TetrominoI, true
	case BlockJ:
		return TetrominoJ, true
	case BlockL:
		return TetrominoL, true
	case BlockO:
		return TetrominoO, true
	case BlockS:
		return TetrominoS, true
	case BlockT:
		return TetrominoT, true
	case BlockZ:
		return TetrominoZ, true
	}
	return Tetromino{}, false
}

// Rows returns the grid height.
func (t Tetromino) Rows() int {
	return len(t.Grid)
}

// Cols returns the grid width.
func (t Tetromino) Cols() int {
	if len(t.Grid) == 0 {
		return 0
	}
	return len(t.Grid[0])
}

// RotateCW turns the tetromino a quarter turn clockwise: the rows are
// reversed and the grid transposed, and the centre follows the same mapping.
func (t Tetromino) RotateCW() Tetromino {
	return Tetromino{
		Kind:   t.Kind,
		Center: Center{X: float64(t.Rows()-1) - t.Center.Y, Y: t.Center.X},
		Grid:   transpose(reverseRows(t.Grid)),
	}
}

// RotateCCW turns the tetromino a quarter turn counter-clockwise.
func (t Tetromino) RotateCCW() Tetromino {
	return Tetromino{
		Kind:   t.Kind,
		Center: Center{X: t.Center.Y, Y: float64(t.Cols()-1) - t.Center.X},
		Grid:   reverseRows(transpose(t.Grid)),
	}
}

// reverseRows returns a new outer slice with the rows in reverse order. Rows
// are shared with the input, which is safe because grids are never written.
func reverseRows(grid [][]Block) [][]Block {
	out := make([][]Block, len(grid))
	for i, row := range grid {
		out[len(grid)-1-i] = row
	}
	return out
}

func transpose(grid [][]Block) [][]Block {
	if len(grid) == 0 {
		return nil
	}
	rows, cols := len(grid), len(grid[0])
	out := make([][]Block, cols)
	for c := range cols {
		out[c] = make([]Block, rows)
		for r := range rows {
			if c < len(grid[r]) {
				out[c][r] = grid[r][c]
			}
		}
	}
	return out
}
