// Package tetris implements the rules of a single-player Tetris game as a pure,
// deterministic state machine. Every operation takes a Game value and returns
// its successor; nothing in this package performs I/O, logs, or keeps global
// mutable state. Randomness enters only through the Source carried by a Bag.
package tetris

// Block identifies the contents of a single cell: one of the seven tetromino
// kinds, or Empty.
type Block uint8

const (
	Empty Block = iota
	BlockI
	BlockJ
	BlockL
	BlockO
	BlockS
	BlockT
	BlockZ
)

// Kinds lists the seven non-empty block kinds in catalog order.
var Kinds = [...]Block{BlockI, BlockJ, BlockL, BlockO, BlockS, BlockT, BlockZ}

const blockLetters = "-IJLOSTZ"

// String returns the kind's letter, or "-" for Empty.
func (b Block) String() string {
	if int(b) >= len(blockLetters) {
		return "?"
	}
	return blockLetters[b : b+1]
}

// IsEmpty reports whether the cell holds no block.
func (b Block) IsEmpty() bool {
	return b == Empty
}

// ParseBlock maps a cell character back to a Block. '-', '.' and ' ' all denote
// an empty cell.
func ParseBlock(r rune) (Block, bool) {
	switch r {
	case '-', '.', ' ':
		return Empty, true
	case 'I':
		return BlockI, true
	case 'J':
		return BlockJ, true
	case 'L':
		return BlockL, true
	case 'O':
		return BlockO, true
	case 'S':
		return BlockS, true
	case 'T':
		return BlockT, true
	case 'Z':
		return BlockZ, true
	}
	return Empty, false
}
