package tetris

import "math/rand/v2"

// Source is a functional random source: IntN returns a value in [0, n) along
// with the source to use for the next draw. The receiver is left untouched, so
// drawing twice from the same Source yields the same value.
type Source interface {
	IntN(n int) (int, Source)
}

// PCGSource is a Source backed by a PCG generator held by value.
type PCGSource struct {
	pcg rand.PCG
}

// NewPCGSource seeds a PCGSource.
func NewPCGSource(seed1, seed2 uint64) PCGSource {
	return PCGSource{pcg: *rand.NewPCG(seed1, seed2)}
}

// IntN implements Source.
func (s PCGSource) IntN(n int) (int, Source) {
	pcg := s.pcg
	v := rand.New(&pcg).IntN(n)
	return v, PCGSource{pcg: pcg}
}

// Bag deals tetrominoes by the 7-bag rule: all seven kinds are dealt in a
// random order before any repeats. A Bag is a value; Draw returns the piece and
// the bag to draw from next.
type Bag struct {
	residual []Block
	src      Source
}

// NewBag returns a full bag drawing from src. A nil src deals every cycle in
// catalog order, which is handy for scripted games.
func NewBag(src Source) Bag {
	return Bag{residual: Kinds[:], src: src}
}

// NewSeededBag returns a full bag with a deterministic PCG source derived from seed.
func NewSeededBag(seed uint64) Bag {
	return NewBag(NewPCGSource(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomBag returns a full bag seeded from the runtime's random generator.
func NewRandomBag() Bag {
	return NewBag(NewPCGSource(rand.Uint64(), rand.Uint64()))
}

// Residual returns the kinds still to be dealt in the current cycle. An empty
// result means the next Draw starts a new cycle.
func (b Bag) Residual() []Block {
	out := make([]Block, len(b.residual))
	copy(out, b.residual)
	return out
}

// Draw removes one kind uniformly at random from the residual set, refilling
// it first when the cycle is exhausted.
func (b Bag) Draw() (Tetromino, Bag) {
	residual := b.residual
	if len(residual) == 0 {
		residual = Kinds[:]
	}

	var idx int
	var next Source
	if b.src != nil {
		idx, next = b.src.IntN(len(residual))
	}
	if idx < 0 || idx >= len(residual) {
		idx = 0
	}

	remaining := make([]Block, 0, len(residual)-1)
	remaining = append(remaining, residual[:idx]...)
	remaining = append(remaining, residual[idx+1:]...)

	piece, _ := Canonical(residual[idx])
	return piece, Bag{residual: remaining, src: next}
}
