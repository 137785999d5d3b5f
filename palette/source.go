package palette

import (
	"math/rand/v2"
	"sync/atomic"
)

// RandomSource yields uniformly distributed values in [0,1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// IDSource hands out entry IDs. IDs must not repeat for the lifetime of
// the source.
type IDSource interface {
	NextID() int64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// lastID backs the default IDSource so that IDs are unique across every
// Generator in the process.
var lastID atomic.Int64

type processIDs struct{}

func (processIDs) NextID() int64 { return lastID.Add(1) }

// Sequence is an IDSource counting up from a fixed start. It is safe for
// concurrent use.
type Sequence struct {
	n atomic.Int64
}

// NewSequence returns a Sequence whose first ID is start.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.n.Store(start - 1)
	return s
}

func (s *Sequence) NextID() int64 { return s.n.Add(1) }

// Seeded returns a deterministic RandomSource. It is not safe for
// concurrent use.
func Seeded(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
