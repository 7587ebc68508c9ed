package engine

import "math/rand/v2"

// RandomSource isolates spawn randomness so tests can pin it
type RandomSource interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// NewRandom returns a seeded PCG source
func NewRandom(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceRandom replays fixed values; each method cycles its own list
// Empty lists yield zero
type SequenceRandom struct {
	Floats []float64
	Ints   []int
	fi, ii int
}

func (s *SequenceRandom) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

func (s *SequenceRandom) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	return v % n
}
