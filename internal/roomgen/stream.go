package roomgen

import "math/rand"

// Stream is a seeded random stream. Every subsystem re-seeds its own stream
// from the generation seed, so floor, wall and ceiling layouts are each
// independently reproducible.
type Stream struct {
	rng *rand.Rand
}

func NewStream(seed int64) *Stream {
	return &Stream{rng: rand.New(rand.NewSource(seed))}
}

// Float64 draws uniformly from [0, 1).
func (s *Stream) Float64() float64 {
	return s.rng.Float64()
}

// IntRange draws uniformly from the inclusive range [min, max].
func (s *Stream) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Shuffle runs a Fisher-Yates shuffle over n elements.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntRange(0, i)
		swap(i, j)
	}
}
