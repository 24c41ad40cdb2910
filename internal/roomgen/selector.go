package roomgen

// SelectWeighted picks one candidate from the pool with probability
// proportional to its weight. If the total weight is not positive, it falls
// back to a uniform pick. An empty pool returns ok=false; callers skip.
func SelectWeighted[T any](pool []T, weight func(T) float64, s *Stream) (T, bool) {
	var zero T
	if len(pool) == 0 {
		return zero, false
	}

	total := 0.0
	for _, candidate := range pool {
		total += weight(candidate)
	}
	if total <= 0 {
		return pool[s.IntRange(0, len(pool)-1)], true
	}

	r := s.Float64() * total
	cumulative := 0.0
	for _, candidate := range pool {
		cumulative += weight(candidate)
		if r <= cumulative {
			return candidate, true
		}
	}
	return pool[len(pool)-1], true
}
