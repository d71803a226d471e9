package nn

import "math/rand"

// Randn draws n values from the standard normal distribution N(0, 1).
//
// rng may be nil, in which case the global math/rand source is used.
func Randn(n int, rng *rand.Rand) []float64 {
	out := make([]float64, n)
	for i := range out {
		if rng != nil {
			out[i] = rng.NormFloat64()
			continue
		}
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		out[i] = rand.NormFloat64()
	}
	return out
}
