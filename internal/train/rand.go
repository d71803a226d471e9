package train

import "math/rand"

// newRand returns a seeded source, or nil (global source) for seed 0.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}
