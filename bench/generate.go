package bench

import (
	"math/rand/v2"
)

// Sample is the read-only input shared by both loops.
type Sample []int32

// Generate returns n values drawn uniformly from [low, high]. The same arguments always
// produce the same sample.
func Generate(n int, low, high int32, seed uint64) (Sample, error) {
	if err := validateShape(n, low, high); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	span := uint64(int64(high)-int64(low)) + 1 // at most 2^32
	sample := make(Sample, n)
	for i := range sample {
		sample[i] = int32(int64(low) + int64(rng.Uint64N(span)))
	}
	return sample, nil
}
