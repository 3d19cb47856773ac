package randsource

import (
	"math/rand"
	"time"

	"github.com/aalvaropc/gendata/internal/ports"
)

// Source draws indices from a seeded math/rand generator.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Source seeded with seed. A zero seed is replaced by a
// time-based one; Seed reports the value actually used.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

var _ ports.IndexSource = (*Source)(nil)

func (s *Source) Seed() int64 { return s.seed }

// Draw returns a uniform value in [0, n]. Negative n yields 0.
func (s *Source) Draw(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n + 1)
}
