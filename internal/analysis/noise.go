package analysis

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source supplies uniformly distributed values in [0, 1). *rand.Rand
// satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// seedStream hands out per-call seeds. It is the only state an Engine
// shares across calls; each call then draws from its own generator.
type seedStream struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSeedStream(seed uint64) *seedStream {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &seedStream{rng: rand.New(rand.NewPCG(seed, ^seed))}
}

func (s *seedStream) next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64()
}
