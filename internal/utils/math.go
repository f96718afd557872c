package utils

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
	"sync"
)

// RandomSource draws uniform integers in [0, n).
// Game components take one of these so tests can supply fixed sequences.
type RandomSource interface {
	IntN(n int) int
}

// RandomSourceFunc adapts a plain function to RandomSource
type RandomSourceFunc func(n int) int

// IntN implements RandomSource
func (f RandomSourceFunc) IntN(n int) int {
	return f(n)
}

// mathSource wraps a math/rand generator; game randomness is not security critical
type mathSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMathSource returns a fast pseudo-random source seeded from crypto/rand
func NewMathSource() RandomSource {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return &mathSource{rng: rand.New(rand.NewChaCha8(seed))} //nolint:gosec // Game logic randomness, not security critical
}

// NewSeededSource returns a deterministic source, useful for simulations and benchmarks
func NewSeededSource(seed uint64) RandomSource {
	return &mathSource{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))} //nolint:gosec // seeded for replays
}

func (s *mathSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// secureSource draws from crypto/rand
type secureSource struct{}

// NewSecureSource returns a RandomSource backed by crypto/rand
func NewSecureSource() RandomSource {
	return secureSource{}
}

func (secureSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS source is broken
		panic("crypto/rand unavailable: " + err.Error())
	}
	return int(v.Int64())
}

// Sequence replays a fixed list of values, each reduced modulo n.
// It wraps around when exhausted.
type Sequence struct {
	mu     sync.Mutex
	values []int
	pos    int
}

// NewSequence creates a replaying RandomSource
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN implements RandomSource
func (s *Sequence) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 || len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(src RandomSource, min, max int) int {
	if min > max {
		return min
	}
	return src.IntN(max-min+1) + min
}
