package randeng

import (
	"math/big"
	"math/rand"
)

// Engine is the seeded pseudorandom source shared by every component that
// needs entropy. One engine is created at startup and consumed for the whole
// generation pass; the same seed and the same call sequence reproduce the
// same stream. The stream is not cryptographically strong and is not meant
// to be.
type Engine struct {
	src  *rand.Rand
	seed int64
}

// New creates an engine with a deterministic stream derived from seed.
func New(seed int64) *Engine {
	return &Engine{src: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the engine was created with.
func (e *Engine) Seed() int64 {
	return e.seed
}

// UniformBits returns a value uniformly distributed over [0, 2^bits - 1].
func (e *Engine) UniformBits(bits int) *big.Int {
	if bits <= 0 {
		return new(big.Int)
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return new(big.Int).Rand(e.src, bound)
}
