package keygen

import (
	"fmt"
	"math/big"
)

const (
	// Bit width of a randomly sampled public exponent.
	exponentBits = 256

	// Smallest acceptable random exponent, 2^16.
	minRandomExponent = 65536

	// Cap on the rejection-sampling loop. Parity alone accepts half of
	// all draws, so hitting this means the stream is broken.
	maxExponentAttempts = 4096
)

// RandomExponent rejection-samples a public exponent: 256 random bits,
// accepted once the draw is odd and within [65536, 2^256]. A fixed,
// caller-chosen exponent bypasses this entirely and is taken as-is.
func (g *Generator) RandomExponent() (*big.Int, error) {
	lower := big.NewInt(minRandomExponent)
	upper := new(big.Int).Lsh(big.NewInt(1), exponentBits)

	for i := 0; i < maxExponentAttempts; i++ {
		e := g.rng.UniformBits(exponentBits)
		if e.Bit(0) == 0 {
			continue
		}
		if e.Cmp(lower) < 0 || e.Cmp(upper) > 0 {
			continue
		}
		return e, nil
	}

	return nil, fmt.Errorf("no acceptable exponent after %d samples", maxExponentAttempts)
}
