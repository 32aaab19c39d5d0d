package keygen

// Pseudo-prime pair and exponent generation in the style of FIPS 186-3
// sections B.3.1 and B.3.3, driven by a seeded general-purpose PRNG
// instead of the standard's hash-based derivation.

import (
	"fmt"
	"math/big"

	"github.com/magooey2/Generate-Prime-Pair/internal/randeng"
)

// Number of rounds for the probabilistic primality test. A composite
// survives each round with probability at most 1/4.
const PrimalityRounds = 50

// Generator produces primes and exponents from a single shared randomness
// engine.
type Generator struct {
	rng *randeng.Engine
}

// New returns a generator drawing from rng.
func New(rng *randeng.Engine) *Generator {
	return &Generator{rng: rng}
}

// KeyPair is the full result of one generation pass.
type KeyPair struct {
	P, Q *big.Int // probable primes, nlen/2 bits each
	E    *big.Int // public exponent
	D    *big.Int // private exponent, e^-1 mod (p-1)(q-1)

	// DUndersized notes that d fell below 2^(nlen/2). Advisory only;
	// the pair is still returned.
	DUndersized bool
}

// GenerateKeyPair runs the whole pipeline for a modulus of nlen bits:
// the first prime, then the second at a guaranteed distance from the
// first, then the private exponent.
func (g *Generator) GenerateKeyPair(nlen int, e *big.Int) (*KeyPair, error) {
	half := nlen / 2

	p, err := g.GeneratePrime(half, e, nil)
	if err != nil {
		return nil, err
	}

	q, err := g.GeneratePrime(half, e, p)
	if err != nil {
		return nil, err
	}

	d, undersized, err := PrivateExponent(p, q, e, half)
	if err != nil {
		return nil, err
	}

	return &KeyPair{P: p, Q: q, E: e, D: d, DUndersized: undersized}, nil
}

// PrivateExponent derives d = e^-1 mod (p-1)(q-1). The totient is computed
// as p*q - p - q + 1, saving the two intermediate predecessors. halfLen is
// the per-prime bit length; a d below 2^halfLen is flagged undersized
// rather than rejected.
func PrivateExponent(p, q, e *big.Int, halfLen int) (*big.Int, bool, error) {
	phi := new(big.Int).Mul(p, q)
	phi.Sub(phi, p)
	phi.Sub(phi, q)
	phi.Add(phi, big.NewInt(1))

	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return nil, false, fmt.Errorf("exponent not relatively prime to modulus")
	}

	floor := new(big.Int).Lsh(big.NewInt(1), uint(halfLen))
	return d, d.Cmp(floor) < 0, nil
}
