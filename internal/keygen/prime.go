package keygen

import (
	"fmt"
	"math/big"
)

// GeneratePrime produces a probable prime of exactly bits bits whose
// predecessor is coprime to e. When avoid is non-nil the candidate must
// also differ from avoid by more than 2^(bits-100) (2^0 for short primes),
// the minimum separation FIPS 186-3 asks of the second prime.
//
// Candidates are rejection-sampled, bounded by 5*bits attempts. Distance
// rejections resample without consuming an attempt; only the range,
// coprimality and primality checks count against the budget.
func (g *Generator) GeneratePrime(bits int, e *big.Int, avoid *big.Int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("prime bit length %d too small", bits)
	}
	if e == nil || e.Sign() <= 0 {
		return nil, fmt.Errorf("public exponent must be positive")
	}

	one := big.NewInt(1)
	topBit := new(big.Int).Lsh(one, uint(bits-1))
	squareFloor := new(big.Int).Lsh(one, uint(2*bits-1))

	var threshold *big.Int
	if avoid != nil {
		shift := 0
		if bits > 100 {
			shift = bits - 100
		}
		threshold = new(big.Int).Lsh(one, uint(shift))
	}

	maxAttempts := 5 * bits
	for attempts := 0; attempts < maxAttempts; {
		// Sample bits-1 random bits and force the top bit, so the
		// candidate has exactly the requested length.
		n := g.rng.UniformBits(bits - 1)
		n.Add(n, topBit)
		if n.Bit(0) == 0 {
			n.Add(n, one)
		}

		if avoid != nil {
			diff := new(big.Int).Sub(n, avoid)
			if diff.Abs(diff).Cmp(threshold) <= 0 {
				continue
			}
		}
		attempts++

		// n^2 >= 2^(2*bits-1) holds by construction; checked anyway.
		square := new(big.Int).Mul(n, n)
		if square.Cmp(squareFloor) < 0 {
			continue
		}

		pred := new(big.Int).Sub(n, one)
		if new(big.Int).GCD(nil, nil, pred, e).Cmp(one) != 0 {
			continue
		}

		if n.ProbablyPrime(PrimalityRounds) {
			return n, nil
		}
	}

	return nil, fmt.Errorf("cannot construct prime: %d attempts exhausted at %d bits", maxAttempts, bits)
}
