package keygen

import (
	"math/big"
	"testing"

	"github.com/magooey2/Generate-Prime-Pair/internal/randeng"
	"github.com/stretchr/testify/require"
)

func totient(p, q *big.Int) *big.Int {
	one := big.NewInt(1)
	return new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
}

// TestKeyPairFixedScenario is the reference scenario: seed 12345, e 65537,
// nlen 512. Both primes must come out at exactly 256 bits with all the
// candidate invariants, d must invert e modulo (p-1)(q-1), and a rerun
// must reproduce the pair bit for bit.
func TestKeyPairFixedScenario(t *testing.T) {
	e := big.NewInt(65537)
	one := big.NewInt(1)

	pair, err := New(randeng.New(12345)).GenerateKeyPair(512, e)
	require.NoError(t, err)

	for _, prime := range []*big.Int{pair.P, pair.Q} {
		require.Equal(t, 256, prime.BitLen())
		require.Equal(t, uint(1), prime.Bit(0))
		require.True(t, prime.ProbablyPrime(64))

		pred := new(big.Int).Sub(prime, one)
		require.Zero(t, new(big.Int).GCD(nil, nil, pred, e).Cmp(one))
	}

	threshold := new(big.Int).Lsh(one, 256-100)
	diff := new(big.Int).Sub(pair.P, pair.Q)
	require.Positive(t, diff.Abs(diff).Cmp(threshold))

	prod := new(big.Int).Mul(pair.D, e)
	require.Zero(t, prod.Mod(prod, totient(pair.P, pair.Q)).Cmp(one))

	again, err := New(randeng.New(12345)).GenerateKeyPair(512, e)
	require.NoError(t, err)
	require.Zero(t, pair.P.Cmp(again.P))
	require.Zero(t, pair.Q.Cmp(again.Q))
	require.Zero(t, pair.D.Cmp(again.D))
}

// TestKeyPairRandomExponent2048 runs the full pipeline at a realistic key
// size with a sampled exponent.
func TestKeyPairRandomExponent2048(t *testing.T) {
	rng := randeng.New(98765)
	g := New(rng)
	one := big.NewInt(1)

	e, err := g.RandomExponent()
	require.NoError(t, err)
	require.Equal(t, uint(1), e.Bit(0))
	require.GreaterOrEqual(t, e.Cmp(big.NewInt(65536)), 0)
	require.LessOrEqual(t, e.Cmp(new(big.Int).Lsh(one, 256)), 0)

	pair, err := g.GenerateKeyPair(2048, e)
	require.NoError(t, err)
	require.Equal(t, 1024, pair.P.BitLen())
	require.Equal(t, 1024, pair.Q.BitLen())

	prod := new(big.Int).Mul(pair.D, e)
	require.Zero(t, prod.Mod(prod, totient(pair.P, pair.Q)).Cmp(one))
}

func TestPrivateExponentSmallValues(t *testing.T) {
	// p=5, q=11: phi = 40, and 3*27 = 81 = 2*40 + 1.
	d, undersized, err := PrivateExponent(big.NewInt(5), big.NewInt(11), big.NewInt(3), 4)
	require.NoError(t, err)
	require.EqualValues(t, 27, d.Int64())
	require.False(t, undersized, "27 >= 2^4")

	_, undersized, err = PrivateExponent(big.NewInt(5), big.NewInt(11), big.NewInt(3), 6)
	require.NoError(t, err)
	require.True(t, undersized, "27 < 2^6")
}

// TestPrivateExponentNoInverse is the fatal path: phi(5*7) = 24 shares the
// factor 3 with e, so no d exists.
func TestPrivateExponentNoInverse(t *testing.T) {
	d, _, err := PrivateExponent(big.NewInt(5), big.NewInt(7), big.NewInt(3), 4)
	require.Nil(t, d)
	require.ErrorContains(t, err, "not relatively prime")
}
