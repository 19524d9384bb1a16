package factorization

import (
	"math/big"
	"testing"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/GriffinCanCode/primecore/internal/numtheory/primality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mersenne(p uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), p)
	return m.Sub(m, big.NewInt(1))
}

func ints(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func repeat(v *big.Int, k int) []*big.Int {
	out := make([]*big.Int, k)
	for i := range out {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

// assertFactorization checks the two invariants of every result.
func assertFactorization(t *testing.T, n *big.Int, factors []*big.Int) {
	t.Helper()
	require.NotEmpty(t, factors)
	assert.Equal(t, 0, Product(factors).Cmp(n), "product of %v != %s", factors, n)
	for i, f := range factors {
		assert.True(t, primality.Default().Test(f), "factor %s of %s is not prime", f, n)
		if i > 0 {
			assert.True(t, factors[i-1].Cmp(f) <= 0, "factors of %s not ascending", n)
		}
	}
}

func TestPrimeFactorsSmall(t *testing.T) {
	tests := []struct {
		n    int64
		want []*big.Int
	}{
		{2, ints(2)},
		{12, ints(2, 2, 3)},
		{97, ints(97)},
		{360, ints(2, 2, 2, 3, 3, 5)},
		{1024, repeat(big.NewInt(2), 10)},
		{999999999989, ints(999999999989)},
		{600851475143, ints(71, 839, 1471, 6857)},
		{1000000016000000063, ints(1000000007, 1000000009)},
	}

	for _, tt := range tests {
		got, err := PrimeFactors(big.NewInt(tt.n))
		require.NoError(t, err, "n=%d", tt.n)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestPrimeFactorsRoundTrip(t *testing.T) {
	for n := int64(2); n <= 5000; n++ {
		factors, err := PrimeFactors(big.NewInt(n))
		require.NoError(t, err)
		assertFactorization(t, big.NewInt(n), factors)
	}
}

func TestPrimeFactorsLargeSemiprimes(t *testing.T) {
	tests := []struct {
		name string
		p, q *big.Int
	}{
		{"M31 x M107", mersenne(31), mersenne(107)},
		{"1e9+7 x M89", big.NewInt(1000000007), mersenne(89)},
		{"M31 x M61", mersenne(31), mersenne(61)},
		{"word sized", big.NewInt(4294967279), big.NewInt(4294967291)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := new(big.Int).Mul(tt.p, tt.q)
			factors, st, err := Default().Factorize(n)
			require.NoError(t, err)
			assertFactorization(t, n, factors)
			require.Len(t, factors, 2)
			assert.Equal(t, 0, factors[0].Cmp(tt.p))
			assert.Equal(t, 0, factors[1].Cmp(tt.q))
			assert.GreaterOrEqual(t, st.RhoSplits, 1)
			assert.Positive(t, st.Iterations)
		})
	}
}

func TestPrimeFactorsFortyDigits(t *testing.T) {
	n := new(big.Int).Mul(mersenne(31), mersenne(107))
	require.Len(t, n.String(), 42)

	factors, err := PrimeFactors(n)
	require.NoError(t, err)
	assert.Equal(t, []*big.Int{mersenne(31), mersenne(107)}, factors)
}

func TestPrimeFactorsPrimePowers(t *testing.T) {
	p := big.NewInt(1000003)
	cube := new(big.Int).Exp(p, big.NewInt(3), nil)

	factors, st, err := Default().Factorize(cube)
	require.NoError(t, err)
	assert.Equal(t, repeat(p, 3), factors)
	assert.Equal(t, 1, st.PowerSplits)

	// (pq)^2: the root is composite and is split again with multiplicity 2
	pq := new(big.Int).Mul(p, big.NewInt(1000033))
	square := new(big.Int).Mul(pq, pq)
	factors, err = PrimeFactors(square)
	require.NoError(t, err)
	assert.Equal(t, []*big.Int{p, p, big.NewInt(1000033), big.NewInt(1000033)}, factors)

	factors, err = PrimeFactors(new(big.Int).Exp(big.NewInt(3), big.NewInt(40), nil))
	require.NoError(t, err)
	assert.Equal(t, repeat(big.NewInt(3), 40), factors)

	m61 := mersenne(61)
	factors, err = PrimeFactors(new(big.Int).Exp(m61, big.NewInt(5), nil))
	require.NoError(t, err)
	assert.Equal(t, repeat(m61, 5), factors)
}

func TestPrimeFactorsPrimeInput(t *testing.T) {
	for _, p := range []*big.Int{mersenne(61), mersenne(127), big.NewInt(1000003)} {
		factors, err := PrimeFactors(p)
		require.NoError(t, err)
		assert.Equal(t, []*big.Int{p}, factors)
	}
}

func TestPrimeFactorsErrors(t *testing.T) {
	_, err := PrimeFactors(nil)
	assert.ErrorIs(t, err, numerr.ErrInvalidInput)

	for _, n := range []int64{1, 0, -4} {
		_, err := PrimeFactors(big.NewInt(n))
		assert.ErrorIs(t, err, numerr.ErrDomain, "n=%d", n)
	}
}

func TestPrimeFactorsDoesNotMutateInput(t *testing.T) {
	n := big.NewInt(360)
	_, err := PrimeFactors(n)
	require.NoError(t, err)
	assert.Equal(t, int64(360), n.Int64())
}

func TestEngineSmallTrialBound(t *testing.T) {
	e := NewEngine(WithTrialBound(10), WithSeed(7))
	assert.Equal(t, uint64(10), e.TrialBound())

	n := new(big.Int).Mul(big.NewInt(2*3*5*7*11*13*17*19*23), big.NewInt(1000003*1000003))
	factors, err := e.PrimeFactors(n)
	require.NoError(t, err)
	assertFactorization(t, n, factors)

	want, err := PrimeFactors(n)
	require.NoError(t, err)
	assert.Equal(t, want, factors)
}

func TestEngineWithoutTrialTable(t *testing.T) {
	e := NewEngine(WithTrialBound(0))
	retries := 0
	for n := int64(2); n <= 500; n++ {
		factors, st, err := e.Factorize(big.NewInt(n))
		require.NoError(t, err)
		assertFactorization(t, big.NewInt(n), factors)
		retries += st.RhoRetries
	}
	// small composites make rho collapse onto n itself, forcing restarts
	assert.Positive(t, retries)
}

func TestEngineSeedsAgree(t *testing.T) {
	n := new(big.Int).Mul(mersenne(31), mersenne(61))
	a, err := NewEngine(WithSeed(1)).PrimeFactors(n)
	require.NoError(t, err)
	b, err := NewEngine(WithSeed(99)).PrimeFactors(n)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEngineIterationLimit(t *testing.T) {
	e := NewEngine(WithIterationLimit(64))
	n := new(big.Int).Mul(mersenne(31), mersenne(107))

	_, st, err := e.Factorize(n)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)
	assert.Equal(t, numerr.KindOutOfRange, numerr.Kind(err))
	assert.Greater(t, st.Iterations, uint64(64))
}

func TestSieveOddPrimes(t *testing.T) {
	assert.Nil(t, sieveOddPrimes(2))
	assert.Equal(t, []uint32{3, 5, 7}, sieveOddPrimes(10))
	assert.Equal(t, []uint32{3, 5, 7, 11, 13}, sieveOddPrimes(13))
	assert.Len(t, sieveOddPrimes(DefaultTrialBound), 78497) // pi(10^6) - 1
}
