package special

import (
	"math/big"
	"testing"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad literal %q", s)
	return n
}

func TestGeneratePrimeList(t *testing.T) {
	got, err := GeneratePrimeList(10)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5, 7}, got)

	got, err = GeneratePrimeList(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, got)

	got, err = GeneratePrimeList(10000)
	require.NoError(t, err)
	assert.Len(t, got, 1229)
	assert.Equal(t, int64(9973), got[len(got)-1])

	for _, limit := range []int64{1, 0, -3} {
		_, err = GeneratePrimeList(limit)
		assert.ErrorIs(t, err, numerr.ErrInvalidInput, "limit=%d", limit)
	}
}

func TestListLimit(t *testing.T) {
	c := New(WithMaxListLimit(100))
	assert.Equal(t, int64(100), c.MaxListLimit())

	_, err := c.GeneratePrimeList(100)
	assert.NoError(t, err)

	_, err = c.GeneratePrimeList(101)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)

	_, err = c.GenerateTwinPrimeList(1 << 40)
	assert.ErrorIs(t, err, numerr.ErrOutOfRange)
}

func TestIsEmirp(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{13, true},
		{17, true},
		{97, true},
		{11, false}, // palindrome
		{2, false},
		{23, false}, // 32 is composite
		{15, false},
		{1009, true}, // 9001 is prime
	}
	for _, tt := range tests {
		got, err := IsEmirp(big.NewInt(tt.n))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}

	_, err := IsEmirp(big.NewInt(1))
	assert.ErrorIs(t, err, numerr.ErrDomain)
	_, err = IsEmirp(nil)
	assert.ErrorIs(t, err, numerr.ErrInvalidInput)
}

func TestGenerateEmirpList(t *testing.T) {
	got, err := GenerateEmirpList(20)
	require.NoError(t, err)
	assert.Equal(t, []int64{13, 17}, got)

	got, err = GenerateEmirpList(100)
	require.NoError(t, err)
	assert.Equal(t, []int64{13, 17, 31, 37, 71, 73, 79, 97}, got)

	got, err = GenerateEmirpList(3000)
	require.NoError(t, err)
	for _, n := range got {
		ok, err := IsEmirp(big.NewInt(n))
		require.NoError(t, err)
		assert.True(t, ok, "n=%d", n)
	}
}

func TestIsTwinPrime(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{5, true},
		{3, true},
		{2, false},
		{9, false},
		{23, false},
		{29, true},
		{0, false},
	}
	for _, tt := range tests {
		got, err := IsTwinPrime(big.NewInt(tt.n))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}

	_, err := IsTwinPrime(big.NewInt(-5))
	assert.ErrorIs(t, err, numerr.ErrDomain)
}

func TestGenerateTwinPrimeList(t *testing.T) {
	got, err := GenerateTwinPrimeList(20)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5, 7, 11, 13, 17, 19}, got)

	got, err = GenerateTwinPrimeList(2)
	require.NoError(t, err)
	assert.Empty(t, got)

	list, err := GenerateTwinPrimeList(2000)
	require.NoError(t, err)
	in := make(map[int64]bool, len(list))
	for _, n := range list {
		in[n] = true
	}
	for n := int64(2); n <= 2000; n++ {
		ok, err := IsTwinPrime(big.NewInt(n))
		require.NoError(t, err)
		assert.Equal(t, ok, in[n], "n=%d", n)
	}
}

func TestGreatestCommonPrimeDivisor(t *testing.T) {
	got, err := GreatestCommonPrimeDivisor(big.NewInt(12), big.NewInt(18))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Int64())

	got, err = GreatestCommonPrimeDivisor(big.NewInt(97), big.NewInt(97*5))
	require.NoError(t, err)
	assert.Equal(t, int64(97), got.Int64())

	m61 := mustBig(t, "2305843009213693951")
	a := new(big.Int).Mul(m61, big.NewInt(2147483647))
	b := new(big.Int).Mul(m61, big.NewInt(7))
	got, err = GreatestCommonPrimeDivisor(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(m61))

	_, err = GreatestCommonPrimeDivisor(big.NewInt(35), big.NewInt(64))
	assert.ErrorIs(t, err, ErrNoCommonPrime)
	assert.ErrorIs(t, err, numerr.ErrDomain)

	_, err = GreatestCommonPrimeDivisor(big.NewInt(1), big.NewInt(5))
	assert.ErrorIs(t, err, numerr.ErrDomain)
	_, err = GreatestCommonPrimeDivisor(big.NewInt(6), nil)
	assert.ErrorIs(t, err, numerr.ErrInvalidInput)
}

func TestDigits(t *testing.T) {
	r, err := ReverseDigits(big.NewInt(1200))
	require.NoError(t, err)
	assert.Equal(t, int64(21), r.Int64())

	r, err = ReverseDigits(mustBig(t, "123456789012345678901234567890"))
	require.NoError(t, err)
	assert.Equal(t, "98765432109876543210987654321", r.String())

	_, err = ReverseDigits(big.NewInt(-12))
	assert.ErrorIs(t, err, numerr.ErrDomain)

	s, err := SumOfDigits(big.NewInt(-123))
	require.NoError(t, err)
	assert.Equal(t, int64(6), s.Int64())
}
