package math_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/GriffinCanCode/primecore/internal/providers/math"
	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
	"github.com/GriffinCanCode/primecore/internal/testutil"
)

func newProvider(t *testing.T) *math.Provider {
	t.Helper()
	return math.NewProvider(common.NewMathOps(common.DefaultSettings(), nil, nil))
}

func exec(t *testing.T, p *math.Provider, toolID string, params map[string]interface{}) *types.Result {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	return result
}

func TestPrimeTools(t *testing.T) {
	p := newProvider(t)

	t.Run("isPrime", func(t *testing.T) {
		testutil.AssertDataField(t, exec(t, p, "math.isPrime", map[string]interface{}{"n": 97}), "result", true)
		testutil.AssertDataField(t, exec(t, p, "math.isPrime", map[string]interface{}{"n": "1"}), "result", false)
		testutil.AssertError(t, exec(t, p, "math.isPrime", map[string]interface{}{"n": -5}), numerr.KindDomain)
		testutil.AssertError(t, exec(t, p, "math.isPrime", map[string]interface{}{"n": 12.5}), numerr.KindInvalidInput)
		testutil.AssertError(t, exec(t, p, "math.isPrime", map[string]interface{}{}), numerr.KindInvalidInput)
	})

	t.Run("primeFactors", func(t *testing.T) {
		result := exec(t, p, "math.primeFactors", map[string]interface{}{"n": "360"})
		testutil.AssertDataField(t, result, "result", testutil.Numbers("2", "2", "2", "3", "3", "5"))

		terms, ok := result.Data["terms"].([]map[string]interface{})
		require.True(t, ok)
		require.Len(t, terms, 3)
		assert.Equal(t, json.Number("2"), terms[0]["prime"])
		assert.Equal(t, 3, terms[0]["exponent"])

		testutil.AssertError(t, exec(t, p, "math.primeFactors", map[string]interface{}{"n": "1"}), numerr.KindDomain)
	})

	t.Run("primeList", func(t *testing.T) {
		result := exec(t, p, "math.primeList", map[string]interface{}{"limit": 10})
		testutil.AssertDataField(t, result, "result", []int64{2, 3, 5, 7})
		testutil.AssertDataField(t, result, "count", 4)

		testutil.AssertError(t, exec(t, p, "math.primeList", map[string]interface{}{"limit": 1}), numerr.KindInvalidInput)
		testutil.AssertError(t, exec(t, p, "math.primeList", map[string]interface{}{"limit": 100000000}), numerr.KindOutOfRange)
	})

	t.Run("emirp and twin", func(t *testing.T) {
		testutil.AssertDataField(t, exec(t, p, "math.isEmirp", map[string]interface{}{"n": 13}), "result", true)
		testutil.AssertDataField(t, exec(t, p, "math.isEmirp", map[string]interface{}{"n": 11}), "result", false)
		testutil.AssertDataField(t, exec(t, p, "math.isTwinPrime", map[string]interface{}{"n": 5}), "result", true)
		testutil.AssertDataField(t, exec(t, p, "math.isTwinPrime", map[string]interface{}{"n": 9}), "result", false)
		testutil.AssertDataField(t, exec(t, p, "math.twinPrimeList", map[string]interface{}{"limit": 13}), "result", []int64{3, 5, 7, 11, 13})
	})

	t.Run("greatestCommonPrimeDivisor", func(t *testing.T) {
		testutil.AssertDataField(t, exec(t, p, "math.greatestCommonPrimeDivisor", map[string]interface{}{"a": 12, "b": 18}), "result", json.Number("3"))
		testutil.AssertError(t, exec(t, p, "math.greatestCommonPrimeDivisor", map[string]interface{}{"a": 8, "b": 9}), numerr.KindDomain)
	})

	t.Run("batchIsPrime", func(t *testing.T) {
		result := exec(t, p, "math.batchIsPrime", map[string]interface{}{
			"numbers": []interface{}{2, "4", json.Number("97"), "18446744073709551629"},
		})
		testutil.AssertDataField(t, result, "result", []bool{true, false, true, true})
		testutil.AssertDataField(t, result, "prime_count", 3)

		testutil.AssertError(t, exec(t, p, "math.batchIsPrime", map[string]interface{}{"numbers": []interface{}{}}), numerr.KindInvalidInput)
		testutil.AssertError(t, exec(t, p, "math.batchIsPrime", map[string]interface{}{"numbers": []interface{}{7, -1}}), numerr.KindDomain)
	})
}

func TestDivisorTools(t *testing.T) {
	p := newProvider(t)

	testutil.AssertDataField(t, exec(t, p, "math.sumOfDivisors", map[string]interface{}{"n": 12}), "result", json.Number("16"))
	testutil.AssertDataField(t, exec(t, p, "math.sumOfDivisors", map[string]interface{}{"n": 12, "proper": false}), "result", json.Number("28"))
	testutil.AssertDataField(t, exec(t, p, "math.divisors", map[string]interface{}{"n": 12}), "result", testutil.Numbers("1", "2", "3", "4", "6", "12"))
	testutil.AssertDataField(t, exec(t, p, "math.multiples", map[string]interface{}{"n": 3, "count": 4}), "result", testutil.Numbers("3", "6", "9", "12"))
	testutil.AssertDataField(t, exec(t, p, "math.gcd", map[string]interface{}{"numbers": []interface{}{12, 18, 24}}), "result", json.Number("6"))
	testutil.AssertDataField(t, exec(t, p, "math.lcm", map[string]interface{}{"numbers": []interface{}{4, 6}}), "result", json.Number("12"))
	testutil.AssertDataField(t, exec(t, p, "math.commonDivisors", map[string]interface{}{"numbers": []interface{}{12, 18}}), "result", testutil.Numbers("1", "2", "3", "6"))

	testutil.AssertError(t, exec(t, p, "math.sumOfDivisors", map[string]interface{}{"n": 12, "proper": "maybe"}), numerr.KindInvalidInput)
}

func TestSpecialTools(t *testing.T) {
	p := newProvider(t)

	predicates := []struct {
		tool   string
		params map[string]interface{}
		want   bool
	}{
		{"math.isAbundant", map[string]interface{}{"n": 12}, true},
		{"math.isPerfect", map[string]interface{}{"n": 28}, true},
		{"math.isDeficient", map[string]interface{}{"n": 8}, true},
		{"math.isNarcissistic", map[string]interface{}{"n": 153}, true},
		{"math.isStrong", map[string]interface{}{"n": 145}, true},
		{"math.isHappy", map[string]interface{}{"n": 19}, true},
		{"math.isHappy", map[string]interface{}{"n": 4}, false},
		{"math.areAmicable", map[string]interface{}{"a": 220, "b": 284}, true},
		{"math.areFriendly", map[string]interface{}{"a": 6, "b": 28}, true},
		{"math.isSquare", map[string]interface{}{"n": 49}, true},
		{"math.isSquare", map[string]interface{}{"n": 50}, false},
	}
	for _, tc := range predicates {
		t.Run(tc.tool, func(t *testing.T) {
			testutil.AssertDataField(t, exec(t, p, tc.tool, tc.params), "result", tc.want)
		})
	}

	t.Run("classify", func(t *testing.T) {
		testutil.AssertDataField(t, exec(t, p, "math.classify", map[string]interface{}{"n": 6}), "result", "perfect")
		testutil.AssertDataField(t, exec(t, p, "math.classify", map[string]interface{}{"n": 12}), "result", "abundant")
	})

	t.Run("lists", func(t *testing.T) {
		testutil.AssertDataField(t, exec(t, p, "math.perfectList", map[string]interface{}{"limit": 500}), "result", []int64{6, 28, 496})
		testutil.AssertDataField(t, exec(t, p, "math.squareList", map[string]interface{}{"limit": 9}), "result", []int64{0, 1, 4, 9})
		testutil.AssertDataField(t, exec(t, p, "math.happyList", map[string]interface{}{"limit": 10}), "result", []int64{1, 7, 10})
		testutil.AssertDataField(t, exec(t, p, "math.abundantList", map[string]interface{}{"limit": 20}), "result", []int64{12, 18, 20})
	})
}

func TestStatisticsTools(t *testing.T) {
	p := newProvider(t)

	result := exec(t, p, "math.primeGapStats", map[string]interface{}{"limit": 23})
	testutil.AssertSuccess(t, result)
	assert.EqualValues(t, 9, result.Data["prime_count"])

	testutil.AssertError(t, exec(t, p, "math.primeGapStats", map[string]interface{}{"limit": 2}), numerr.KindInvalidInput)
}

func TestSequenceTools(t *testing.T) {
	p := newProvider(t)

	testutil.AssertDataField(t, exec(t, p, "math.fibonacci", map[string]interface{}{"index": 10}), "result", json.Number("55"))
	testutil.AssertDataField(t, exec(t, p, "math.fibonacciList", map[string]interface{}{"count": 5}), "result", testutil.Numbers("0", "1", "1", "2", "3"))
	testutil.AssertDataField(t, exec(t, p, "math.sequenceRule1", map[string]interface{}{"count": 5}), "result", []int64{1, 4, 6, 9, 12})
	testutil.AssertDataField(t, exec(t, p, "math.sequenceRule2", map[string]interface{}{"base": 3, "count": 3}), "result", testutil.Numbers("0", "3", "6"))
	testutil.AssertDataField(t, exec(t, p, "math.sequenceRule3", map[string]interface{}{"base": 2, "count": 4}), "result", testutil.Numbers("1", "2", "4", "8"))
	testutil.AssertDataField(t, exec(t, p, "math.reverseDigits", map[string]interface{}{"n": 120}), "result", json.Number("21"))
	testutil.AssertDataField(t, exec(t, p, "math.sumOfDigits", map[string]interface{}{"n": -123}), "result", json.Number("6"))

	testutil.AssertError(t, exec(t, p, "math.sequenceRule1", map[string]interface{}{"count": 1}), numerr.KindInvalidInput)

	t.Run("inversions", func(t *testing.T) {
		numbers := []interface{}{json.Number("1"), json.Number("3"), json.Number("2")}
		testutil.AssertDataField(t, exec(t, p, "math.countInversions", map[string]interface{}{"numbers": numbers}), "result", json.Number("1"))
		testutil.AssertDataField(t, exec(t, p, "math.countInversions", map[string]interface{}{"numbers": []interface{}{}}), "result", json.Number("0"))
		testutil.AssertError(t, exec(t, p, "math.countInversions", map[string]interface{}{"numbers": []interface{}{"1", "x"}}), numerr.KindInvalidInput)
	})

	t.Run("digit sum", func(t *testing.T) {
		params := map[string]interface{}{"digitCount": 3, "targetSum": 15}
		testutil.AssertDataField(t, exec(t, p, "math.largestNumberWithDigitSum", params), "result", json.Number("960"))
		params = map[string]interface{}{"digitCount": 2, "targetSum": 19}
		testutil.AssertError(t, exec(t, p, "math.largestNumberWithDigitSum", params), numerr.KindDomain)
		params = map[string]interface{}{"digitCount": -1, "targetSum": 1}
		testutil.AssertError(t, exec(t, p, "math.largestNumberWithDigitSum", params), numerr.KindInvalidInput)
	})
}

func TestProvider(t *testing.T) {
	p := newProvider(t)

	t.Run("unknown tool", func(t *testing.T) {
		testutil.AssertError(t, exec(t, p, "math.nope", map[string]interface{}{}), numerr.KindInvalidInput)
	})

	t.Run("every tool routes", func(t *testing.T) {
		def := p.Definition()
		assert.Equal(t, "math", def.ID)
		assert.Len(t, def.Tools, 40)

		for _, tool := range def.Tools {
			result := exec(t, p, tool.ID, map[string]interface{}{})
			require.NotNil(t, result, tool.ID)
			if result.Error != nil {
				assert.NotContains(t, *result.Error, "unknown tool", tool.ID)
			}
		}
	})
}
