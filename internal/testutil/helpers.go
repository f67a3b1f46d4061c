// Package testutil provides reusable test helper functions for wavelet grid tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-10
	IntegralTolerance = 1e-6
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertSumsTo verifies that the elements of a slice sum to the expected value.
func AssertSumsTo(t *testing.T, s []float64, expected, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	var sum float64
	for _, v := range s {
		sum += v
	}
	return assert.InDelta(t, expected, sum, tolerance,
		"sum = %f, want %f", sum, expected)
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertUniformSpacing verifies that consecutive elements differ by the same step.
func AssertUniformSpacing(t *testing.T, s []float64, step, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if !assert.InDelta(t, step, s[i]-s[i-1], tolerance,
			"spacing at i=%d: %f, want %f", i, s[i]-s[i-1], step) {
			return false
		}
	}
	return true
}
