// Package testutil provides reusable test helper functions for the numerics tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10
	TransformTolerance = 1e-9
	LooseTolerance     = 1e-6
)

// AssertSliceInDelta verifies that two slices have equal length and that every
// element pair differs by at most tolerance.
func AssertSliceInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"element %d: expected %v, got %v", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertComplexSliceInDelta verifies that two complex slices have equal length
// and that |expected[i]-actual[i]| <= tolerance for every index.
func AssertComplexSliceInDelta(t *testing.T, expected, actual []complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if d := cmplx.Abs(expected[i] - actual[i]); d > tolerance {
			return assert.Fail(t, "complex values differ",
				"element %d: expected %v, got %v (|diff|=%e > %e)", i, expected[i], actual[i], d, tolerance)
		}
	}
	return true
}

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

// Polynomial evaluates c[0] + c[1]x + c[2]x² + ... in monomial form.
// Tests use it as an independent reference for interpolation results.
func Polynomial(c []float64, x float64) float64 {
	var y float64
	for i := len(c) - 1; i >= 0; i-- {
		y = y*x + c[i]
	}
	return y
}

// NaiveInverseDFT computes the unnormalized inverse DFT
// v[k] = Σ c[j]·e^{+2πijk/n} directly in O(n²).
func NaiveInverseDFT(c []complex128) []complex128 {
	n := len(c)
	v := make([]complex128, n)
	for k := range n {
		var sum complex128
		for j := range n {
			angle := 2 * math.Pi * float64(j*k) / float64(n)
			sum += c[j] * cmplx.Rect(1, angle)
		}
		v[k] = sum
	}
	return v
}
