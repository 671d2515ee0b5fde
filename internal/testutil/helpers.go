// Package testutil provides reusable assertion helpers for scattering-table
// tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
		relError, tolerance, expected, actual)
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

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %g is outside range [%g, %g]", value, minVal, maxVal)
	}
	return true
}

// AssertMuellerPhysical verifies the physicality constraints every scattering
// Mueller row must satisfy: S11 ≥ 0, |S12| ≤ S11 and S33² + S43² ≤ S11².
// The last bound holds with equality for a single sphere, where
// S33 + i·S43 = S₁*·S₂ and S11² − S12² = |S₁|²·|S₂|².
func AssertMuellerPhysical(t *testing.T, s11, s12, s33, s43 []float64, msgAndArgs ...any) bool {
	t.Helper()
	const slack = 1e-12
	for k := range s11 {
		if s11[k] < 0 {
			return assert.Fail(t, "negative S11", "S11[%d] = %g", k, s11[k])
		}
		if math.Abs(s12[k]) > s11[k]*(1+slack)+slack {
			return assert.Fail(t, "S12 exceeds S11",
				"|S12[%d]| = %g > S11 = %g", k, math.Abs(s12[k]), s11[k])
		}
		lhs := s33[k]*s33[k] + s43[k]*s43[k]
		rhs := s11[k] * s11[k]
		if lhs > rhs*(1+slack)+slack {
			return assert.Fail(t, "S33²+S43² exceeds S11²",
				"row %d: %g > %g", k, lhs, rhs)
		}
	}
	return true
}
