// Package mathutil provides the special-function machinery behind the Mie
// series: the logarithmic derivative Dₙ(z) = ψ'ₙ(z)/ψₙ(z) of the
// Riccati–Bessel function of the first kind, computed by continued fraction
// or by recurrence.
package mathutil

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrNoConvergence is returned when the Lentz continued fraction fails to
// converge within the iteration bound. Inputs that satisfy the kernel
// preconditions converge in well under a hundred iterations, so hitting the
// bound indicates a caller bug rather than a recoverable condition.
var ErrNoConvergence = errors.New("mathutil: continued fraction failed to converge")

// Cot returns the complex cotangent of z.
func Cot(z complex128) complex128 {
	return 1 / cmplx.Tan(z)
}

// LentzDn computes Dₙ(z) for a single order n by evaluating a modified
// Lentz continued fraction seeded at that order.
//
// Two running partial quotients are advanced together with the running
// product of their ratio; the fraction has converged when the ratio's
// magnitude is within tolerance of one. The sign of the 2/z term alternates
// after every step.
//
// Callers guarantee n ≥ 1 and z ≠ 0. The iteration count is bounded; a
// non-converging input returns [ErrNoConvergence].
func LentzDn(z complex128, n int) (complex128, error) {
	zinv := complex(2, 0) / z
	alpha := complex(float64(n)+lentzAlphaOffset, 0) * zinv
	aj := complex(-float64(n)-lentzSeedOffset, 0) * zinv
	alphaJ1 := aj + 1/alpha
	alphaJ2 := aj
	ratio := alphaJ1 / alphaJ2
	runRatio := alpha * ratio

	for range maxLentzIterations {
		aj = zinv - aj
		alphaJ1 = 1/alphaJ1 + aj
		alphaJ2 = 1/alphaJ2 + aj
		ratio = alphaJ1 / alphaJ2
		zinv = -zinv
		runRatio *= ratio

		if math.Abs(cmplx.Abs(ratio)-1) <= lentzConvergenceTol {
			return complex(-float64(n), 0)/z + runRatio, nil
		}
	}

	return 0, ErrNoConvergence
}

// LogDerivUp fills d[0..nstop] with Dₖ(z) by upward recurrence from
// D₀ = cot(z):
//
//	Dₖ = 1/(k/z − Dₖ₋₁) − k/z
//
// The upward direction amplifies rounding error when Im(z) is large; callers
// select it only inside the Wiscombe stability envelope.
func LogDerivUp(z complex128, nstop int, d []complex128) {
	d[0] = Cot(z)
	for k := 1; k <= nstop; k++ {
		kOverZ := complex(float64(k), 0) / z
		d[k] = 1/(kOverZ-d[k-1]) - kOverZ
	}
}

// LogDerivDown fills d[0..nstop] with Dₖ(z) by downward recurrence from a
// Lentz continued-fraction seed at order nstop:
//
//	Dₖ₋₁ = k/z − 1/(Dₖ + k/z)
//
// Numerically stable for all z.
func LogDerivDown(z complex128, nstop int, d []complex128) error {
	seed, err := LentzDn(z, nstop)
	if err != nil {
		return err
	}
	d[nstop] = seed
	for k := nstop; k >= 1; k-- {
		kOverZ := complex(float64(k), 0) / z
		d[k-1] = kOverZ - 1/(d[k]+kOverZ)
	}
	return nil
}
