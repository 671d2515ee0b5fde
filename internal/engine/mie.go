// Package engine implements the angular-distribution kernels behind the
// public API: the exact Lorenz–Mie series, the analytic small-particle
// expansion, the Gaussian polydisperse wrapper and the Whittle–Matérn
// continuous-medium model. All kernels are pure functions over caller-owned
// buffers.
package engine

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/modulim/miescatter/internal/mathutil"
)

// Errors reported by the kernels. All are fatal: a kernel either completes
// or returns one of these with the output buffers unspecified.
var (
	// ErrSphereSize indicates a non-positive size parameter.
	ErrSphereSize = errors.New("mie: sphere size must be positive")

	// ErrSphereTooLarge indicates a size parameter beyond the validated range.
	ErrSphereTooLarge = errors.New("mie: spheres with x>20000 are not validated")
)

// Nstop returns Wiscombe's truncation order for the Mie series at size
// parameter x. The same truncation is used regardless of refractive index.
func Nstop(x float64) int {
	return int(math.Floor(x + wiscombeCubeRootCoeff*math.Cbrt(x) + wiscombeOffset))
}

// Mie computes the Lorenz–Mie scattering table for a homogeneous sphere of
// size parameter x and complex relative refractive index m, sampled at the
// scattering-angle cosines mu. Mueller rows are written into sm (which must
// have Len() == len(mu)); the scattering efficiency and asymmetry parameter
// are returned.
//
// Re(m) == 0 designates a perfect conductor. Spheres below the
// small-particle threshold are delegated to [SmallMie].
//
// Three coefficient branches (perfect conductor, real dielectric, absorbing
// dielectric) exist for numerical conditioning; collapsing them into one
// complex expression loses digits at common inputs.
func Mie(x float64, m complex128, mu []float64, sm *SMatrix) (qsca, g float64, err error) {
	if x <= 0 {
		return 0, 0, fmt.Errorf("%w (x=%g)", ErrSphereSize, x)
	}
	if x > maxSizeParameter {
		return 0, 0, fmt.Errorf("%w (x=%g)", ErrSphereTooLarge, x)
	}
	if (real(m) == 0 && x < smallParticleLimit) ||
		(real(m) > 0 && cmplx.Abs(m)*x < smallParticleLimit) {
		qsca, g = SmallMie(x, m, mu, sm)
		return qsca, g, nil
	}

	nstop := Nstop(x)

	s1 := make([]complex128, len(mu))
	s2 := make([]complex128, len(mu))
	pi0 := make([]float64, len(mu))
	pi1 := make([]float64, len(mu))
	tau := make([]float64, len(mu))
	for k := range pi1 {
		pi1[k] = 1
	}

	// Logarithmic derivatives of ψₙ at mx, by whichever recurrence
	// direction is stable for this absorption level.
	var d []complex128
	if real(m) > 0 {
		z := complex(x, 0) * m
		d = make([]complex128, nstop+1)
		envelope := (upwardEnvelopeA*real(m)-upwardEnvelopeB)*real(m) + upwardEnvelopeC
		if math.Abs(imag(m)*x) < envelope {
			mathutil.LogDerivUp(z, nstop, d)
		} else if err := mathutil.LogDerivDown(z, nstop, d); err != nil {
			return 0, 0, err
		}
	}

	// Riccati–Bessel seeds: ψ real, ξ = ψ − i·χ carried as one complex
	// value (stored here with +i·χ convention folded into the arithmetic).
	psi0 := math.Sin(x)
	psi1 := psi0/x - math.Cos(x)
	xi0 := complex(psi0, math.Cos(x))
	xi1 := complex(psi1, math.Cos(x)/x+math.Sin(x))

	var an, bn, anm1, bnm1 complex128
	for n := 1; n <= nstop; n++ {
		fn := float64(n)

		switch {
		case real(m) == 0:
			// Perfect conductor.
			an = complex(fn*psi1/x-psi0, 0) / (complex(fn/x, 0)*xi1 - xi0)
			bn = complex(psi1, 0) / xi1
		case imag(m) == 0:
			// Real dielectric: z1 stays real for precision.
			z1 := real(d[n])/real(m) + fn/x
			an = complex(z1*psi1-psi0, 0) / (complex(z1, 0)*xi1 - xi0)
			z1 = real(d[n])*real(m) + fn/x
			bn = complex(z1*psi1-psi0, 0) / (complex(z1, 0)*xi1 - xi0)
		default:
			// Absorbing dielectric: the ψ's are real, so the numerator
			// mixes real and complex factors explicitly.
			z1 := d[n]/m + complex(fn/x, 0)
			an = complex(real(z1)*psi1-psi0, imag(z1)*psi1) / (z1*xi1 - xi0)
			z1 = d[n]*m + complex(fn/x, 0)
			bn = complex(real(z1)*psi1-psi0, imag(z1)*psi1) / (z1*xi1 - xi0)
		}

		// Accumulate the amplitude functions S₁, S₂ at every angle.
		factor := (2*fn + 1) / (fn * (fn + 1))
		for k := range mu {
			tau[k] = fn*mu[k]*pi1[k] - (fn+1)*pi0[k]
			alpha := factor * pi1[k]
			beta := factor * tau[k]
			s1[k] += complex(alpha*real(an)+beta*real(bn), alpha*imag(an)+beta*imag(bn))
			s2[k] += complex(alpha*real(bn)+beta*real(an), alpha*imag(bn)+beta*imag(an))
		}

		// Advance the angular functions: πₙ₊₁ = ((2n+1)·μ·πₙ − (n+1)·πₙ₋₁)/n.
		for k := range mu {
			prev := pi1[k]
			pi1[k] = ((2*fn+1)*mu[k]*pi1[k] - (fn+1)*pi0[k]) / fn
			pi0[k] = prev
		}

		// Scalar series: one term couples consecutive orders, one couples
		// aₙ and bₙ of the same order.
		g += (fn - 1/fn) * (real(anm1)*real(an) + imag(anm1)*imag(an) +
			real(bnm1)*real(bn) + imag(bnm1)*imag(bn))
		g += (2*fn + 1) / (fn * (fn + 1)) *
			(real(an)*real(bn) + imag(an)*imag(bn))
		qsca += (2*fn + 1) * (real(an)*real(an) + imag(an)*imag(an) +
			real(bn)*real(bn) + imag(bn)*imag(bn))

		// Riccati–Bessel step: ξₙ₊₁ = ((2n+1)/x)·ξₙ − ξₙ₋₁.
		xi := complex((2*fn+1)/x, 0)*xi1 - xi0
		xi0 = xi1
		xi1 = xi
		psi0 = psi1
		psi1 = real(xi1)

		anm1 = an
		bnm1 = bn
	}

	qsca *= 2 / (x * x)
	g *= 4 / (qsca * x * x)

	sm.fillFromAmplitudes(s1, s2)
	return qsca, g, nil
}
