package engine

import "math"

// WhittleMatern computes the angular scattering table of a continuous random
// medium whose refractive-index correlation follows the Whittle–Matérn
// family with correlation length lc and shape exponent shape (often written
// D). Rows are evaluated at the caller's scattering-angle cosines; with
// k·lc = 2π·lc/λ and sin²(θ/2) = (1 − μ)/2 the spectral density is
//
//	Φ(μ) = (1 + 2·(k·lc)²·(1 − μ))^(−shape/2)
//
// and the Mueller rows are those of a dipole-like scatterer modulated by Φ:
// S11 = (1 + μ²)·Φ, S12 = (μ² − 1)·Φ, S33 = 2μ·Φ, S43 = 0.
//
// No scattering efficiency is defined by this model; only the asymmetry
// parameter is returned, integrated from S11 as in [Polydisperse].
func WhittleMatern(lc, shape, wavelength float64, mu []float64, sm *SMatrix) float64 {
	klc := 2 * math.Pi * lc / wavelength
	klc2 := klc * klc

	for i, muk := range mu {
		density := math.Pow(1+2*klc2*(1-muk), -shape/2)
		sm.S11[i] = (1 + muk*muk) * density
		sm.S12[i] = (muk*muk - 1) * density
		sm.S33[i] = 2 * muk * density
		sm.S43[i] = 0
	}

	return asymmetry(mu, sm.S11)
}
