package engine

import (
	"math"
	"math/cmplx"
)

// SMatrix holds the four independent Mueller-matrix elements of an isotropic
// spherical scatterer in planar layout, one value per sampled scattering
// angle:
//
//	S11 = (|S₂|² + |S₁|²)/2
//	S12 = (|S₂|² − |S₁|²)/2
//	S33 = Re(S₁* · S₂)
//	S43 = Im(S₁* · S₂)
//
// The remaining twelve entries of the 4×4 matrix follow from symmetry.
type SMatrix struct {
	S11, S12, S33, S43 []float64
}

// NewSMatrix allocates an SMatrix with n angular rows.
func NewSMatrix(n int) *SMatrix {
	return &SMatrix{
		S11: make([]float64, n),
		S12: make([]float64, n),
		S33: make([]float64, n),
		S43: make([]float64, n),
	}
}

// Len returns the number of angular rows.
func (s *SMatrix) Len() int { return len(s.S11) }

// setRow writes one angular row from the scattering amplitudes S₁, S₂.
func (s *SMatrix) setRow(k int, s1, s2 complex128) {
	a1 := cmplx.Abs(s1)
	a2 := cmplx.Abs(s2)
	cross := cmplx.Conj(s1) * s2
	s.S11[k] = 0.5*a2*a2 + 0.5*a1*a1
	s.S12[k] = 0.5*a2*a2 - 0.5*a1*a1
	s.S33[k] = real(cross)
	s.S43[k] = imag(cross)
}

// fillFromAmplitudes converts accumulated amplitude arrays into Mueller rows.
func (s *SMatrix) fillFromAmplitudes(s1, s2 []complex128) {
	for k := range s.S11 {
		s.setRow(k, s1[k], s2[k])
	}
}

// zero clears all rows so a wrapper can accumulate into a reused buffer.
func (s *SMatrix) zero() {
	clear(s.S11)
	clear(s.S12)
	clear(s.S33)
	clear(s.S43)
}

// asymmetry estimates the asymmetry parameter ⟨cos θ⟩ by trapezoidal
// integration of μ·S11 against S11 over the angular grid, treating the first
// sample as an endpoint with companion μ = 1.
func asymmetry(mu, s11 []float64) float64 {
	var num, den float64
	for i := range mu {
		if i == 0 {
			w := math.Abs(mu[0] - 1)
			num += mu[0] * s11[0] * w
			den += s11[0] * w
			continue
		}
		w := math.Abs(mu[i]-mu[i-1]) / 2
		num += mu[i] * (s11[i] + s11[i-1]) * w
		den += (s11[i] + s11[i-1]) * w
	}
	return num / den
}
