package miescatter

import (
	"math"
)

// CosineGrid returns n scattering-angle cosines for equally spaced angles
// from 0 to π, descending from 1 toward −1. This is the grid a transport
// engine's angle lookup table conventionally uses.
func CosineGrid(n int) []float64 {
	mu := make([]float64, n)
	for k := range mu {
		mu[k] = math.Cos(float64(k) * math.Pi / float64(n))
	}
	return mu
}

// SizeParameter converts a sphere radius to the dimensionless Mie size
// parameter 2π·r·n_med/λ. Radius and wavelength share one length unit.
func SizeParameter(radius, wavelength, mediumIndex float64) float64 {
	return 2 * math.Pi * radius * mediumIndex / wavelength
}

// SphereSpecFromRadius builds a [SphereSpec] from physical quantities:
// sphere radius, vacuum wavelength, host medium index and the sphere's own
// refractive index. The relative index passed to the solver is
// sphereIndex/mediumIndex.
func SphereSpecFromRadius(radius, wavelength, mediumIndex float64, sphereIndex complex128) *SphereSpec {
	return &SphereSpec{
		SizeParameter:   SizeParameter(radius, wavelength, mediumIndex),
		RefractiveIndex: sphereIndex / complex(mediumIndex, 0),
	}
}
