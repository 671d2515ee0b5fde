package miescatter

import (
	"errors"
	"fmt"

	"github.com/modulim/miescatter/internal/engine"
)

// ErrInvalidSpec indicates invalid scattering parameters.
var ErrInvalidSpec = errors.New("invalid scattering spec")

// Table is an angular scattering table: the four independent Mueller-matrix
// elements sampled at each scattering-angle cosine, plus the scalar
// scattering parameters. A Monte Carlo transport engine samples deflection
// angles from S11 and rotates Stokes vectors with the full rows.
type Table struct {
	// Mu holds the scattering-angle cosines the rows are sampled at, in
	// the caller's order.
	Mu []float64

	// S11, S12, S33 and S43 are the Mueller-matrix elements per angle.
	S11, S12, S33, S43 []float64

	// Qsca is the scattering efficiency (scattering cross-section over
	// the geometric cross-section). Zero for models that do not define
	// one (Whittle–Matérn).
	Qsca float64

	// G is the asymmetry parameter ⟨cos θ⟩ of the phase function.
	G float64
}

// newTable allocates a table over a copy of the given cosine grid.
func newTable(mu []float64) *Table {
	return &Table{
		Mu:  append([]float64(nil), mu...),
		S11: make([]float64, len(mu)),
		S12: make([]float64, len(mu)),
		S33: make([]float64, len(mu)),
		S43: make([]float64, len(mu)),
	}
}

// smatrix exposes the table rows as the engine's planar buffer type.
func (t *Table) smatrix() *engine.SMatrix {
	return &engine.SMatrix{S11: t.S11, S12: t.S12, S33: t.S33, S43: t.S43}
}

// Len returns the number of angular rows.
func (t *Table) Len() int { return len(t.Mu) }

// SphereSpec describes a single homogeneous sphere relative to its host
// medium.
type SphereSpec struct {
	// SizeParameter is the dimensionless 2π·a·n_med/λ, in (0, 20000].
	SizeParameter float64

	// RefractiveIndex is n_sphere/n_med. Both parts must be
	// non-negative; absorption carries a positive imaginary part.
	// Re == 0 designates a perfect conductor.
	RefractiveIndex complex128
}

// Validate checks the sphere parameters.
func (s *SphereSpec) Validate() error {
	if s.SizeParameter <= 0 {
		return fmt.Errorf("%w: sphere size must be positive", ErrInvalidSpec)
	}
	if s.SizeParameter > MaxSizeParameter {
		return fmt.Errorf("%w: spheres with x>%g are not validated", ErrInvalidSpec, float64(MaxSizeParameter))
	}
	if real(s.RefractiveIndex) < 0 || imag(s.RefractiveIndex) < 0 {
		return fmt.Errorf("%w: refractive index parts must be non-negative", ErrInvalidSpec)
	}
	return nil
}

// PolydisperseSpec describes a Gaussian distribution of sphere radii.
// MeanRadius and Wavelength share one length unit.
type PolydisperseSpec struct {
	// MeanRadius is the mean sphere radius.
	MeanRadius float64

	// CV is the coefficient of variation σ/mean of the radius
	// distribution, in (0, 1/3); the sampled interval spans ±3σ and must
	// stay positive.
	CV float64

	// MediumIndex is the real refractive index of the host medium.
	MediumIndex float64

	// Wavelength is the vacuum wavelength.
	Wavelength float64

	// RefractiveIndex is the sphere index relative to the medium, as in
	// [SphereSpec].
	RefractiveIndex complex128
}

// Validate checks the distribution parameters.
func (s *PolydisperseSpec) Validate() error {
	if s.MeanRadius <= 0 {
		return fmt.Errorf("%w: mean radius must be positive", ErrInvalidSpec)
	}
	if s.CV <= 0 || s.CV >= maxCV {
		return fmt.Errorf("%w: CV must be in (0, 1/3)", ErrInvalidSpec)
	}
	if s.MediumIndex <= 0 {
		return fmt.Errorf("%w: medium index must be positive", ErrInvalidSpec)
	}
	if s.Wavelength <= 0 {
		return fmt.Errorf("%w: wavelength must be positive", ErrInvalidSpec)
	}
	if real(s.RefractiveIndex) < 0 || imag(s.RefractiveIndex) < 0 {
		return fmt.Errorf("%w: refractive index parts must be non-negative", ErrInvalidSpec)
	}
	return nil
}

// WhittleMaternSpec describes a continuous random medium with a
// Whittle–Matérn refractive-index correlation. CorrelationLength and
// Wavelength share one length unit.
type WhittleMaternSpec struct {
	// CorrelationLength is the correlation length l_c of the medium.
	CorrelationLength float64

	// ShapeFactor is the spectral-density exponent, often written D.
	ShapeFactor float64

	// Wavelength is the vacuum wavelength.
	Wavelength float64
}

// Validate checks the medium parameters.
func (s *WhittleMaternSpec) Validate() error {
	if s.CorrelationLength <= 0 {
		return fmt.Errorf("%w: correlation length must be positive", ErrInvalidSpec)
	}
	if s.ShapeFactor <= 0 {
		return fmt.Errorf("%w: shape factor must be positive", ErrInvalidSpec)
	}
	if s.Wavelength <= 0 {
		return fmt.Errorf("%w: wavelength must be positive", ErrInvalidSpec)
	}
	return nil
}

// validateGrid checks the scattering-angle cosines.
func validateGrid(mu []float64) error {
	if len(mu) == 0 {
		return fmt.Errorf("%w: empty angle grid", ErrInvalidSpec)
	}
	for k, v := range mu {
		if !(v >= -1 && v <= 1) {
			return fmt.Errorf("%w: mu[%d]=%g is not a cosine", ErrInvalidSpec, k, v)
		}
	}
	return nil
}

// Compute builds the Lorenz–Mie scattering table for a single sphere over
// the given scattering-angle cosines. Spheres below the small-particle
// threshold are handled by the closed-form Rayleigh-limit expansion; the
// caller never needs to choose.
func Compute(spec *SphereSpec, mu []float64) (*Table, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: spec is nil", ErrInvalidSpec)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := validateGrid(mu); err != nil {
		return nil, err
	}

	t := newTable(mu)
	qsca, g, err := engine.Mie(spec.SizeParameter, spec.RefractiveIndex, t.Mu, t.smatrix())
	if err != nil {
		return nil, err
	}
	t.Qsca, t.G = qsca, g
	return t, nil
}

// ComputePolydisperse builds the scattering table of a Gaussian distribution
// of sphere radii, averaging Mueller rows over the distribution. Qsca is the
// distribution average weighted by the Gaussian density and the geometric
// cross-section; G is re-integrated from the averaged S11.
func ComputePolydisperse(spec *PolydisperseSpec, mu []float64) (*Table, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: spec is nil", ErrInvalidSpec)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := validateGrid(mu); err != nil {
		return nil, err
	}

	t := newTable(mu)
	qsca, g, err := engine.Polydisperse(spec.MeanRadius, spec.CV, spec.MediumIndex,
		spec.Wavelength, spec.RefractiveIndex, t.Mu, t.smatrix())
	if err != nil {
		return nil, err
	}
	t.Qsca, t.G = qsca, g
	return t, nil
}

// ComputeWhittleMatern builds the angular scattering table of a continuous
// random medium with a Whittle–Matérn spectral density. The model defines no
// scattering efficiency; Qsca is left zero.
func ComputeWhittleMatern(spec *WhittleMaternSpec, mu []float64) (*Table, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: spec is nil", ErrInvalidSpec)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := validateGrid(mu); err != nil {
		return nil, err
	}

	t := newTable(mu)
	t.G = engine.WhittleMatern(spec.CorrelationLength, spec.ShapeFactor, spec.Wavelength,
		t.Mu, t.smatrix())
	return t, nil
}
