package miescatter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompute_WaterDroplet tests the published reference values for a
// water-like droplet with x = 1.
func TestCompute_WaterDroplet(t *testing.T) {
	spec := &SphereSpec{SizeParameter: 1.0, RefractiveIndex: complex(1.33, 0)}
	table, err := Compute(spec, CosineGrid(NAngles))
	require.NoError(t, err)

	assert.InDelta(t, 0.09304, table.Qsca, 0.002)
	assert.InDelta(t, 0.4533, table.G, 0.01)
	assert.Equal(t, NAngles, table.Len())
}

// TestCompute_Validation sweeps the rejected parameter combinations.
func TestCompute_Validation(t *testing.T) {
	mu := CosineGrid(8)

	tests := []struct {
		name string
		spec *SphereSpec
		mu   []float64
	}{
		{"NilSpec", nil, mu},
		{"ZeroSize", &SphereSpec{SizeParameter: 0, RefractiveIndex: 1.5}, mu},
		{"NegativeSize", &SphereSpec{SizeParameter: -1, RefractiveIndex: 1.5}, mu},
		{"OversizedSphere", &SphereSpec{SizeParameter: 20001, RefractiveIndex: 1.5}, mu},
		{"NegativeRealIndex", &SphereSpec{SizeParameter: 1, RefractiveIndex: complex(-1.5, 0)}, mu},
		{"NegativeImagIndex", &SphereSpec{SizeParameter: 1, RefractiveIndex: complex(1.5, -0.1)}, mu},
		{"EmptyGrid", &SphereSpec{SizeParameter: 1, RefractiveIndex: 1.5}, nil},
		{"CosineOutOfRange", &SphereSpec{SizeParameter: 1, RefractiveIndex: 1.5}, []float64{0.5, 1.5}},
		{"CosineNaN", &SphereSpec{SizeParameter: 1, RefractiveIndex: 1.5}, []float64{math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.spec, tt.mu)
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

// TestCompute_GridIsCopied tests that mutating the caller's grid after the
// call does not alias the table.
func TestCompute_GridIsCopied(t *testing.T) {
	mu := CosineGrid(16)
	spec := &SphereSpec{SizeParameter: 2.0, RefractiveIndex: complex(1.5, 0)}

	table, err := Compute(spec, mu)
	require.NoError(t, err)

	mu[0] = -1
	assert.Equal(t, 1.0, table.Mu[0])
}

// TestComputePolydisperse_Validation covers the distribution-specific checks.
func TestComputePolydisperse_Validation(t *testing.T) {
	mu := CosineGrid(8)
	base := PolydisperseSpec{
		MeanRadius:      0.5,
		CV:              0.1,
		MediumIndex:     1.33,
		Wavelength:      0.633,
		RefractiveIndex: complex(1.19, 0),
	}

	tests := []struct {
		name   string
		mutate func(*PolydisperseSpec)
	}{
		{"ZeroRadius", func(s *PolydisperseSpec) { s.MeanRadius = 0 }},
		{"ZeroCV", func(s *PolydisperseSpec) { s.CV = 0 }},
		{"WideCV", func(s *PolydisperseSpec) { s.CV = 0.34 }},
		{"ZeroMedium", func(s *PolydisperseSpec) { s.MediumIndex = 0 }},
		{"ZeroWavelength", func(s *PolydisperseSpec) { s.Wavelength = 0 }},
		{"NegativeIndex", func(s *PolydisperseSpec) { s.RefractiveIndex = complex(-1, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base
			tt.mutate(&spec)
			_, err := ComputePolydisperse(&spec, mu)
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

// TestComputePolydisperse_Table tests the happy path end to end.
func TestComputePolydisperse_Table(t *testing.T) {
	spec := &PolydisperseSpec{
		MeanRadius:      0.5,
		CV:              0.1,
		MediumIndex:     1.33,
		Wavelength:      0.633,
		RefractiveIndex: complex(1.19, 0),
	}

	table, err := ComputePolydisperse(spec, CosineGrid(256))
	require.NoError(t, err)

	assert.Greater(t, table.Qsca, 0.0)
	assert.Greater(t, table.G, 0.0)
	for k := range table.S11 {
		assert.GreaterOrEqual(t, table.S11[k], 0.0, "S11[%d]", k)
	}
}

// TestComputeWhittleMatern_Table tests the continuous-medium path and that
// Qsca stays unset.
func TestComputeWhittleMatern_Table(t *testing.T) {
	spec := &WhittleMaternSpec{CorrelationLength: 1.0, ShapeFactor: 3.0, Wavelength: 0.633}

	table, err := ComputeWhittleMatern(spec, CosineGrid(NAngles))
	require.NoError(t, err)

	assert.Zero(t, table.Qsca)
	assert.Greater(t, table.G, 0.0)
	assert.InDelta(t, 2.0, table.S11[0], 1e-12)
	for k := range table.S43 {
		assert.Zero(t, table.S43[k], "S43[%d]", k)
	}
}

// TestComputeWhittleMatern_Validation covers the medium-specific checks.
func TestComputeWhittleMatern_Validation(t *testing.T) {
	mu := CosineGrid(8)

	tests := []struct {
		name string
		spec WhittleMaternSpec
	}{
		{"ZeroCorrelation", WhittleMaternSpec{CorrelationLength: 0, ShapeFactor: 3, Wavelength: 0.633}},
		{"ZeroShape", WhittleMaternSpec{CorrelationLength: 1, ShapeFactor: 0, Wavelength: 0.633}},
		{"ZeroWavelength", WhittleMaternSpec{CorrelationLength: 1, ShapeFactor: 3, Wavelength: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeWhittleMatern(&tt.spec, mu)
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}
