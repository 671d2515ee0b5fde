package mathutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyticD1 computes D₁(z) = ψ'₁(z)/ψ₁(z) from the closed forms
// ψ₁ = sin z/z − cos z and ψ'₁ = sin z + (z·cos z − sin z)/z².
func analyticD1(z complex128) complex128 {
	psi1 := cmplx.Sin(z)/z - cmplx.Cos(z)
	dpsi1 := cmplx.Sin(z) + (z*cmplx.Cos(z)-cmplx.Sin(z))/(z*z)
	return dpsi1 / psi1
}

// TestCot tests the complex cotangent against the real identity.
func TestCot(t *testing.T) {
	got := Cot(complex(1, 0))
	want := math.Cos(1) / math.Sin(1)
	assert.InDelta(t, want, real(got), 1e-14)
	assert.InDelta(t, 0.0, imag(got), 1e-14)
}

// TestLentzDn_AgainstAnalytic tests the continued fraction at order 1, where
// D₁ has a closed form.
func TestLentzDn_AgainstAnalytic(t *testing.T) {
	tests := []struct {
		name string
		z    complex128
	}{
		{"Real moderate", complex(6.65, 0)},
		{"Real large", complex(50.0, 0)},
		{"Absorbing", complex(6.65, 1.2)},
		{"Strongly absorbing", complex(10.0, 5.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LentzDn(tt.z, 1)
			require.NoError(t, err)
			want := analyticD1(tt.z)
			assert.InDelta(t, real(want), real(got), 1e-10*cmplx.Abs(want)+1e-12)
			assert.InDelta(t, imag(want), imag(got), 1e-10*cmplx.Abs(want)+1e-12)
		})
	}
}

// TestLentzDn_RecurrenceConsistency tests that seeds at consecutive orders
// satisfy the downward recurrence Dₙ₋₁ = n/z − 1/(Dₙ + n/z).
func TestLentzDn_RecurrenceConsistency(t *testing.T) {
	zs := []complex128{
		complex(6.65, 0),
		complex(15.0, 0.15),
		complex(30.0, 3.0),
	}

	for _, z := range zs {
		for n := 2; n <= 20; n += 6 {
			dn, err := LentzDn(z, n)
			require.NoError(t, err)
			dnm1, err := LentzDn(z, n-1)
			require.NoError(t, err)

			kOverZ := complex(float64(n), 0) / z
			derived := kOverZ - 1/(dn+kOverZ)
			assert.InDelta(t, real(dnm1), real(derived), 1e-9,
				"order %d at z=%v", n, z)
			assert.InDelta(t, imag(dnm1), imag(derived), 1e-9,
				"order %d at z=%v", n, z)
		}
	}
}

// TestLogDerivUp_Seed tests that the upward fill starts from cot(z).
func TestLogDerivUp_Seed(t *testing.T) {
	z := complex(6.65, 0)
	d := make([]complex128, 4)
	LogDerivUp(z, 3, d)

	want := Cot(z)
	assert.InDelta(t, real(want), real(d[0]), 1e-14)
	assert.InDelta(t, imag(want), imag(d[0]), 1e-14)
}

// TestLogDeriv_UpDownAgreement tests that both recurrence directions agree
// for weakly absorbing arguments, where both are stable.
func TestLogDeriv_UpDownAgreement(t *testing.T) {
	tests := []struct {
		name  string
		z     complex128
		nstop int
	}{
		{"Real small", complex(1.33, 0), 7},
		{"Real moderate", complex(6.65, 0), 14},
		{"Weak absorption", complex(15.0, 0.1), 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := make([]complex128, tt.nstop+1)
			down := make([]complex128, tt.nstop+1)

			LogDerivUp(tt.z, tt.nstop, up)
			require.NoError(t, LogDerivDown(tt.z, tt.nstop, down))

			for k := 0; k <= tt.nstop; k++ {
				scale := cmplx.Abs(down[k])
				if scale < 1 {
					scale = 1
				}
				// The upward direction sheds digits once the order
				// exceeds |z|; beyond that point only loose agreement
				// is meaningful.
				tol := 1e-8
				if float64(k) > cmplx.Abs(tt.z) {
					tol = 1e-5
				}
				assert.InDelta(t, real(down[k]), real(up[k]), tol*scale,
					"Re D[%d] at z=%v", k, tt.z)
				assert.InDelta(t, imag(down[k]), imag(up[k]), tol*scale,
					"Im D[%d] at z=%v", k, tt.z)
			}
		})
	}
}

// TestLentzDn_NonConvergence tests that an argument the continued fraction
// cannot converge on hits the iteration bound and reports it as an error
// instead of spinning.
func TestLentzDn_NonConvergence(t *testing.T) {
	_, err := LentzDn(complex(math.NaN(), 0), 5)
	assert.ErrorIs(t, err, ErrNoConvergence)
}

// TestLogDerivDown_NonConvergence tests that the downward fill surfaces a
// failed seed.
func TestLogDerivDown_NonConvergence(t *testing.T) {
	d := make([]complex128, 6)
	err := LogDerivDown(complex(math.NaN(), 0), 5, d)
	assert.ErrorIs(t, err, ErrNoConvergence)
}

// TestLogDerivDown_FillsAllOrders tests that every entry, including the
// nstop seed, is populated.
func TestLogDerivDown_FillsAllOrders(t *testing.T) {
	z := complex(12.0, 2.0)
	nstop := 18
	d := make([]complex128, nstop+1)
	require.NoError(t, LogDerivDown(z, nstop, d))

	for k, v := range d {
		assert.False(t, cmplx.IsNaN(v), "D[%d] is NaN", k)
		assert.NotEqual(t, complex(0, 0), v, "D[%d] left unfilled", k)
	}
}

// BenchmarkLentzDn benchmarks the continued-fraction seed at a mid-range order.
func BenchmarkLentzDn(b *testing.B) {
	z := complex(150.0, 1.5)
	for b.Loop() {
		_, _ = LentzDn(z, 160)
	}
}

// BenchmarkLogDerivDown benchmarks a full downward fill.
func BenchmarkLogDerivDown(b *testing.B) {
	z := complex(150.0, 1.5)
	d := make([]complex128, 161)
	for b.Loop() {
		_ = LogDerivDown(z, 160, d)
	}
}
