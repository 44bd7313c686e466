package mathutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-numerics/internal/testutil"
)

// TestFromPolar tests polar construction against known points on the plane.
func TestFromPolar(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		angle     float64
		expected  complex128
	}{
		{"Unit at zero", 1, 0, 1},
		{"Unit quarter turn", 1, math.Pi / 2, 1i},
		{"Unit half turn", 1, math.Pi, -1},
		{"Scaled three quarter turn", 2, 3 * math.Pi / 2, -2i},
		{"Zero magnitude", 0, 1.234, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := FromPolar(tt.magnitude, tt.angle)
			assert.InDelta(t, real(tt.expected), real(z), testutil.DefaultTolerance)
			assert.InDelta(t, imag(tt.expected), imag(z), testutil.DefaultTolerance)
		})
	}
}

// TestPower tests integer powers against cmplx.Pow.
func TestPower(t *testing.T) {
	bases := []complex128{1 + 1i, 0.5 - 2i, FromPolar(1, 2*math.Pi/8), -3}
	for _, z := range bases {
		for k := 0; k <= 9; k++ {
			want := cmplx.Pow(z, complex(float64(k), 0))
			if k == 0 {
				want = 1
			}
			got := Power(z, k)
			assert.InDelta(t, 0, cmplx.Abs(got-want), 1e-9*math.Max(1, cmplx.Abs(want)),
				"Power(%v, %d) = %v, want %v", z, k, got, want)
		}
	}
}

// TestPower_ZeroExponent tests that anything raised to zero is one.
func TestPower_ZeroExponent(t *testing.T) {
	assert.Equal(t, complex(1, 0), Power(0, 0))
	assert.Equal(t, complex(1, 0), Power(3+4i, 0))
	assert.Equal(t, complex(1, 0), Power(3+4i, -2))
}

// TestRootOfUnity tests that the n-th root raised to n returns to one.
func TestRootOfUnity(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 64} {
		omega := RootOfUnity(n, InverseSign)
		assert.InDelta(t, 1.0, cmplx.Abs(omega), testutil.DefaultTolerance)
		assert.InDelta(t, 0, cmplx.Abs(Power(omega, n)-1), 1e-9, "n=%d", n)
	}

	// Inverse and forward roots are conjugates
	inv := RootOfUnity(8, InverseSign)
	fwd := RootOfUnity(8, ForwardSign)
	assert.InDelta(t, 0, cmplx.Abs(inv-cmplx.Conj(fwd)), testutil.DefaultTolerance)
}

// TestTwiddles_MatchPower tests that incremental and per-index twiddles agree.
func TestTwiddles_MatchPower(t *testing.T) {
	for _, n := range []int{2, 8, 32, 256} {
		omega := RootOfUnity(n, InverseSign)
		inc := make([]complex128, n/2)
		pow := make([]complex128, n/2)
		Twiddles(inc, omega)
		TwiddlesByPower(pow, omega)
		testutil.AssertComplexSliceInDelta(t, pow, inc, 1e-12, "n=%d", n)
		assert.Equal(t, complex(1, 0), inc[0])
	}
}

// TestIsFinite tests detection of NaN and Inf parts.
func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1+2i))
	assert.False(t, IsFinite(complex(math.NaN(), 0)))
	assert.False(t, IsFinite(complex(0, math.Inf(-1))))
}

// BenchmarkPower benchmarks binary exponentiation for a typical twiddle index.
func BenchmarkPower(b *testing.B) {
	omega := RootOfUnity(1024, InverseSign)
	for b.Loop() {
		_ = Power(omega, 511)
	}
}
