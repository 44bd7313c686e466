package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-numerics/internal/simdops"
	"github.com/tphakala/go-numerics/internal/testutil"
)

// dividedDifference computes [x_i..x_j] by the textbook recursion.
// It is exponential in j-i and only used as a reference for small sets.
func dividedDifference(x, y []float64, i, j int) float64 {
	if i == j {
		return y[i]
	}
	return (dividedDifference(x, y, i+1, j) - dividedDifference(x, y, i, j-1)) / (x[j] - x[i])
}

func newTestNewton(t *testing.T, x, y []float64) *Newton {
	t.Helper()
	p := NewNewton(nil)
	require.NoError(t, p.Init(x, y))
	return p
}

// TestNewton_ConcreteCase reproduces the two-point set extended by one sample.
func TestNewton_ConcreteCase(t *testing.T) {
	p := newTestNewton(t, []float64{1, 3}, []float64{-2, -2})

	assert.Equal(t, []float64{-2, 0}, p.Coefficients())
	assert.Equal(t, []float64{0, -2}, p.DividedDifferences())

	p.AddSamplingPoint(1.5, 5.0)

	assert.Equal(t, []float64{1, 3, 1.5}, p.Abscissas())
	testutil.AssertSliceInDelta(t, []float64{-2, 0, -28.0 / 3}, p.Coefficients(), testutil.DefaultTolerance)
	testutil.AssertSliceInDelta(t, []float64{-28.0 / 3, -14.0 / 3, 5}, p.DividedDifferences(), testutil.DefaultTolerance)

	for _, tc := range []struct{ z, want float64 }{{1, -2}, {1.5, 5}, {3, -2}} {
		assert.InDelta(t, tc.want, p.Evaluate(tc.z), testutil.DefaultTolerance, "p(%v)", tc.z)
	}

	fresh := newTestNewton(t, []float64{1, 3, 1.5}, []float64{-2, -2, 5})
	assert.InDelta(t, fresh.Evaluate(4), p.Evaluate(4), testutil.DefaultTolerance)
	assert.InDelta(t, -30.0, p.Evaluate(4), testutil.DefaultTolerance)
}

// TestNewton_ReproducesSamples tests that the polynomial passes through its data.
func TestNewton_ReproducesSamples(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"Single point", []float64{2}, []float64{7}},
		{"Two points", []float64{-1, 4}, []float64{3, -2}},
		{"Unordered sites", []float64{0.3, -1.2, 2.5, 0.9, -0.4}, []float64{1, -3, 0.25, 8, 2}},
		{"Chebyshev-like sites", chebyshevSites(9), sinAt(chebyshevSites(9))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestNewton(t, tt.x, tt.y)
			for i := range tt.x {
				assert.InDelta(t, tt.y[i], p.Evaluate(tt.x[i]), 1e-9, "p(x[%d])", i)
			}
		})
	}
}

// TestNewton_CoefficientsAreDividedDifferences checks a[k] = [x_0..x_k] and f[k] = [x_k..x_n].
func TestNewton_CoefficientsAreDividedDifferences(t *testing.T) {
	x := []float64{0, 0.5, 1.25, 2, 3.5, 4}
	y := []float64{1, -0.5, 2, 0, 4.5, -1}
	p := newTestNewton(t, x, y)

	a := p.Coefficients()
	f := p.DividedDifferences()
	n := len(x) - 1
	for k := range x {
		testutil.AssertRelativeError(t, dividedDifference(x, y, 0, k), a[k], 1e-10, "a[%d]", k)
		testutil.AssertRelativeError(t, dividedDifference(x, y, k, n), f[k], 1e-10, "f[%d]", k)
	}
}

// TestNewton_DegreeReduction tests that lower-degree data yields vanishing
// higher-order coefficients.
func TestNewton_DegreeReduction(t *testing.T) {
	t.Run("Collinear", func(t *testing.T) {
		x := []float64{-2, -1, 0.5, 1, 3}
		y := make([]float64, len(x))
		for i, xi := range x {
			y[i] = 2*xi + 1
		}
		p := newTestNewton(t, x, y)

		a := p.Coefficients()
		assert.InDelta(t, 2.0, a[1], testutil.DefaultTolerance)
		for k := 2; k < len(a); k++ {
			assert.InDelta(t, 0.0, a[k], testutil.DefaultTolerance, "a[%d]", k)
		}
		for _, z := range []float64{-5, 0, 0.75, 10} {
			assert.InDelta(t, 2*z+1, p.Evaluate(z), 1e-9)
		}
	})

	t.Run("Constant", func(t *testing.T) {
		p := NewNewton(nil)
		require.NoError(t, p.InitUniform(0, 1, 4, []float64{3, 3, 3, 3, 3}))
		a := p.Coefficients()
		assert.Equal(t, 3.0, a[0])
		for k := 1; k < len(a); k++ {
			assert.Equal(t, 0.0, a[k], "a[%d]", k)
		}
		assert.Equal(t, 3.0, p.Evaluate(123.4))
	})
}

// TestNewton_ExactForPolynomials tests that n+1 samples of a degree-n
// polynomial recover it everywhere.
func TestNewton_ExactForPolynomials(t *testing.T) {
	c := []float64{1, -2, 0.5, 3}
	p := NewNewton(nil)
	y := make([]float64, 4)
	for i := range y {
		y[i] = testutil.Polynomial(c, -1+float64(i)*2.0/3)
	}
	require.NoError(t, p.InitUniform(-1, 1, 3, y))

	assert.Equal(t, 3, p.Degree())
	for z := -3.0; z <= 3.0; z += 0.25 {
		assert.InDelta(t, testutil.Polynomial(c, z), p.Evaluate(z), 1e-9, "z=%v", z)
	}
}

func TestNewton_InitUniform(t *testing.T) {
	p := NewNewton(nil)
	require.NoError(t, p.InitUniform(0, 2, 4, []float64{0, 0.25, 1, 2.25, 4}))

	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, p.Abscissas())
	// y = x² needs only three coefficients
	a := p.Coefficients()
	assert.InDelta(t, 1.0, a[2], testutil.DefaultTolerance)
	assert.InDelta(t, 0.0, a[3], testutil.DefaultTolerance)
	assert.InDelta(t, 0.0, a[4], testutil.DefaultTolerance)
	assert.InDelta(t, 6.25, p.Evaluate(2.5), 1e-10)
}

// TestNewton_IncrementalEquivalence tests that appending a point matches a
// fresh build over the extended set.
func TestNewton_IncrementalEquivalence(t *testing.T) {
	x := []float64{0.1, 1.7, -0.6, 2.4, 0.9, -1.3, 3.1}
	y := []float64{2, -1, 0.5, 3, -2.5, 1, 0}

	for k := 1; k < len(x); k++ {
		p := newTestNewton(t, x[:k], y[:k])
		p.AddSamplingPoint(x[k], y[k])

		fresh := newTestNewton(t, x[:k+1], y[:k+1])
		testutil.AssertSliceInDelta(t, fresh.Coefficients(), p.Coefficients(), 1e-9, "coefficients after %d points", k+1)
		testutil.AssertSliceInDelta(t, fresh.DividedDifferences(), p.DividedDifferences(), 1e-9, "diagonal after %d points", k+1)
		for _, z := range []float64{-2, 0, 0.33, 1.5, 4} {
			assert.InDelta(t, fresh.Evaluate(z), p.Evaluate(z), 1e-8, "p(%v) after %d points", z, k+1)
		}
	}
}

// TestNewton_GrowFromEmpty tests building a whole set one point at a time.
func TestNewton_GrowFromEmpty(t *testing.T) {
	x := []float64{-1, 0, 2, 5}
	y := []float64{4, -1, 3, 0.5}

	p := NewNewton(nil)
	assert.Equal(t, -1, p.Degree())
	assert.Equal(t, 0.0, p.Evaluate(1))

	for i := range x {
		p.AddSamplingPoint(x[i], y[i])
	}

	fresh := newTestNewton(t, x, y)
	testutil.AssertSliceInDelta(t, fresh.Coefficients(), p.Coefficients(), 1e-12)
	assert.Equal(t, len(x), p.Len())
}

// TestNewton_DuplicateAddIsNoop tests that an existing abscissa leaves all state unchanged.
func TestNewton_DuplicateAddIsNoop(t *testing.T) {
	p := newTestNewton(t, []float64{1, 3, 1.5}, []float64{-2, -2, 5})
	x, a, f := p.Abscissas(), p.Coefficients(), p.DividedDifferences()

	p.AddSamplingPoint(3, 99)
	p.AddSamplingPoint(1.5, -7)

	assert.Equal(t, x, p.Abscissas())
	assert.Equal(t, a, p.Coefficients())
	assert.Equal(t, f, p.DividedDifferences())
}

// TestNewton_DuplicateInitPropagates tests that the unvalidated path lets
// division by zero surface as Inf/NaN rather than failing.
func TestNewton_DuplicateInitPropagates(t *testing.T) {
	p := newTestNewton(t, []float64{1, 1}, []float64{0, 1})
	a := p.Coefficients()
	assert.True(t, math.IsInf(a[1], 1), "a[1] = %v", a[1])

	p = newTestNewton(t, []float64{2, 2}, []float64{5, 5})
	assert.True(t, math.IsNaN(p.Coefficients()[1]))
}

// TestNewton_ViewsAreCopies tests that returned slices cannot alter the interpolator.
func TestNewton_ViewsAreCopies(t *testing.T) {
	x := []float64{0, 1, 2}
	p := newTestNewton(t, x, []float64{1, 2, 5})

	x[1] = 42
	a := p.Coefficients()
	a[0] = 1000
	f := p.DividedDifferences()
	f[0] = 1000

	assert.Equal(t, []float64{0, 1, 2}, p.Abscissas())
	assert.Equal(t, 1.0, p.Coefficients()[0])
	assert.InDelta(t, 5.0, p.Evaluate(2), testutil.DefaultTolerance)
}

// TestNewton_BackendsAgree tests SIMD and pure Go evaluation give the same values.
func TestNewton_BackendsAgree(t *testing.T) {
	x := chebyshevSites(17)
	y := sinAt(x)

	simd := NewNewton(simdops.SIMD())
	generic := NewNewton(simdops.Generic())
	require.NoError(t, simd.Init(x, y))
	require.NoError(t, generic.Init(x, y))

	for z := -1.0; z <= 1.0; z += 0.05 {
		assert.InDelta(t, generic.Evaluate(z), simd.Evaluate(z), 1e-10, "z=%v", z)
	}
	assert.Equal(t, simdops.GenericName, generic.GetSIMDInfo())
	assert.Positive(t, simd.GetMemoryUsage())
}

// TestNewton_Reinit tests that Init replaces the previous sample set entirely.
func TestNewton_Reinit(t *testing.T) {
	p := newTestNewton(t, []float64{0, 1, 2, 3}, []float64{1, 2, 3, 4})
	require.NoError(t, p.Init([]float64{5, 6}, []float64{0, 1}))

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []float64{5, 6}, p.Abscissas())
	assert.InDelta(t, 0.5, p.Evaluate(5.5), testutil.DefaultTolerance)
}

func chebyshevSites(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(math.Pi * (2*float64(i) + 1) / (2 * float64(n)))
	}
	return x
}

func sinAt(x []float64) []float64 {
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = math.Sin(2 * xi)
	}
	return y
}

func BenchmarkNewton_Evaluate(b *testing.B) {
	x := chebyshevSites(32)
	p := NewNewton(nil)
	_ = p.Init(x, sinAt(x))
	for b.Loop() {
		_ = p.Evaluate(0.123)
	}
}

func BenchmarkNewton_AddSamplingPoint(b *testing.B) {
	x := chebyshevSites(33)
	y := sinAt(x)
	for b.Loop() {
		p := NewNewton(nil)
		_ = p.Init(x[:32], y[:32])
		p.AddSamplingPoint(x[32], y[32])
	}
}

// TestNewton_MismatchedLengthsTruncate tests that the unvalidated path uses
// the common prefix of x and y instead of panicking.
func TestNewton_MismatchedLengthsTruncate(t *testing.T) {
	p := newTestNewton(t, []float64{0, 1, 2}, []float64{5, 6})
	assert.Equal(t, []float64{0, 1}, p.Abscissas())
	assert.InDelta(t, 7.0, p.Evaluate(2), testutil.DefaultTolerance)

	require.NoError(t, p.InitUniform(0, 1, 4, []float64{1, 2}))
	assert.Equal(t, 2, p.Len())

	require.NotPanics(t, func() { _ = p.InitUniform(0, 1, -3, []float64{1}) })
	assert.Equal(t, -1, p.Degree())
}
