// Package engine implements the interpolation and transform algorithms.
package engine

import (
	"slices"

	"github.com/tphakala/go-numerics/internal/mathutil"
	"github.com/tphakala/go-numerics/internal/simdops"
)

// Newton interpolates sample points with a polynomial in Newton form:
//
//	p(z) = a[0] + a[1](z-x[0]) + a[2](z-x[0])(z-x[1]) + ...
//
// Besides the coefficients a, the trailing diagonal f of the divided-difference
// triangle is kept (f[k] = [x_k..x_n]). Together with the abscissas it is all
// that is needed to append a sample point in O(n).
//
// Inputs are not validated: duplicate abscissas propagate Inf/NaN and
// mismatched lengths are truncated to the shorter slice. A Newton is not safe for concurrent use.
type Newton struct {
	x []float64 // abscissas
	a []float64 // coefficients, a[k] = [x_0..x_k]
	f []float64 // triangle diagonal, f[k] = [x_k..x_n]

	// basis is scratch space for Evaluate
	basis []float64

	ops *simdops.Ops
}

// NewNewton creates an empty Newton interpolator. ops selects the vector
// kernels; nil selects the SIMD kernels.
func NewNewton(ops *simdops.Ops) *Newton {
	if ops == nil {
		ops = simdops.SIMD()
	}
	return &Newton{ops: ops}
}

// InitUniform places n+1 equally spaced abscissas over [lower, upper] and
// computes the coefficients for the ordinates y. len(y) must be n+1.
func (p *Newton) InitUniform(lower, upper float64, n int, y []float64) error {
	x := mathutil.UniformGrid(lower, upper, n)
	size := min(len(x), len(y))
	p.x = x[:size]
	p.computeCoefficients(y[:size])
	return nil
}

// Init copies the abscissas x and computes the coefficients for y.
// x and y must have equal length and x must not contain duplicates.
func (p *Newton) Init(x, y []float64) error {
	size := min(len(x), len(y))
	p.x = slices.Clone(x[:size])
	p.computeCoefficients(y[:size])
	return nil
}

// computeCoefficients builds the divided-difference triangle column by column
// in one flat buffer. Entry (k, i) lives at offset k*len + i and holds
// [x_i..x_{i+k}]. While filling it, the top of each column is captured into a
// and the bottom into f.
func (p *Newton) computeCoefficients(y []float64) {
	size := len(y)
	p.a = make([]float64, size)
	p.f = make([]float64, size)
	if size == 0 {
		return
	}

	c := make([]float64, size*size)
	copy(c, y)

	last := size - 1
	p.a[0] = c[0]
	p.f[last] = c[last]

	for k := 1; k < size; k++ {
		col := k * size
		prev := (k - 1) * size
		for i := 0; i < size-k; i++ {
			c[col+i] = (c[prev+i+1] - c[prev+i]) / (p.x[i+k] - p.x[i])

			if i == 0 {
				p.a[k] = c[col+i]
			}
			if i+k == last {
				p.f[i] = c[col+i]
			}
		}
	}
}

// Evaluate returns p(z).
//
// The Newton basis w[i] = Π_{j<i}(z - x[j]) is built with a running product,
// then reduced against the coefficients with a single dot product, so the
// whole evaluation is O(n). An empty interpolator evaluates to 0.
func (p *Newton) Evaluate(z float64) float64 {
	n := len(p.a)
	if n == 0 {
		return 0
	}

	if cap(p.basis) < n {
		p.basis = make([]float64, n)
	}
	w := p.basis[:n]

	w[0] = 1
	for i := 1; i < n; i++ {
		w[i] = w[i-1] * (z - p.x[i-1])
	}

	return p.ops.DotProduct(p.a, w)
}

// AddSamplingPoint appends (xNew, yNew) to the sample set.
//
// Only the previous diagonal f and the abscissas are needed: the new diagonal
// is built bottom-up as
//
//	f'[n]   = yNew
//	f'[i-1] = (f'[i] - f[i-1]) / (xNew - x[i-1])
//
// and the new leading coefficient is f'[0]. If xNew already is an abscissa
// (exact equality) the call is a no-op.
func (p *Newton) AddSamplingPoint(xNew, yNew float64) {
	if mathutil.Contains(p.x, xNew) {
		return
	}

	p.x = append(p.x, xNew)
	last := len(p.x) - 1

	next := make([]float64, last+1)
	next[last] = yNew
	for i := last; i > 0; i-- {
		next[i-1] = (next[i] - p.f[i-1]) / (p.x[last] - p.x[i-1])
	}

	p.f = next
	p.a = append(p.a, next[0])
}

// Coefficients returns a copy of the Newton coefficients a.
func (p *Newton) Coefficients() []float64 {
	return slices.Clone(p.a)
}

// DividedDifferences returns a copy of the triangle diagonal f,
// f[k] = [x_k..x_n].
func (p *Newton) DividedDifferences() []float64 {
	return slices.Clone(p.f)
}

// Abscissas returns a copy of the sample abscissas.
func (p *Newton) Abscissas() []float64 {
	return slices.Clone(p.x)
}

// Len returns the number of sample points.
func (p *Newton) Len() int {
	return len(p.a)
}

// Degree returns the degree bound of the polynomial (Len()-1), or -1 when the
// interpolator is empty.
func (p *Newton) Degree() int {
	return len(p.a) - 1
}

// GetMemoryUsage returns approximate memory usage in bytes.
func (p *Newton) GetMemoryUsage() int64 {
	floats := cap(p.x) + cap(p.a) + cap(p.f) + cap(p.basis)
	return int64(floats * bytesPerFloat64)
}

// GetSIMDInfo returns the name of the active kernel backend.
func (p *Newton) GetSIMDInfo() string {
	return p.ops.Name
}
