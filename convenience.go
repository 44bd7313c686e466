package numerics

import (
	"fmt"

	"github.com/tphakala/go-numerics/internal/simdops"
)

// NewNewton creates a Newton interpolator through the points (x[i], y[i])
// using the SIMD kernels when available. Input is not validated.
func NewNewton(x, y []float64) *Newton {
	p := newNewton(simdops.SIMD(), false)
	_ = p.Init(x, y)
	return p
}

// NewNewtonUniform creates a Newton interpolator through n+1 equally spaced
// abscissas over [lower, upper] and the ordinates y. Input is not validated.
func NewNewtonUniform(lower, upper float64, n int, y []float64) *Newton {
	p := newNewton(simdops.SIMD(), false)
	_ = p.InitUniform(lower, upper, n, y)
	return p
}

// NewStrictNewton is like NewNewton but validates the samples, and every
// later Init, before use.
func NewStrictNewton(x, y []float64) (*Newton, error) {
	p := newNewton(simdops.SIMD(), true)
	if err := p.Init(x, y); err != nil {
		return nil, err
	}
	return p, nil
}

// Interpolate is a convenience function for one-shot interpolation.
// It fits the samples with the given method in strict mode and evaluates
// the result at each point of zs.
func Interpolate(method Method, x, y, zs []float64) ([]float64, error) {
	interp, err := New(&Config{
		Method:     method,
		Strict:     true,
		EnableSIMD: true,
	})
	if err != nil {
		return nil, err
	}

	if err := interp.Init(x, y); err != nil {
		return nil, fmt.Errorf("%v interpolation failed: %w", method, err)
	}

	return EvaluateAll(interp, zs), nil
}

// EvaluateAll evaluates interp at each point of zs.
func EvaluateAll(interp Interpolator, zs []float64) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = interp.Evaluate(z)
	}
	return out
}
