package numerics

import (
	"github.com/tphakala/go-numerics/internal/engine"
	"github.com/tphakala/go-numerics/internal/simdops"
)

// Newton is a polynomial interpolator in Newton form:
//
//	p(z) = a[0] + a[1](z-x[0]) + a[2](z-x[0])(z-x[1]) + ...
//
// Building from n+1 points costs O(n²); appending a point with
// AddSamplingPoint costs O(n) and gives the same polynomial as rebuilding
// from scratch. Evaluate is O(n).
//
// A Newton is not safe for concurrent use.
type Newton struct {
	impl   *engine.Newton
	strict bool
}

func newNewton(ops *simdops.Ops, strict bool) *Newton {
	return &Newton{
		impl:   engine.NewNewton(ops),
		strict: strict,
	}
}

// InitUniform builds the polynomial through n+1 equally spaced abscissas
// x[i] = lower + i*(upper-lower)/n and the ordinates y. For n == 0 the single
// abscissa is lower.
//
// In strict mode n < 0, len(y) != n+1 and an empty interval with n > 0 are
// rejected and the interpolator is left unchanged.
func (p *Newton) InitUniform(lower, upper float64, n int, y []float64) error {
	if p.strict {
		if err := engine.ValidateUniform(lower, upper, n, y); err != nil {
			return err
		}
	}
	return p.impl.InitUniform(lower, upper, n, y)
}

// Init builds the polynomial through the sample points (x[i], y[i]).
// x is copied; the points may be in any order.
//
// In strict mode mismatched lengths, an empty set and duplicate abscissas are
// rejected and the interpolator is left unchanged. Otherwise duplicates
// propagate Inf/NaN into the coefficients.
func (p *Newton) Init(x, y []float64) error {
	if p.strict {
		if err := engine.ValidateSamples(x, y); err != nil {
			return err
		}
	}
	return p.impl.Init(x, y)
}

// Evaluate returns p(z). An empty interpolator evaluates to 0.
func (p *Newton) Evaluate(z float64) float64 {
	return p.impl.Evaluate(z)
}

// AddSamplingPoint extends the sample set by (x, y) in O(n). If x already is
// an abscissa (exact equality) the call does nothing, in strict mode too.
func (p *Newton) AddSamplingPoint(x, y float64) {
	p.impl.AddSamplingPoint(x, y)
}

// Coefficients returns a copy of the Newton coefficients, a[k] = [x_0..x_k].
func (p *Newton) Coefficients() []float64 {
	return p.impl.Coefficients()
}

// DividedDifferences returns a copy of the trailing diagonal of the
// divided-difference table, f[k] = [x_k..x_n].
func (p *Newton) DividedDifferences() []float64 {
	return p.impl.DividedDifferences()
}

// Abscissas returns a copy of the sample abscissas in insertion order.
func (p *Newton) Abscissas() []float64 {
	return p.impl.Abscissas()
}

// Len returns the number of sample points.
func (p *Newton) Len() int {
	return p.impl.Len()
}

// Degree returns the degree bound of the polynomial, -1 when empty.
func (p *Newton) Degree() int {
	return p.impl.Degree()
}

// IsStrict reports whether sample sets are validated before use.
func (p *Newton) IsStrict() bool {
	return p.strict
}

// GetInfo returns information about the interpolator.
func (p *Newton) GetInfo() Info {
	simdType := p.impl.GetSIMDInfo()
	return Info{
		Method:      MethodNewton.String(),
		Points:      p.impl.Len(),
		Strict:      p.strict,
		MemoryUsage: p.impl.GetMemoryUsage(),
		SIMDEnabled: simdType != simdops.GenericName,
		SIMDType:    simdType,
	}
}
