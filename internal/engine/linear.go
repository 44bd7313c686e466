package engine

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/tphakala/go-numerics/internal/mathutil"
	"gonum.org/v1/gonum/interp"
)

// Linear implements piecewise linear (2-point, 1st order) interpolation.
// Sample points may be given in any order; they are sorted by abscissa.
// Outside the sampled range the nearest end value is returned.
type Linear struct {
	predictor interp.Predictor
	points    int
}

// NewLinear creates an empty linear interpolator.
func NewLinear() *Linear {
	return &Linear{}
}

// InitUniform fits n+1 equally spaced samples over [lower, upper].
func (l *Linear) InitUniform(lower, upper float64, n int, y []float64) error {
	if err := ValidateUniform(lower, upper, n, y); err != nil {
		return fmt.Errorf("linear: %w", err)
	}
	return l.Init(mathutil.UniformGrid(lower, upper, n), y)
}

// Init fits the sample points (x[i], y[i]).
func (l *Linear) Init(x, y []float64) error {
	xs, ys, err := sortedSamples(x, y)
	if err != nil {
		return fmt.Errorf("linear: %w", err)
	}

	if len(xs) < linearInterpolationPoints {
		l.predictor, l.points = constantPredictor(ys), len(xs)
		return nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return fmt.Errorf("linear fit failed: %w", err)
	}
	l.predictor, l.points = pl, len(xs)
	return nil
}

// Evaluate returns the interpolated value at z. An empty interpolator
// evaluates to 0.
func (l *Linear) Evaluate(z float64) float64 {
	if l.predictor == nil {
		return 0
	}
	return l.predictor.Predict(z)
}

// Len returns the number of sample points.
func (l *Linear) Len() int {
	return l.points
}

// GetSIMDInfo returns empty as linear doesn't use SIMD.
func (l *Linear) GetSIMDInfo() string {
	return ""
}

// sortedSamples returns copies of x and y ordered by ascending abscissa.
// gonum's fitters require strictly increasing abscissas, so NaN, duplicate
// abscissas and length mismatches are reported instead of left to panic.
func sortedSamples(x, y []float64) (xs, ys []float64, err error) {
	if err := ValidateSamples(x, y); err != nil {
		return nil, nil, err
	}

	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(x[a], x[b])
	})

	xs = make([]float64, len(x))
	ys = make([]float64, len(y))
	for i, k := range order {
		xs[i] = x[k]
		ys[i] = y[k]
	}
	return xs, ys, nil
}

// constantPredictor returns the predictor for a one-point sample set.
func constantPredictor(ys []float64) interp.Predictor {
	return interp.Constant(ys[0])
}
