package engine

// Export internal functions for testing.
// This file uses the _test.go suffix so it's only included in test builds.

// ExportedSortedSamples wraps sortedSamples for testing
func ExportedSortedSamples(x, y []float64) (xs, ys []float64, err error) {
	return sortedSamples(x, y)
}

// ExportedNewtonState exposes the internal buffers of a Newton interpolator
// without copying, so tests can check aliasing.
func ExportedNewtonState(p *Newton) (x, a, f []float64) {
	return p.x, p.a, p.f
}

// Derivative returns the first derivative of the spline at z.
func (s *CubicSpline) Derivative(z float64) float64 {
	if s.spline == nil {
		return 0
	}
	return s.spline.PredictDerivative(z)
}

// Mode returns the twiddle mode.
func (t *Transformer) Mode() TwiddleMode {
	return t.twiddles
}
