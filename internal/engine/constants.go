package engine

// Interpolation window sizes
const (
	// Linear interpolation needs two points per segment
	linearInterpolationPoints = 2

	// Natural spline fit needs at least two points; fewer fall back to a constant
	splineMinPoints = 2
)

// Transform constants
const (
	// Radix-2 split: each frame has two halves
	halfDivisor = 2
)

// Memory accounting
const (
	bytesPerFloat64 = 8 // Size of float64 in bytes
)
