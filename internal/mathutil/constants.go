package mathutil

import "math"

// Angle constants
const (
	fullTurn = 2 * math.Pi // One full turn around the unit circle (radians)
)

// Sign of the exponent in e^{sign·2πi/n}.
const (
	InverseSign = 1.0  // Inverse transform (positive exponent)
	ForwardSign = -1.0 // Forward transform (negative exponent)
)

// Slice length thresholds
const (
	minPairLength = 2 // Fewest values that can contain a duplicate pair
)
