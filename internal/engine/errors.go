package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-numerics/internal/mathutil"
)

// Input errors. The root package re-exports them so callers can match with
// errors.Is regardless of which layer produced the error.
var (
	// ErrDimensionMismatch indicates sample slices of different lengths, or
	// an ordinate count that does not match the requested grid.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDuplicateAbscissa indicates two sample points with the same abscissa.
	ErrDuplicateAbscissa = errors.New("duplicate abscissa")

	// ErrInvalidAbscissa indicates a NaN abscissa, which has no position on
	// the axis.
	ErrInvalidAbscissa = errors.New("invalid abscissa")

	// ErrInvalidLength indicates an empty sample set, a negative grid size or
	// a transform length that is not a power of two.
	ErrInvalidLength = errors.New("invalid length")
)

// ValidateSamples checks that x and y describe a usable sample set:
// equal, non-zero length and pairwise distinct abscissas, none of them NaN.
func ValidateSamples(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d abscissas, %d ordinates", ErrDimensionMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return fmt.Errorf("%w: no sample points", ErrInvalidLength)
	}
	if i := mathutil.IndexNaN(x); i >= 0 {
		return fmt.Errorf("%w: x[%d] is NaN", ErrInvalidAbscissa, i)
	}
	if i, j, ok := mathutil.FindDuplicate(x); ok {
		return fmt.Errorf("%w: x[%d] == x[%d] == %v", ErrDuplicateAbscissa, i, j, x[i])
	}
	return nil
}

// ValidateUniform checks the arguments of a uniform-grid initialization.
func ValidateUniform(lower, upper float64, n int, y []float64) error {
	if n < 0 {
		return fmt.Errorf("%w: grid size n=%d must not be negative", ErrInvalidLength, n)
	}
	if len(y) != n+1 {
		return fmt.Errorf("%w: grid has %d points, got %d ordinates", ErrDimensionMismatch, n+1, len(y))
	}
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return fmt.Errorf("%w: interval [%v, %v]", ErrInvalidAbscissa, lower, upper)
	}
	if n > 0 && lower == upper {
		return fmt.Errorf("%w: empty interval [%v, %v] for %d points", ErrDuplicateAbscissa, lower, upper, n+1)
	}
	return nil
}

// ValidateTransformLength checks that n is a usable radix-2 transform length.
func ValidateTransformLength(n int) error {
	if !mathutil.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: transform length %d is not a power of two", ErrInvalidLength, n)
	}
	return nil
}
