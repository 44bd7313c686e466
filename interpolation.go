package numerics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tphakala/go-numerics/internal/engine"
	"github.com/tphakala/go-numerics/internal/simdops"
)

// Interpolator is the common interface for interpolation methods.
// An interpolator is built from a sample set and then evaluated at
// arbitrary points.
type Interpolator interface {
	// InitUniform builds the interpolator from n+1 equally spaced abscissas
	// over [lower, upper] and the ordinates y (len(y) must be n+1).
	InitUniform(lower, upper float64, n int, y []float64) error

	// Init builds the interpolator from the sample points (x[i], y[i]).
	Init(x, y []float64) error

	// Evaluate returns the interpolated value at z.
	Evaluate(z float64) float64
}

// Method enumerates the available interpolation methods.
type Method int

const (
	// MethodNewton uses a single global polynomial in Newton form.
	// Exact for polynomial data up to the number of samples minus one,
	// and the only method that supports adding points incrementally.
	MethodNewton Method = iota

	// MethodLinear joins neighbouring samples with straight lines.
	MethodLinear

	// MethodCubicSpline fits a natural cubic spline through the samples.
	MethodCubicSpline
)

// String returns the method name as accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodNewton:
		return methodNameNewton
	case MethodLinear:
		return methodNameLinear
	case MethodCubicSpline:
		return methodNameSpline
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod returns the method with the given name (case-insensitive).
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case methodNameNewton:
		return MethodNewton, nil
	case methodNameLinear:
		return MethodLinear, nil
	case methodNameSpline, "cubic", "cubic-spline":
		return MethodCubicSpline, nil
	default:
		return 0, fmt.Errorf("%w: unknown interpolation method %q", ErrInvalidConfig, name)
	}
}

// Config holds interpolator configuration.
type Config struct {
	// Method selects the interpolation algorithm.
	Method Method

	// Strict validates every sample set before it is used. Invalid input is
	// reported with ErrDimensionMismatch, ErrDuplicateAbscissa,
	// ErrInvalidAbscissa or ErrInvalidLength and leaves the interpolator unchanged.
	//
	// Without Strict the Newton method accepts anything: duplicate abscissas
	// propagate Inf/NaN into the coefficients. Linear and CubicSpline always
	// validate since their fitters cannot represent such input.
	Strict bool

	// EnableSIMD allows the use of SIMD optimizations when available.
	// Set to false to force pure Go implementation.
	EnableSIMD bool
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid numerics configuration")

	// ErrDimensionMismatch indicates sample slices of different lengths, or
	// an ordinate count that does not match the requested grid.
	ErrDimensionMismatch = engine.ErrDimensionMismatch

	// ErrDuplicateAbscissa indicates two sample points with the same abscissa.
	ErrDuplicateAbscissa = engine.ErrDuplicateAbscissa

	// ErrInvalidAbscissa indicates a NaN abscissa.
	ErrInvalidAbscissa = engine.ErrInvalidAbscissa

	// ErrInvalidLength indicates an empty sample set, a negative grid size or
	// a transform length that is not a power of two.
	ErrInvalidLength = engine.ErrInvalidLength
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Method {
	case MethodNewton, MethodLinear, MethodCubicSpline:
		return nil
	default:
		return fmt.Errorf("%w: unknown interpolation method %d", ErrInvalidConfig, int(c.Method))
	}
}

// New creates an empty interpolator with the specified configuration.
// For MethodNewton the result is a *Newton.
func New(config *Config) (Interpolator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Method {
	case MethodLinear:
		return newMethodInterpolator(MethodLinear, engine.NewLinear()), nil
	case MethodCubicSpline:
		return newMethodInterpolator(MethodCubicSpline, engine.NewCubicSpline()), nil
	default:
		return newNewton(simdops.For(config.EnableSIMD), config.Strict), nil
	}
}

// Info returns information about an interpolator.
type Info struct {
	// Method is the interpolation algorithm in use.
	Method string

	// Points is the number of sample points.
	Points int

	// Strict reports whether sample sets are validated before use.
	Strict bool

	// MemoryUsage is the approximate memory usage in bytes, 0 when unknown.
	MemoryUsage int64

	// SIMDEnabled indicates if SIMD optimizations are active.
	SIMDEnabled bool

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// infoProvider is an optional interface for interpolators that can provide detailed info.
type infoProvider interface {
	GetInfo() Info
}

// GetInfo returns information about an interpolator.
// Interpolators from this package report actual values; others get a
// placeholder.
func GetInfo(interp Interpolator) Info {
	if provider, ok := interp.(infoProvider); ok {
		return provider.GetInfo()
	}

	return Info{
		Method:   "unknown",
		SIMDType: "none",
	}
}
