package numerics

import (
	"fmt"

	"github.com/tphakala/go-numerics/internal/engine"
	"github.com/tphakala/go-numerics/internal/simdops"
)

// TwiddleMode selects how the twiddle factors omega^j are produced.
type TwiddleMode = engine.TwiddleMode

const (
	// TwiddleIncremental multiplies the previous twiddle by omega.
	TwiddleIncremental = engine.TwiddleIncremental

	// TwiddlePower raises omega to each power independently by binary
	// exponentiation. Slower, with rounding error that grows only with log j.
	TwiddlePower = engine.TwiddlePower
)

// TransformConfig holds inverse transform configuration.
type TransformConfig struct {
	// Normalize scales the result by 1/n so that Inverse is the true inverse
	// of the forward DFT. By default the result is unnormalized.
	Normalize bool

	// Strict rejects inputs whose length is not a positive power of two
	// with ErrInvalidLength.
	Strict bool

	// Twiddles selects the twiddle factor strategy.
	Twiddles TwiddleMode

	// EnableSIMD allows the use of SIMD optimizations when available.
	EnableSIMD bool
}

// Validate checks if the configuration is valid.
func (c *TransformConfig) Validate() error {
	switch c.Twiddles {
	case TwiddleIncremental, TwiddlePower:
		return nil
	default:
		return fmt.Errorf("%w: unknown twiddle mode %d", ErrInvalidConfig, int(c.Twiddles))
	}
}

// Transform computes inverse discrete Fourier transforms by recursive radix-2
// decimation in time:
//
//	v[k] = Σ c[j]·e^{+2πijk/n}
//
// A Transform is immutable and safe for concurrent use.
type Transform struct {
	impl   *engine.Transformer
	config TransformConfig
}

// NewTransform creates an inverse transform with the specified configuration.
func NewTransform(config *TransformConfig) (*Transform, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Transform{
		impl:   engine.NewTransformer(simdops.For(config.EnableSIMD), config.Twiddles),
		config: *config,
	}, nil
}

// Inverse returns the inverse DFT of c in a new slice; c is not modified.
//
// Without Strict, lengths that are not a power of two are not rejected:
// the call does not panic but the values are meaningless. An empty input
// yields an empty result.
func (t *Transform) Inverse(c []complex128) ([]complex128, error) {
	if t.config.Strict {
		if err := engine.ValidateTransformLength(len(c)); err != nil {
			return nil, err
		}
	}

	v := t.impl.Inverse(c)
	if t.config.Normalize {
		engine.Normalize(v)
	}
	return v, nil
}

// Config returns a copy of the transform configuration.
func (t *Transform) Config() TransformConfig {
	return t.config
}

// GetSIMDInfo returns the name of the active kernel backend.
func (t *Transform) GetSIMDInfo() string {
	return t.impl.GetSIMDInfo()
}

// defaultTransformer backs IFFT and IFFTChecked.
var defaultTransformer = engine.NewTransformer(simdops.SIMD(), engine.TwiddleIncremental)

// IFFT returns the unnormalized inverse DFT of c, whose length should be a
// power of two. It is the permissive fast path: the length is not checked.
func IFFT(c []complex128) []complex128 {
	return defaultTransformer.Inverse(c)
}

// IFFTChecked is like IFFT but rejects inputs whose length is not a positive
// power of two with ErrInvalidLength.
func IFFTChecked(c []complex128) ([]complex128, error) {
	if err := engine.ValidateTransformLength(len(c)); err != nil {
		return nil, err
	}
	return defaultTransformer.Inverse(c), nil
}

// FFT returns the unnormalized forward DFT X[k] = Σ c[j]·e^{-2πijk/n} of c.
// Any length is accepted. FFT(IFFT(c)) equals len(c)·c.
func FFT(c []complex128) []complex128 {
	return engine.Forward(c)
}

// Normalize scales v in place by 1/len(v) and returns it.
// Normalize(IFFT(FFT(c))) recovers c.
func Normalize(v []complex128) []complex128 {
	return engine.Normalize(v)
}
