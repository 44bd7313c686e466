package wavetable

import (
	"errors"
	"fmt"
	"math"
	"strings"

	numerics "github.com/tphakala/go-numerics"
	"gonum.org/v1/gonum/floats"
)

// Oscillator errors.
var (
	// ErrEmptyTable indicates a wavetable without samples.
	ErrEmptyTable = errors.New("empty wavetable")

	// ErrInvalidFrequency indicates a playback frequency outside [0, rate/2)
	// or a non-positive sample rate.
	ErrInvalidFrequency = errors.New("invalid frequency")
)

// Interpolation selects how the oscillator reads between table samples.
type Interpolation int

const (
	// InterpLinear joins neighbouring table samples with straight lines.
	InterpLinear Interpolation = iota

	// InterpSpline reads a natural cubic spline fitted through the whole table.
	InterpSpline

	// InterpNewton reads a cubic Newton polynomial through the 4 table
	// samples around the read position.
	InterpNewton
)

// String returns the interpolation name as accepted by ParseInterpolation.
func (i Interpolation) String() string {
	switch i {
	case InterpLinear:
		return "linear"
	case InterpSpline:
		return "spline"
	case InterpNewton:
		return "newton"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// ParseInterpolation returns the interpolation with the given name.
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(name) {
	case "linear":
		return InterpLinear, nil
	case "spline":
		return InterpSpline, nil
	case "newton":
		return InterpNewton, nil
	default:
		return 0, fmt.Errorf("unknown interpolation %q (want linear, spline or newton)", name)
	}
}

// reader returns the table value at a fractional index in [0, size).
type reader interface {
	read(pos float64) float64
}

// fittedReader evaluates one interpolator fitted over the table with a few
// wrapped samples on each side.
type fittedReader struct {
	interp numerics.Interpolator
}

func newFittedReader(table []float64, method numerics.Method) (*fittedReader, error) {
	size := len(table)
	n := size + 2*splinePadding

	x := floats.Span(make([]float64, n), -splinePadding, float64(size+splinePadding-1))
	y := make([]float64, n)
	for i := range y {
		y[i] = table[wrap(i-splinePadding, size)]
	}

	interp, err := numerics.New(&numerics.Config{Method: method, Strict: true})
	if err != nil {
		return nil, err
	}
	if err := interp.Init(x, y); err != nil {
		return nil, fmt.Errorf("failed to fit %v reader: %w", method, err)
	}
	return &fittedReader{interp: interp}, nil
}

func (r *fittedReader) read(pos float64) float64 {
	return r.interp.Evaluate(pos)
}

// newtonReader rebuilds a cubic Newton polynomial on each read from the
// samples at offsets -1, 0, 1, 2 around the read position.
type newtonReader struct {
	table  []float64
	poly   numerics.Interpolator
	window [localNewtonPoints]float64
}

func newNewtonReader(table []float64) (*newtonReader, error) {
	poly, err := numerics.New(&numerics.Config{Method: numerics.MethodNewton, EnableSIMD: true})
	if err != nil {
		return nil, err
	}
	return &newtonReader{table: table, poly: poly}, nil
}

func (r *newtonReader) read(pos float64) float64 {
	base := math.Floor(pos)
	i := int(base)
	for k := range r.window {
		r.window[k] = r.table[wrap(i-1+k, len(r.table))]
	}
	// abscissas -1..2 relative to base; the grid is never degenerate
	_ = r.poly.InitUniform(-1, localNewtonPoints-2, localNewtonPoints-1, r.window[:])
	return r.poly.Evaluate(pos - base)
}

// Oscillator plays a single-cycle wavetable at a fixed frequency.
// An Oscillator is not safe for concurrent use.
type Oscillator struct {
	reader reader
	size   float64
	phase  float64 // read position in table samples, [0, size)
	step   float64 // table samples per output sample
}

// NewOscillator creates an oscillator reading table at freq Hz for output at
// sampleRate Hz. The table is not copied and must not be modified while the
// oscillator is in use.
func NewOscillator(table []float64, freq, sampleRate float64, interp Interpolation) (*Oscillator, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %v must be positive", ErrInvalidFrequency, sampleRate)
	}
	if freq < 0 || freq >= sampleRate/halfDivisor {
		return nil, fmt.Errorf("%w: %v Hz outside [0, %v) at %v Hz",
			ErrInvalidFrequency, freq, sampleRate/halfDivisor, sampleRate)
	}

	var (
		r   reader
		err error
	)
	switch interp {
	case InterpLinear:
		r, err = newFittedReader(table, numerics.MethodLinear)
	case InterpSpline:
		r, err = newFittedReader(table, numerics.MethodCubicSpline)
	case InterpNewton:
		r, err = newNewtonReader(table)
	default:
		err = fmt.Errorf("unknown interpolation %d", int(interp))
	}
	if err != nil {
		return nil, err
	}

	size := float64(len(table))
	return &Oscillator{
		reader: r,
		size:   size,
		step:   freq * size / sampleRate,
	}, nil
}

// Next returns the next output sample and advances the phase.
func (o *Oscillator) Next() float64 {
	v := o.reader.read(o.phase)
	o.phase += o.step
	if o.phase >= o.size {
		o.phase = math.Mod(o.phase, o.size)
	}
	return v
}

// Render returns the next n output samples.
func (o *Oscillator) Render(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = o.Next()
	}
	return out
}

// Reset rewinds the oscillator to the start of the cycle.
func (o *Oscillator) Reset() {
	o.phase = 0
}

// wrap maps any index onto [0, size).
func wrap(i, size int) int {
	i %= size
	if i < 0 {
		i += size
	}
	return i
}
