// Package wavetable synthesizes single-cycle wavetables from harmonic
// amplitudes through the inverse FFT and plays them back with a
// phase-accumulating oscillator.
package wavetable

import (
	"errors"
	"fmt"
	"math"

	numerics "github.com/tphakala/go-numerics"
	"github.com/tphakala/go-numerics/internal/mathutil"
	"github.com/tphakala/go-numerics/internal/simdops"
)

// ErrInvalidHarmonic indicates a harmonic number that the table cannot hold.
var ErrInvalidHarmonic = errors.New("invalid harmonic")

// Harmonic is one sine partial of the waveform.
type Harmonic struct {
	// Number is the multiple of the fundamental, 1 for the fundamental itself.
	Number int

	// Amplitude is the peak amplitude of the partial. Negative values invert
	// its phase.
	Amplitude float64
}

// Build returns one cycle of Σ a_k·sin(2πk·t/size) sampled at size points.
// size must be a power of two and every harmonic number must lie in
// [1, size/2). If the resulting peak exceeds 1 the table is scaled down to
// a peak of 1.
//
// The spectrum is laid out with conjugate symmetry so the inverse transform
// is real: c[k] = -i·a/2 and c[size-k] = +i·a/2.
func Build(size int, harmonics []Harmonic) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("wavetable of size %d: %w", size, numerics.ErrInvalidLength)
	}
	spectrum := make([]complex128, size)
	nyquist := size / halfDivisor
	for _, h := range harmonics {
		if h.Number < 1 || h.Number >= nyquist {
			return nil, fmt.Errorf("%w: harmonic %d outside [1, %d) for a %d-point table",
				ErrInvalidHarmonic, h.Number, nyquist, size)
		}
		half := h.Amplitude / halfDivisor
		spectrum[h.Number] += complex(0, -half)
		spectrum[size-h.Number] += complex(0, half)
	}

	cycle, err := numerics.IFFTChecked(spectrum)
	if err != nil {
		return nil, fmt.Errorf("wavetable of size %d: %w", size, err)
	}

	table := make([]float64, size)
	var peak float64
	for i, v := range cycle {
		if !mathutil.IsFinite(v) {
			return nil, fmt.Errorf("%w: non-finite amplitude", ErrInvalidHarmonic)
		}
		table[i] = real(v)
		peak = max(peak, math.Abs(table[i]))
	}

	if peak > 1 {
		simdops.SIMD().Scale(table, table, 1/peak)
	}
	return table, nil
}
