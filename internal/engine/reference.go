package engine

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Forward computes the unnormalized forward DFT X[k] = Σ c[j]·e^{-2πijk/n}
// with gonum's mixed-radix FFT. Any length is accepted.
//
// Forward(Inverse(c)) equals len(c)·c, which is how callers check the sign
// convention and the missing 1/n of the inverse transform.
func Forward(c []complex128) []complex128 {
	if len(c) == 0 {
		return []complex128{}
	}
	fft := fourier.NewCmplxFFT(len(c))
	return fft.Coefficients(nil, c)
}

// ReferenceInverse computes the unnormalized inverse DFT with gonum.
// It agrees with Transformer.Inverse for power-of-two lengths and is used to
// cross-check it.
func ReferenceInverse(c []complex128) []complex128 {
	if len(c) == 0 {
		return []complex128{}
	}
	fft := fourier.NewCmplxFFT(len(c))
	return fft.Sequence(nil, c)
}

// MaxDeviation returns max |a[i]-b[i]| over the common prefix of a and b.
func MaxDeviation(a, b []complex128) float64 {
	n := min(len(a), len(b))
	var worst float64
	for i := range n {
		worst = max(worst, cmplx.Abs(a[i]-b[i]))
	}
	return worst
}
