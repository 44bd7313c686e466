package engine

import (
	"github.com/tphakala/go-numerics/internal/mathutil"
	"github.com/tphakala/go-numerics/internal/simdops"
)

// TwiddleMode selects how the powers omega^j are produced in each butterfly.
type TwiddleMode int

const (
	// TwiddleIncremental multiplies the previous power by omega.
	// One complex multiply per twiddle; rounding error grows linearly in j.
	TwiddleIncremental TwiddleMode = iota

	// TwiddlePower raises omega to the j-th power independently for each j.
	TwiddlePower
)

// String returns the mode name.
func (m TwiddleMode) String() string {
	switch m {
	case TwiddleIncremental:
		return "incremental"
	case TwiddlePower:
		return "power"
	default:
		return "unknown"
	}
}

// Transformer computes the inverse discrete Fourier transform of complex
// sequences by recursive radix-2 decimation in time.
//
// The result is unnormalized: v[k] = Σ c[j]·e^{+2πijk/n}, without the 1/n
// factor. A Transformer holds no mutable state and is safe for concurrent use.
type Transformer struct {
	ops      *simdops.Ops
	twiddles TwiddleMode
}

// NewTransformer creates a Transformer. ops selects the vector kernels;
// nil selects the SIMD kernels.
func NewTransformer(ops *simdops.Ops, mode TwiddleMode) *Transformer {
	if ops == nil {
		ops = simdops.SIMD()
	}
	return &Transformer{ops: ops, twiddles: mode}
}

// Inverse returns the unnormalized inverse DFT of c. The input is not modified.
//
// len(c) must be a power of two. Other lengths are not rejected: each odd
// frame drops its last element from the split and leaves the last output slot
// zero, so the values are meaningless but the call does not panic.
func (t *Transformer) Inverse(c []complex128) []complex128 {
	n := len(c)
	switch n {
	case 0:
		return []complex128{}
	case 1:
		return []complex128{c[0]}
	}

	half := n / halfDivisor

	even := make([]complex128, half)
	odd := make([]complex128, half)
	for j := range half {
		even[j] = c[2*j]
		odd[j] = c[2*j+1]
	}

	z1 := t.Inverse(even)
	z2 := t.Inverse(odd)

	omega := mathutil.RootOfUnity(n, mathutil.InverseSign)
	w := make([]complex128, half)
	if t.twiddles == TwiddlePower {
		mathutil.TwiddlesByPower(w, omega)
	} else {
		mathutil.Twiddles(w, omega)
	}

	// w[j] = omega^j * z2[j]
	product := make([]complex128, half)
	t.ops.MulComplex(product, w, z2)

	v := make([]complex128, n)
	for j := range half {
		v[j] = z1[j] + product[j]
		v[j+half] = z1[j] - product[j]
	}

	return v
}

// GetSIMDInfo returns the name of the active kernel backend.
func (t *Transformer) GetSIMDInfo() string {
	return t.ops.Name
}

// Normalize scales v in place by 1/len(v), turning an unnormalized inverse
// transform into the true inverse DFT. It returns v.
func Normalize(v []complex128) []complex128 {
	if len(v) == 0 {
		return v
	}
	scale := complex(1/float64(len(v)), 0)
	for i := range v {
		v[i] *= scale
	}
	return v
}
