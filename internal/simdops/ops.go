// Package simdops provides the vector kernels used by the interpolation and
// transform engines, with a SIMD-backed and a pure Go variant.
//
// With Profile-Guided Optimization (Go 1.22+), function pointer calls in hot paths
// can be devirtualized and inlined, achieving near-zero overhead.
package simdops

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops bundles the kernels an engine needs.
// Function pointers let the engines stay agnostic of the SIMD backend.
type Ops struct {
	// DotProduct returns Σ a[i]*b[i] over the shorter of the two slices.
	DotProduct func(a, b []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// MulComplex computes the element-wise product dst[i] = a[i] * b[i].
	MulComplex func(dst, a, b []complex128)

	// Name describes the backend, e.g. the detected instruction set.
	Name string
}

// Pre-instantiated operations for each backend.
// These are package-level variables to avoid repeated allocation.
var (
	simdOps = Ops{
		DotProduct: f64.DotProduct,
		Scale:      f64.Scale,
		MulComplex: c128.Mul,
	}
	genericOps = Ops{
		DotProduct: dotProductGeneric,
		Scale:      scaleGeneric,
		MulComplex: mulComplexGeneric,
		Name:       GenericName,
	}
)

// GenericName is the backend name reported by the pure Go kernels.
const GenericName = "generic"

func init() {
	simdOps.Name = cpu.Info()
}

// For returns the SIMD kernels when enableSIMD is true and the pure Go
// kernels otherwise.
func For(enableSIMD bool) *Ops {
	if enableSIMD {
		return &simdOps
	}
	return &genericOps
}

// SIMD returns the tphakala/simd backed kernels.
// Convenience function for code that always wants acceleration.
func SIMD() *Ops {
	return &simdOps
}

// Generic returns the pure Go kernels.
func Generic() *Ops {
	return &genericOps
}

// IsSIMD reports whether ops is the SIMD backend.
func (o *Ops) IsSIMD() bool {
	return o == &simdOps
}

func dotProductGeneric(a, b []float64) float64 {
	n := min(len(a), len(b))
	var sum float64
	for i := range n {
		sum += a[i] * b[i]
	}
	return sum
}

func scaleGeneric(dst, a []float64, s float64) {
	n := min(len(dst), len(a))
	for i := range n {
		dst[i] = a[i] * s
	}
}

func mulComplexGeneric(dst, a, b []complex128) {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] * b[i]
	}
}
