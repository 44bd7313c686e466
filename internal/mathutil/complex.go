// Package mathutil provides the scalar and complex helpers shared by the
// interpolation and transform engines.
package mathutil

import (
	"math"
	"math/cmplx"
)

// FromPolar returns magnitude·(cos(angle) + i·sin(angle)).
func FromPolar(magnitude, angle float64) complex128 {
	return cmplx.Rect(magnitude, angle)
}

// Power raises z to the non-negative integer power k using binary
// exponentiation. Power(z, 0) is 1 for every z, including 0.
// Negative k is treated as 0.
func Power(z complex128, k int) complex128 {
	result := complex(1, 0)
	base := z
	for k > 0 {
		if k&1 == 1 {
			result *= base
		}
		base *= base
		k >>= 1
	}
	return result
}

// RootOfUnity returns the primitive n-th root of unity e^{sign·2πi/n}.
// sign is +1 for inverse transforms and -1 for forward transforms.
func RootOfUnity(n int, sign float64) complex128 {
	return FromPolar(1, sign*fullTurn/float64(n))
}

// Twiddles fills dst with successive powers omega^0 .. omega^(len(dst)-1).
// Each power is the previous one times omega.
func Twiddles(dst []complex128, omega complex128) {
	w := complex(1, 0)
	for j := range dst {
		dst[j] = w
		w *= omega
	}
}

// TwiddlesByPower fills dst with omega^j computed independently per index.
func TwiddlesByPower(dst []complex128, omega complex128) {
	for j := range dst {
		dst[j] = Power(omega, j)
	}
}

// IsFinite reports whether both parts of z are finite.
func IsFinite(z complex128) bool {
	return !math.IsNaN(real(z)) && !math.IsNaN(imag(z)) &&
		!math.IsInf(real(z), 0) && !math.IsInf(imag(z), 0)
}
