package mathutil

import (
	"cmp"
	"math"
	"math/bits"
	"slices"
)

// UniformGrid returns n+1 equally spaced abscissas over [lower, upper]:
// x[i] = lower + i*h with h = (upper-lower)/n.
//
// The points are built from the step rather than by linear blending so that
// the values match the classic textbook construction bit for bit.
// For n == 0 the grid is the single point lower; for n < 0 it is empty.
func UniformGrid(lower, upper float64, n int) []float64 {
	if n < 0 {
		return []float64{}
	}
	x := make([]float64, n+1)
	if n == 0 {
		x[0] = lower
		return x
	}
	h := (upper - lower) / float64(n)
	for i := range x {
		x[i] = lower + float64(i)*h
	}
	return x
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns floor(log2(n)) for n > 0 and -1 otherwise.
func Log2(n int) int {
	if n <= 0 {
		return -1
	}
	return bits.Len(uint(n)) - 1
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// FindDuplicate returns the indices of the first pair of exactly equal values
// in x, ordered so that i < j. ok is false when all values are distinct.
// NaN never equals anything, including another NaN.
func FindDuplicate(x []float64) (i, j int, ok bool) {
	if len(x) < minPairLength {
		return 0, 0, false
	}

	order := make([]int, len(x))
	for k := range order {
		order[k] = k
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(x[a], x[b])
	})

	found := false
	for k := 1; k < len(order); k++ {
		a, b := order[k-1], order[k]
		if x[a] != x[b] {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if !found || a < i || (a == i && b < j) {
			i, j, found = a, b, true
		}
	}
	return i, j, found
}

// IndexNaN returns the index of the first NaN in x, or -1.
func IndexNaN(x []float64) int {
	return slices.IndexFunc(x, math.IsNaN)
}

// Contains reports whether v is exactly equal to one of the values in x.
func Contains(x []float64, v float64) bool {
	for _, xi := range x {
		if xi == v {
			return true
		}
	}
	return false
}
