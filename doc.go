// Package numerics provides polynomial interpolation and a radix-2 inverse
// discrete Fourier transform in pure Go.
//
// # Features
//
//   - Newton-form polynomial interpolation with O(n) incremental extension
//   - Linear and natural cubic spline interpolation behind the same interface
//   - Recursive radix-2 inverse FFT with selectable twiddle generation
//   - Optional SIMD acceleration (AVX2/SSE/NEON) via github.com/tphakala/simd
//   - Permissive fast paths and opt-in strict validation with sentinel errors
//
// # Quick Start
//
// Interpolating a few points and extending the set:
//
//	p := numerics.NewNewton([]float64{1, 3}, []float64{-2, -2})
//	p.AddSamplingPoint(1.5, 5)
//	fmt.Println(p.Evaluate(4)) // -30
//
// Choosing a method through the common interface:
//
//	interp, err := numerics.New(&numerics.Config{
//	    Method: numerics.MethodCubicSpline,
//	    Strict: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := interp.Init(x, y); err != nil {
//	    log.Fatal(err)
//	}
//	v := interp.Evaluate(0.5)
//
// Inverse transform of a power-of-two length sequence:
//
//	v := numerics.IFFT(c)             // unnormalized
//	x := numerics.Normalize(numerics.IFFT(numerics.FFT(x0))) // recovers x0
//
// # Validation
//
// By default inputs are not validated. Newton interpolation of duplicate
// abscissas yields Inf/NaN coefficients and IFFT of a length that is not a
// power of two yields meaningless values, but neither panics. Strict mode
// ([Config.Strict], [NewStrictNewton], [TransformConfig.Strict],
// [IFFTChecked]) rejects such input with [ErrDimensionMismatch],
// [ErrDuplicateAbscissa] or [ErrInvalidLength], which can be matched with
// errors.Is.
//
// Adding a point whose abscissa is already in the set is always a no-op.
//
// # Thread Safety
//
// Interpolators are NOT safe for concurrent use; they keep a scratch buffer
// for evaluation. A [Transform] is immutable and can be shared.
package numerics
