package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	numerics "github.com/tphakala/go-numerics"
	"github.com/tphakala/go-numerics/internal/dataset"
	"github.com/tphakala/go-numerics/internal/engine"
	"github.com/tphakala/go-numerics/internal/mathutil"
)

// errVerifyFailed is returned when the forward transform does not recover the input.
var errVerifyFailed = errors.New("round-trip verification failed")

// verifyTolerance is the allowed round-trip deviation per element of input length.
const verifyTolerance = 1e-9

type ifftOptions struct {
	global *globalOptions

	re, im    string
	file      string
	normalize bool
	strict    bool
	verify    bool
	pad       bool
	twiddles  string
}

func newIFFTCmd(global *globalOptions) *cobra.Command {
	opts := &ifftOptions{global: global}

	cmd := &cobra.Command{
		Use:   "ifft",
		Short: "Inverse discrete Fourier transform of a complex sequence",
		Long: `Computes v[k] = Σ c[j]·e^{+2πijk/n} by recursive radix-2 decimation.
The result is unnormalized unless --normalize is given.

Examples:
  numerics ifft --re 1,1,1,1
  numerics ifft --re 0,1,0,0 --im 0,0,0,0 --normalize
  numerics ifft --file sequence.yaml --strict --verify
  numerics ifft --re 1,2,3 --pad`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIFFT(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.re, "re", "", "Comma-separated real parts")
	cmd.Flags().StringVar(&opts.im, "im", "", "Comma-separated imaginary parts (default all zero)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "TOML or YAML sequence file")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "Scale the result by 1/n")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject lengths that are not a power of two")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Check the result with the forward transform")
	cmd.Flags().BoolVar(&opts.pad, "pad", false, "Zero-pad the input to the next power of two")
	cmd.Flags().StringVar(&opts.twiddles, "twiddles", "incremental", "Twiddle generation: incremental, power")

	return cmd
}

func (o *ifftOptions) sequence() (*dataset.Sequence, error) {
	if o.file != "" && o.re == "" {
		return dataset.LoadSequence(o.file)
	}

	re, err := parseFloats(o.re)
	if err != nil {
		return nil, fmt.Errorf("--re: %w", err)
	}
	im, err := parseFloats(o.im)
	if err != nil {
		return nil, fmt.Errorf("--im: %w", err)
	}

	s := &dataset.Sequence{Re: re, Im: im}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseTwiddleMode(name string) (numerics.TwiddleMode, error) {
	switch name {
	case numerics.TwiddleIncremental.String():
		return numerics.TwiddleIncremental, nil
	case numerics.TwiddlePower.String():
		return numerics.TwiddlePower, nil
	default:
		return 0, fmt.Errorf("unknown twiddle mode %q (want incremental or power)", name)
	}
}

func runIFFT(cmd *cobra.Command, opts *ifftOptions) error {
	seq, err := opts.sequence()
	if err != nil {
		return err
	}

	mode, err := parseTwiddleMode(opts.twiddles)
	if err != nil {
		return err
	}

	tr, err := numerics.NewTransform(&numerics.TransformConfig{
		Normalize:  opts.normalize,
		Strict:     opts.strict,
		Twiddles:   mode,
		EnableSIMD: true,
	})
	if err != nil {
		return err
	}

	c := seq.Complex()
	if opts.pad {
		c = padToPowerOfTwo(c)
	}
	if opts.global.verbose {
		log.Printf("Input: %d values, twiddles=%v, normalize=%v", len(c), mode, opts.normalize)
		log.Printf("Recursion depth: %d, kernels: %s", mathutil.Log2(len(c)), tr.GetSIMDInfo())
	}

	v, err := tr.Inverse(c)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for k := range v {
		_, _ = fmt.Fprintf(out, "v[%d] = %v\n", k, v[k])
	}

	if !opts.verify {
		return nil
	}

	dev := roundTripDeviation(c, v, opts.normalize)
	_, _ = fmt.Fprintf(out, "max round-trip deviation: %.3e\n", dev)
	if dev > verifyTolerance*float64(max(len(c), 1)) {
		return fmt.Errorf("%w: deviation %.3e", errVerifyFailed, dev)
	}
	return nil
}

// padToPowerOfTwo appends zeros to c up to the next power of two.
func padToPowerOfTwo(c []complex128) []complex128 {
	n := mathutil.NextPowerOfTwo(len(c))
	if n == len(c) {
		return c
	}
	padded := make([]complex128, n)
	copy(padded, c)
	return padded
}

// roundTripDeviation returns max |FFT(v)[k] - s·c[k]| where s is 1 for a
// normalized inverse and n otherwise.
func roundTripDeviation(c, v []complex128, normalized bool) float64 {
	scale := complex(float64(len(c)), 0)
	if normalized {
		scale = 1
	}

	want := make([]complex128, len(c))
	for k := range c {
		want[k] = scale * c[k]
	}
	return engine.MaxDeviation(numerics.FFT(v), want)
}
