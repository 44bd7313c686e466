// Package cmd implements the numerics command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

// globalOptions holds flags shared by all subcommands.
type globalOptions struct {
	verbose bool
}

// newRootCmd builds the command tree. Each call returns independent flag
// state so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "numerics",
		Short: "Polynomial interpolation and inverse FFT tools",
		Long: `numerics builds Newton interpolating polynomials, computes radix-2
inverse discrete Fourier transforms and synthesizes wavetables from
harmonic spectra.

Commands:
  newton     - build, extend and evaluate an interpolating polynomial
  ifft       - inverse transform of a complex sequence
  wavetable  - render a harmonic wavetable oscillator to WAV`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newNewtonCmd(opts))
	rootCmd.AddCommand(newIFFTCmd(opts))
	rootCmd.AddCommand(newWavetableCmd(opts))

	return rootCmd
}

// Execute runs the command tree with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}
