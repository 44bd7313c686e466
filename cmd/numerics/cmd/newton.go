package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	numerics "github.com/tphakala/go-numerics"
	"github.com/tphakala/go-numerics/internal/dataset"
)

// errAddNeedsNewton is returned when points are appended to a method that
// cannot grow incrementally.
var errAddNeedsNewton = errors.New("--add requires the newton method")

type newtonOptions struct {
	global *globalOptions

	x, y         string
	lower, upper float64
	n            int
	file         string
	add          []string
	at           []string
	strict       bool
	method       string
}

func newNewtonCmd(global *globalOptions) *cobra.Command {
	opts := &newtonOptions{global: global}

	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Build, extend and evaluate an interpolating polynomial",
		Long: `Builds an interpolator from sample points and evaluates it.

Samples come from --x/--y, from a uniform grid (--lower/--upper/--n with
--y), or from a TOML/YAML file (--file). Points given with --add are
appended one at a time after the build.

Examples:
  numerics newton --x 1,3 --y -2,-2 --add 1.5:5 --at 4
  numerics newton --lower 0 --upper 2 --n 4 --y 0,0.25,1,2.25,4 --at 1.25
  numerics newton --file samples.toml --strict
  numerics newton --method spline --x 0,1,2,3 --y 0,1,0,1 --at 1.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNewton(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.x, "x", "", "Comma-separated abscissas")
	cmd.Flags().StringVar(&opts.y, "y", "", "Comma-separated ordinates")
	cmd.Flags().Float64Var(&opts.lower, "lower", 0, "Lower bound of a uniform grid")
	cmd.Flags().Float64Var(&opts.upper, "upper", 1, "Upper bound of a uniform grid")
	cmd.Flags().IntVar(&opts.n, "n", 0, "Number of grid intervals (n+1 points); enables the uniform grid")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "TOML or YAML sample file")
	cmd.Flags().StringArrayVar(&opts.add, "add", nil, "Point x:y to append after the build (repeatable)")
	cmd.Flags().StringArrayVar(&opts.at, "at", nil, "Evaluation point(s), comma-separated (repeatable)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject mismatched lengths and duplicate abscissas")
	cmd.Flags().StringVarP(&opts.method, "method", "m", "newton", "Interpolation method: newton, linear, spline")

	return cmd
}

// samples merges the file and the flags into one data set.
func (o *newtonOptions) samples(cmd *cobra.Command) (*dataset.Samples, error) {
	s := &dataset.Samples{}
	if o.file != "" {
		loaded, err := dataset.LoadSamples(o.file)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	y, err := parseFloats(o.y)
	if err != nil {
		return nil, fmt.Errorf("--y: %w", err)
	}

	switch {
	case cmd.Flags().Changed("n"):
		s.X, s.Y = nil, nil
		s.Uniform = &dataset.Uniform{Lower: o.lower, Upper: o.upper, N: o.n, Y: y}
	case o.x != "" || o.y != "":
		x, err := parseFloats(o.x)
		if err != nil {
			return nil, fmt.Errorf("--x: %w", err)
		}
		s.X, s.Y, s.Uniform = x, y, nil
	}

	for _, p := range o.add {
		px, py, err := parsePoint(p)
		if err != nil {
			return nil, fmt.Errorf("--add: %w", err)
		}
		s.Add = append(s.Add, dataset.Point{X: px, Y: py})
	}

	at, err := parseFloatFlags(o.at)
	if err != nil {
		return nil, fmt.Errorf("--at: %w", err)
	}
	s.At = append(s.At, at...)

	return s, nil
}

func runNewton(cmd *cobra.Command, opts *newtonOptions) error {
	s, err := opts.samples(cmd)
	if err != nil {
		return err
	}

	method, err := numerics.ParseMethod(opts.method)
	if err != nil {
		return err
	}

	interp, err := numerics.New(&numerics.Config{
		Method:     method,
		Strict:     opts.strict,
		EnableSIMD: true,
	})
	if err != nil {
		return err
	}

	switch {
	case s.Uniform != nil:
		if opts.global.verbose {
			log.Printf("Uniform grid: [%g, %g], n=%d", s.Uniform.Lower, s.Uniform.Upper, s.Uniform.N)
		}
		err = interp.InitUniform(s.Uniform.Lower, s.Uniform.Upper, s.Uniform.N, s.Uniform.Y)
	case len(s.X) > 0 || len(s.Y) > 0 || method != numerics.MethodNewton:
		if opts.global.verbose {
			log.Printf("Samples: %d points", len(s.X))
		}
		err = interp.Init(s.X, s.Y)
	}
	if err != nil {
		return fmt.Errorf("%v build failed: %w", method, err)
	}

	if len(s.Add) > 0 {
		p, ok := interp.(*numerics.Newton)
		if !ok {
			return fmt.Errorf("%w, got %v", errAddNeedsNewton, method)
		}
		for _, pt := range s.Add {
			before := p.Len()
			p.AddSamplingPoint(pt.X, pt.Y)
			if opts.global.verbose {
				if p.Len() == before {
					log.Printf("Skipped (%g, %g): abscissa already present", pt.X, pt.Y)
				} else {
					log.Printf("Added (%g, %g)", pt.X, pt.Y)
				}
			}
		}
	}

	printInterpolator(cmd.OutOrStdout(), interp, s.At)
	return nil
}

// printInterpolator writes the state of interp and its values at zs.
func printInterpolator(w io.Writer, interp numerics.Interpolator, zs []float64) {
	info := numerics.GetInfo(interp)
	_, _ = fmt.Fprintf(w, "method: %s (%d points)\n", info.Method, info.Points)

	if p, ok := interp.(*numerics.Newton); ok {
		_, _ = fmt.Fprintf(w, "abscissas: %v\n", p.Abscissas())
		_, _ = fmt.Fprintf(w, "coefficients: %v\n", p.Coefficients())
		_, _ = fmt.Fprintf(w, "divided differences: %v\n", p.DividedDifferences())
	}

	values := numerics.EvaluateAll(interp, zs)
	for i, z := range zs {
		_, _ = fmt.Fprintf(w, "p(%g) = %.15g\n", z, values[i])
	}
}
