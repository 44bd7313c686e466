package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/tphakala/go-numerics/internal/wavetable"
)

// parseFloats parses a comma-separated list of numbers such as "1, 3,-2.5".
// An empty string yields an empty list.
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := cast.ToFloat64E(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// parseFloatFlags parses a repeatable flag whose values may themselves be
// comma-separated lists.
func parseFloatFlags(values []string) ([]float64, error) {
	var out []float64
	for _, s := range values {
		v, err := parseFloats(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v...)
	}
	return out, nil
}

// splitPair splits "a:b" into its two trimmed halves.
func splitPair(s string) (a, b string, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return "", "", fmt.Errorf("invalid pair %q (want a:b)", s)
	}
	return strings.TrimSpace(a), strings.TrimSpace(b), nil
}

// parsePoint parses a sample point written as "x:y".
func parsePoint(s string) (x, y float64, err error) {
	xs, ys, err := splitPair(s)
	if err != nil {
		return 0, 0, err
	}
	if x, err = cast.ToFloat64E(xs); err != nil {
		return 0, 0, fmt.Errorf("invalid abscissa in %q: %w", s, err)
	}
	if y, err = cast.ToFloat64E(ys); err != nil {
		return 0, 0, fmt.Errorf("invalid ordinate in %q: %w", s, err)
	}
	return x, y, nil
}

// parseHarmonic parses a partial written as "number:amplitude".
func parseHarmonic(s string) (wavetable.Harmonic, error) {
	ks, as, err := splitPair(s)
	if err != nil {
		return wavetable.Harmonic{}, err
	}
	k, err := cast.ToIntE(ks)
	if err != nil {
		return wavetable.Harmonic{}, fmt.Errorf("invalid harmonic number in %q: %w", s, err)
	}
	amp, err := cast.ToFloat64E(as)
	if err != nil {
		return wavetable.Harmonic{}, fmt.Errorf("invalid amplitude in %q: %w", s, err)
	}
	return wavetable.Harmonic{Number: k, Amplitude: amp}, nil
}
