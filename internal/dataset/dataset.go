// Package dataset loads interpolation sample sets and transform input
// sequences from TOML or YAML files.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Errors returned by the loaders.
var (
	// ErrUnsupportedFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported data file format")

	// ErrMalformed indicates a file that decodes but does not describe a usable data set.
	ErrMalformed = errors.New("malformed data file")
)

// Point is a single sample (x, y).
type Point struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
}

// Uniform describes n+1 equally spaced samples over [Lower, Upper].
type Uniform struct {
	Lower float64   `toml:"lower" yaml:"lower"`
	Upper float64   `toml:"upper" yaml:"upper"`
	N     int       `toml:"n" yaml:"n"`
	Y     []float64 `toml:"y" yaml:"y"`
}

// Samples is an interpolation data set. Either X and Y or Uniform describe
// the initial sample points. Add lists points appended one at a time after
// the build, At the points to evaluate.
//
// TOML example:
//
//	x = [1.0, 3.0]
//	y = [-2.0, -2.0]
//	at = [4.0]
//
//	[[add]]
//	x = 1.5
//	y = 5.0
type Samples struct {
	X       []float64 `toml:"x" yaml:"x"`
	Y       []float64 `toml:"y" yaml:"y"`
	Uniform *Uniform  `toml:"uniform" yaml:"uniform"`
	Add     []Point   `toml:"add" yaml:"add"`
	At      []float64 `toml:"at" yaml:"at"`
}

// Validate checks the structural consistency of the data set. Numerical
// problems such as duplicate abscissas are left to the interpolator.
func (s *Samples) Validate() error {
	if s.Uniform != nil {
		if len(s.X) > 0 || len(s.Y) > 0 {
			return fmt.Errorf("%w: both x/y and uniform given", ErrMalformed)
		}
		if s.Uniform.N < 0 {
			return fmt.Errorf("%w: uniform grid size n=%d is negative", ErrMalformed, s.Uniform.N)
		}
		if len(s.Uniform.Y) != s.Uniform.N+1 {
			return fmt.Errorf("%w: uniform grid has %d points, got %d ordinates",
				ErrMalformed, s.Uniform.N+1, len(s.Uniform.Y))
		}
		return nil
	}

	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: %d abscissas, %d ordinates", ErrMalformed, len(s.X), len(s.Y))
	}
	if len(s.X) == 0 && len(s.Add) == 0 {
		return fmt.Errorf("%w: no sample points", ErrMalformed)
	}
	return nil
}

// Sequence is a complex transform input given as separate real and
// imaginary parts. A missing imaginary part is zero.
type Sequence struct {
	Re []float64 `toml:"re" yaml:"re"`
	Im []float64 `toml:"im" yaml:"im"`
}

// Validate checks the structural consistency of the sequence.
func (s *Sequence) Validate() error {
	if len(s.Im) > 0 && len(s.Im) != len(s.Re) {
		return fmt.Errorf("%w: %d real parts, %d imaginary parts", ErrMalformed, len(s.Re), len(s.Im))
	}
	return nil
}

// Complex returns the sequence as complex values.
func (s *Sequence) Complex() []complex128 {
	c := make([]complex128, len(s.Re))
	for i, re := range s.Re {
		var im float64
		if i < len(s.Im) {
			im = s.Im[i]
		}
		c[i] = complex(re, im)
	}
	return c
}

// LoadSamples reads an interpolation data set from a TOML or YAML file.
func LoadSamples(path string) (*Samples, error) {
	var s Samples
	if err := decodeFile(path, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// LoadSequence reads a transform input sequence from a TOML or YAML file.
func LoadSequence(path string) (*Sequence, error) {
	var s Sequence
	if err := decodeFile(path, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// decodeFile decodes path into v, choosing the decoder by file extension.
func decodeFile(path string, v any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, v); err != nil {
			return fmt.Errorf("failed to decode TOML %s: %w", path, err)
		}
		return nil

	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to decode YAML %s: %w", path, err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q (want .toml, .yaml or .yml)", ErrUnsupportedFormat, ext)
	}
}
