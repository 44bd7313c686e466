// Command numerics exposes Newton interpolation, the inverse FFT and
// wavetable synthesis on the command line.
package main

import (
	"os"

	"github.com/tphakala/go-numerics/cmd/numerics/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
