// Package commands holds the cubicperc CLI's cobra command tree.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/dlozano/cubicperc"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubicperc",
	Short: "Bond percolation Monte Carlo on a 3D cubic lattice",
	Long: `cubicperc estimates the critical probability of bond percolation
on the 3D cubic lattice by running a memory-compact parallel
disjoint-set-union simulation and histogramming cluster sizes over a
centred sub-cube.`,
}

// Execute runs the command tree and maps the error taxonomy to an exit
// code: 0 success, 1 configuration error, 2 resource error, 3 anything
// else (I/O, sweep config parsing, etc).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, cubicperc.ErrInvalidConfig):
		return 1
	case errors.Is(err, cubicperc.ErrResourceLimit):
		return 2
	case err != nil:
		return 3
	default:
		return 0
	}
}
