// Package report writes the per-(p, L, C, R) histogram CSV the sweep
// driver produces for each simulation, matching the original layout
// byte-for-byte: a small header block, a blank line, then a second
// header followed by one row per size bucket.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dlozano/cubicperc"
)

// FileName returns the output filename for a given configuration.
func FileName(cfg cubicperc.Config) string {
	l := uint32(1) << cfg.CubePow
	return fmt.Sprintf("cubic_bond_percolation_p_%.10f_centre_%d_size_%d_num_%d.csv",
		cfg.Probability, cfg.CentralSize, l, cfg.Repeats)
}

// WriteHistogram writes h to dir/FileName(cfg), creating dir if it does
// not already exist. Row k's "start size" column is the bucket index+1;
// it aggregates the sites whose root has 2^(k-1) <= |size| < 2^k across
// every repeat folded into h.
func WriteHistogram(dir string, cfg cubicperc.Config, h cubicperc.Histogram) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cubicperc: creating output directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(cfg))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cubicperc: creating %q: %w", path, err)
	}
	defer f.Close()

	l := uint32(1) << cfg.CubePow
	if _, err := fmt.Fprintf(f, "probability, central cube size, simulation size, number of simulations\n"); err != nil {
		return fmt.Errorf("cubicperc: writing %q: %w", path, err)
	}
	if _, err := fmt.Fprintf(f, "%.10f, %d, %d, %d\n\n", cfg.Probability, cfg.CentralSize, l, cfg.Repeats); err != nil {
		return fmt.Errorf("cubicperc: writing %q: %w", path, err)
	}
	if _, err := fmt.Fprintf(f, "start size,number terminated,number still growing\n"); err != nil {
		return fmt.Errorf("cubicperc: writing %q: %w", path, err)
	}

	rows := len(h.Terminated)
	if len(h.Growing) > rows {
		rows = len(h.Growing)
	}
	for k := 0; k < rows; k++ {
		var terminated, growing uint64
		if k < len(h.Terminated) {
			terminated = h.Terminated[k]
		}
		if k < len(h.Growing) {
			growing = h.Growing[k]
		}
		if _, err := fmt.Fprintf(f, "%d, %d, %d\n", k+1, terminated, growing); err != nil {
			return fmt.Errorf("cubicperc: writing %q: %w", path, err)
		}
	}

	return nil
}
