package cubicperc

import (
	"errors"
	"fmt"
	"math/bits"
	"runtime"
	"time"
)

// ErrInvalidConfig is the sentinel every validateConfig error wraps, so
// callers (notably cmd/cubicperc) can classify a failure as a
// configuration error without string-matching.
var ErrInvalidConfig = errors.New("cubicperc: invalid config")

// Config controls a bond-percolation simulation. Start from
// [DefaultConfig] and override the fields you need.
type Config struct {
	// Probability is the edge-activation probability p, in [0, 1].
	Probability float64

	// CubePow is the cube exponent b; the simulation runs on an
	// L x L x L lattice with L = 1<<CubePow. Must be small enough that
	// L^3 fits in memory at ~12 bytes/site.
	CubePow uint8

	// Threads is the parallelism T for the Parallel Orchestrator. Must
	// be a power of two; 1 means run the Slab Generator sequentially
	// over the whole cube with no seam merges. 0 defaults to the
	// largest power of two <= runtime.NumCPU().
	Threads int

	// CentralSize is the side C of the centred sub-cube the histogram is
	// measured over. Must be <= L. 0 defaults to L (the whole cube).
	CentralSize int

	// Repeats is the number of independent generations (R) to run and
	// fold into one merged Histogram. Must be >= 1. Default: 1.
	Repeats int

	// Source, if non-nil, is called once per worker (once per leaf slab,
	// once per seam, once per repeat) to obtain that worker's RNG. nil
	// defaults to NewPCGSourceFromEntropy, seeding each worker from the
	// system entropy source.
	Source SourceFactory
}

// Result is the output of Simulate: the merged central-volume histogram
// across all repeats, how long generation+histogramming took, and the
// fully-defaulted Config that actually produced it (Threads/CentralSize/
// Repeats/Source resolved from whatever zero values the caller left).
type Result struct {
	Histogram Histogram
	Elapsed   time.Duration
	Config    Config
}

// DefaultConfig returns a Config with reasonable defaults. Probability
// and CubePow have no sensible default and must always be set by the
// caller.
func DefaultConfig() Config {
	return Config{
		Threads: 0,
		Repeats: 1,
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// validateConfig checks cfg's fields and returns a descriptive error if
// any are out of range.
func validateConfig(cfg *Config) error {
	if cfg.Probability < 0 || cfg.Probability > 1 {
		return fmt.Errorf("%w: Probability must be in [0, 1], got %v", ErrInvalidConfig, cfg.Probability)
	}
	if cfg.CubePow == 0 {
		return fmt.Errorf("%w: CubePow must be >= 1, got %d", ErrInvalidConfig, cfg.CubePow)
	}
	if cfg.Threads < 0 || !isPowerOfTwo(cfg.Threads) {
		return fmt.Errorf("%w: Threads must be a power of two >= 1, got %d", ErrInvalidConfig, cfg.Threads)
	}
	l := int(uint32(1) << cfg.CubePow)
	if cfg.CentralSize < 0 || cfg.CentralSize > l {
		return fmt.Errorf("%w: CentralSize must be in [0, %d], got %d", ErrInvalidConfig, l, cfg.CentralSize)
	}
	if cfg.Repeats < 1 {
		return fmt.Errorf("%w: Repeats must be >= 1, got %d", ErrInvalidConfig, cfg.Repeats)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Threads == 0 {
		n := runtime.NumCPU()
		if n < 1 {
			n = 1
		}
		cfg.Threads = 1 << (bits.Len(uint(n)) - 1)
	}
	if cfg.CentralSize == 0 {
		cfg.CentralSize = int(uint32(1) << cfg.CubePow)
	}
	if cfg.Repeats == 0 {
		cfg.Repeats = 1
	}
	if cfg.Source == nil {
		cfg.Source = NewPCGSourceFromEntropy
	}
}

// Simulate runs Config.Repeats independent bond-percolation generations
// on an L x L x L lattice (L = 1<<Config.CubePow) and returns the merged
// central-volume histogram. One Forest allocation is reused across
// repeats via Forest.Reset.
func Simulate(cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	forest, err := NewForest(cfg.CubePow)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	var merged Histogram
	for r := 0; r < cfg.Repeats; r++ {
		if r > 0 {
			forest.Reset()
		}
		GenerateParallel(forest, cfg.CubePow, cfg.Threads, cfg.Probability, cfg.Source)

		h, err := CentralHistogram(forest, cfg.CubePow, cfg.CentralSize, cfg.Threads)
		if err != nil {
			return nil, err
		}
		merged.Merge(h)
	}

	return &Result{Histogram: merged, Elapsed: time.Since(start), Config: cfg}, nil
}
