// Package cubicperc estimates the critical probability of bond
// percolation on the 3D cubic lattice by Monte Carlo simulation.
//
// For a chosen edge-activation probability p and a cubic domain of side
// L = 1<<b, Simulate generates a random edge configuration (each of the
// ~3L^3 grid edges present independently with probability p), identifies
// the connected components ("clusters") of sites, and tabulates their
// size distribution in a centred sub-volume — separating clusters that
// terminate inside the box from clusters still touching its outer face.
//
// Basic usage:
//
//	cfg := cubicperc.DefaultConfig()
//	cfg.Probability = 0.2488
//	cfg.CubePow = 9 // L = 512
//	cfg.CentralSize = 32
//	cfg.Repeats = 20
//	result, err := cubicperc.Simulate(cfg)
//	// result.Histogram.Terminated[k] / .Growing[k] count central-volume
//	// sites whose root has 2^k <= |size| < 2^(k+1), split by whether the
//	// root touches the outer boundary.
//
// # Generation
//
// Simulate builds the lattice with the Parallel Orchestrator
// (GenerateParallel): it recursively bisects the cube along x until each
// leaf slab is thin enough for one worker, runs a Slab Generator per leaf,
// and seam-merges adjacent slabs at every bisection join on the way back
// up. Set Config.Threads to 1 to force fully sequential generation.
//
// This package only implements the clustering engine. Sweeping many p
// values, writing CSV output, and timing a batch of runs are driver
// concerns, not package cubicperc's — see cmd/cubicperc.
package cubicperc
