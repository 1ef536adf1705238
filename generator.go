package cubicperc

import "math"

// edgeDir discriminates the three "already processed" neighbour
// directions a Slab Generator draws against. Only used to key
// EdgeSeededSource draws; ordinary per-worker generation ignores it.
const (
	edgeDirZ uint8 = 0
	edgeDirY uint8 = 1
	edgeDirX uint8 = 2
)

// GenerateSlab walks every site of the x-range [x0, x1) in raster order
// (x outermost, y, z innermost), creates its set, and conditionally
// unions it with its three already-processed neighbours: (x,y,z-1),
// (x,y-1,z), (x-1,y,z). The -x neighbour is clamped to x0 so the slab
// never reaches outside its own range — that edge is deferred to the
// Seam Merger. threshold is floor(2^64 * p); rng is a Source owned
// exclusively by this call (never shared with another concurrent slab).
//
// Three RNG draws happen per site regardless of whether any of them
// triggers a union — dropping a draw when make_set is "the only action"
// would desynchronize a deterministic seed stream from the reference
// sequence.
func GenerateSlab(f *Forest, b uint8, x0, x1 uint32, threshold uint64, rng Source) {
	l := uint32(1) << b
	for x := x0; x < x1; x++ {
		for y := uint32(0); y < l; y++ {
			for z := uint32(0); z < l; z++ {
				site := Site{X: x, Y: y, Z: z}
				idx := encode(site, b)
				f.MakeSet(idx, onBoundary(site, b))

				zPrev := z
				if zPrev > 0 {
					zPrev--
				}
				yPrev := y
				if yPrev > 0 {
					yPrev--
				}
				xPrev := x
				if xPrev > x0 {
					xPrev--
				}

				if rng.Uint64() < threshold {
					f.Union(encode(Site{X: x, Y: y, Z: zPrev}, b), idx)
				}
				if rng.Uint64() < threshold {
					f.Union(encode(Site{X: x, Y: yPrev, Z: z}, b), idx)
				}
				if rng.Uint64() < threshold {
					f.Union(encode(Site{X: xPrev, Y: y, Z: z}, b), idx)
				}
			}
		}
	}
}

// GenerateSlabEdgeSeeded is the edge-seeded variant of GenerateSlab used to
// test sequential/parallel determinism: each Bernoulli draw is keyed by
// the edge's own identity via rng.ForEdge rather than consumed from a
// shared stream, so visiting the same edge from a different slab split
// still yields the same outcome.
func GenerateSlabEdgeSeeded(f *Forest, b uint8, x0, x1 uint32, threshold uint64, rng *edgeSeededSource) {
	l := uint32(1) << b
	for x := x0; x < x1; x++ {
		for y := uint32(0); y < l; y++ {
			for z := uint32(0); z < l; z++ {
				site := Site{X: x, Y: y, Z: z}
				idx := encode(site, b)
				f.MakeSet(idx, onBoundary(site, b))

				zPrev := z
				if zPrev > 0 {
					zPrev--
				}
				yPrev := y
				if yPrev > 0 {
					yPrev--
				}
				xPrev := x
				if xPrev > x0 {
					xPrev--
				}

				rng.ForEdge(x, y, z, edgeDirZ)
				if rng.Uint64() < threshold {
					f.Union(encode(Site{X: x, Y: y, Z: zPrev}, b), idx)
				}
				rng.ForEdge(x, y, z, edgeDirY)
				if rng.Uint64() < threshold {
					f.Union(encode(Site{X: x, Y: yPrev, Z: z}, b), idx)
				}
				rng.ForEdge(x, y, z, edgeDirX)
				if rng.Uint64() < threshold {
					f.Union(encode(Site{X: xPrev, Y: y, Z: z}, b), idx)
				}
			}
		}
	}
}

// Threshold converts a probability p in [0,1] into the integer compared
// against each RNG draw: floor(2^64 * p).
func Threshold(p float64) uint64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return ^uint64(0)
	}
	v := math.Ldexp(p, 64)
	if v >= 18446744073709551615.0 { // this literal rounds to exactly 2^64
		return ^uint64(0)
	}
	return uint64(v)
}
