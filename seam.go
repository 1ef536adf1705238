package cubicperc

// SeamMerge walks the L^2 face at x = i and, with the same Bernoulli(p)
// used by the generator, unions (i-1,j,k) with (i,j,k). rng is a fresh
// Source independent of any slab generator's stream — seam draws are
// statistically independent of intra-slab draws, so each cross-slab edge
// is sampled exactly once.
//
// SeamMerge must only run once both adjacent subtrees [*, i) and [i, *)
// are fully generated and their own interior seams already merged — the
// Parallel Orchestrator enforces that ordering; SeamMerge itself performs
// no synchronization.
func SeamMerge(f *Forest, b uint8, i uint32, threshold uint64, rng Source) {
	l := uint32(1) << b
	for j := uint32(0); j < l; j++ {
		for k := uint32(0); k < l; k++ {
			if rng.Uint64() < threshold {
				f.Union(encode(Site{X: i - 1, Y: j, Z: k}, b), encode(Site{X: i, Y: j, Z: k}, b))
			}
		}
	}
}

// SeamMergeEdgeSeeded is the edge-seeded variant: the draw for the
// cross-slab edge at (i,j,k) is keyed the same way GenerateSlabEdgeSeeded
// keys a site's -x edge, so the distribution doesn't depend on whether a
// given edge is classified as "interior" or "seam" by a particular
// bisection.
func SeamMergeEdgeSeeded(f *Forest, b uint8, i uint32, threshold uint64, rng *edgeSeededSource) {
	l := uint32(1) << b
	for j := uint32(0); j < l; j++ {
		for k := uint32(0); k < l; k++ {
			rng.ForEdge(i, j, k, edgeDirX)
			if rng.Uint64() < threshold {
				f.Union(encode(Site{X: i - 1, Y: j, Z: k}, b), encode(Site{X: i, Y: j, Z: k}, b))
			}
		}
	}
}
