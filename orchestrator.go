package cubicperc

import "sync"

// SourceFactory produces a fresh, worker-owned RNG Source. GenerateParallel
// calls it once per leaf slab and once per seam.
type SourceFactory func() Source

// GenerateParallel is the Parallel Orchestrator: it recursively bisects
// [0, L) until each subrange has length <= L/threads, runs a Slab
// Generator per leaf range, and on return from each bisection calls the
// Seam Merger for the boundary plane at the bisection midpoint. The
// recursion is structurally identical to merge-sort; every join is a
// synchronous sync.WaitGroup.Wait — no task stealing, no event loop.
//
// threads must be a power of two (validated by the caller); 1 runs a single
// Slab Generator over the whole cube with no seam merge, and bisection
// stops early at slabs one x-plane wide when threads exceeds L. A worker
// that panics has its panic captured and re-raised at the nearest join
// point once both siblings have finished, so an aborted worker fails the
// whole simulation rather than the process silently losing a goroutine.
func GenerateParallel(f *Forest, b uint8, threads int, p float64, newSource SourceFactory) {
	threshold := Threshold(p)
	l := uint32(1) << b
	bisect(f, b, 0, l, threads, threshold, newSource)
}

func bisect(f *Forest, b uint8, start, end uint32, threadsRemaining int, threshold uint64, newSource SourceFactory) {
	if threadsRemaining <= 1 || end-start <= 1 {
		GenerateSlab(f, b, start, end, threshold, newSource())
		return
	}

	mid := start + (end-start)/2

	var wg sync.WaitGroup
	var panicA, panicB any
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer captureP(&panicA)
		bisect(f, b, start, mid, threadsRemaining/2, threshold, newSource)
	}()
	go func() {
		defer wg.Done()
		defer captureP(&panicB)
		bisect(f, b, mid, end, threadsRemaining/2, threshold, newSource)
	}()
	wg.Wait()

	if panicA != nil {
		panic(panicA)
	}
	if panicB != nil {
		panic(panicB)
	}

	SeamMerge(f, b, mid, threshold, newSource())
}

func captureP(dst *any) {
	if r := recover(); r != nil {
		*dst = r
	}
}

// GenerateParallelEdgeSeeded is GenerateParallel's edge-seeded counterpart:
// every leaf slab and every seam draws from its own *edgeSeededSource
// sharing baseSeed, so the outcome of a given lattice edge depends only on
// its own identity and not on which worker or bisection visited it. This
// is what makes GenerateParallelEdgeSeeded(..., threads=T, baseSeed) and
// GenerateParallelEdgeSeeded(..., threads=1, baseSeed) produce the same
// partition into components, with the same signed root sizes, for any T.
// Root indices and parent links can still differ, because union order (and
// so the size tie-break) depends on the bisection.
func GenerateParallelEdgeSeeded(f *Forest, b uint8, threads int, p float64, baseSeed uint64) {
	threshold := Threshold(p)
	l := uint32(1) << b
	bisectEdgeSeeded(f, b, 0, l, threads, threshold, baseSeed)
}

func bisectEdgeSeeded(f *Forest, b uint8, start, end uint32, threadsRemaining int, threshold uint64, baseSeed uint64) {
	if threadsRemaining <= 1 || end-start <= 1 {
		GenerateSlabEdgeSeeded(f, b, start, end, threshold, EdgeSeededSource(baseSeed))
		return
	}

	mid := start + (end-start)/2

	var wg sync.WaitGroup
	var panicA, panicB any
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer captureP(&panicA)
		bisectEdgeSeeded(f, b, start, mid, threadsRemaining/2, threshold, baseSeed)
	}()
	go func() {
		defer wg.Done()
		defer captureP(&panicB)
		bisectEdgeSeeded(f, b, mid, end, threadsRemaining/2, threshold, baseSeed)
	}()
	wg.Wait()

	if panicA != nil {
		panic(panicA)
	}
	if panicB != nil {
		panic(panicB)
	}

	SeamMergeEdgeSeeded(f, b, mid, threshold, EdgeSeededSource(baseSeed))
}
