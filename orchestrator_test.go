package cubicperc

import "testing"

func TestGenerateParallel_POneConnectsWholeCube(t *testing.T) {
	const b = 3 // L = 8
	f := newTestForest(t, b)
	n := uint64(f.Len())

	factory := func() Source { return constSource(0) }
	GenerateParallel(f, b, 4, 1, factory)

	root := f.Find(0)
	for i := uint64(0); i < n; i++ {
		if f.Find(i) != root {
			t.Fatalf("site %d not connected to the single component at p=1", i)
		}
	}
	if got := f.At(root).Size; got != -int32(n) {
		t.Errorf("root size = %d, want %d", got, -int32(n))
	}
}

func TestGenerateParallel_PZeroLeavesSingletons(t *testing.T) {
	const b = 3
	f := newTestForest(t, b)
	n := uint64(f.Len())

	factory := func() Source { return constSource(^uint64(0)) }
	GenerateParallel(f, b, 4, 0, factory)

	for i := uint64(0); i < n; i++ {
		if f.Find(i) != i {
			t.Fatalf("site %d should remain a singleton at p=0", i)
		}
	}
}

func TestGenerateParallel_PropagatesWorkerPanic(t *testing.T) {
	const b = 2
	f := newTestForest(t, b)

	factory := func() Source {
		panic("deliberate worker failure")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected GenerateParallel to re-panic from a worker")
		}
		if r != "deliberate worker failure" {
			t.Errorf("recovered panic = %v, want the worker's own panic value", r)
		}
	}()

	GenerateParallel(f, b, 4, 0.5, factory)
}

// TestGenerateParallel_SequentialParallelAgreement checks that, with
// edge-indexed seeding, the same base seed produces an identical forest
// regardless of how many threads the orchestrator splits across.
func TestGenerateParallel_SequentialParallelAgreement(t *testing.T) {
	const b = 4 // L = 16
	const baseSeed = 0xC0FFEE
	n := uint64(1) << (3 * b)

	sequential := newTestForest(t, b)
	GenerateParallelEdgeSeeded(sequential, b, 1, 0.25, baseSeed)

	parallel := newTestForest(t, b)
	GenerateParallelEdgeSeeded(parallel, b, 4, 0.25, baseSeed)

	for i := uint64(0); i < n; i++ {
		sr := sequential.Find(i)
		pr := parallel.Find(i)
		sn, pn := sequential.At(sr), parallel.At(pr)
		if sn.Size != pn.Size {
			t.Fatalf("site %d: sequential root size %d, parallel root size %d", i, sn.Size, pn.Size)
		}
	}

	// Roots may differ in index (tie-breaks are order-sensitive) but the
	// partition into components must be identical: two sites share a
	// component under one run iff they share one under the other.
	seqComponent := make(map[uint64]uint64, n)
	parComponent := make(map[uint64]uint64, n)
	for i := uint64(0); i < n; i++ {
		seqComponent[i] = sequential.Find(i)
		parComponent[i] = parallel.Find(i)
	}
	for i := uint64(0); i < n; i++ {
		for j := i + 1; j < n && j < i+64; j++ {
			sameSeq := seqComponent[i] == seqComponent[j]
			samePar := parComponent[i] == parComponent[j]
			if sameSeq != samePar {
				t.Fatalf("sites %d,%d: sequential co-membership=%v, parallel=%v", i, j, sameSeq, samePar)
			}
		}
	}
}

// TestSeamMergeSuppressed checks that generating two halves without ever
// invoking the Seam Merger leaves at least two components along the
// bisected axis; running the merger afterward collapses them.
func TestSeamMergeSuppressed(t *testing.T) {
	const b = 2 // L = 4
	f := newTestForest(t, b)
	l := uint32(1) << b

	GenerateSlab(f, b, 0, l/2, Threshold(1), constSource(0))
	GenerateSlab(f, b, l/2, l, Threshold(1), constSource(0))

	left := f.Find(encode(Site{0, 0, 0}, b))
	right := f.Find(encode(Site{l / 2, 0, 0}, b))
	if left == right {
		t.Fatal("halves must not be connected before any seam merge runs")
	}

	SeamMerge(f, b, l/2, Threshold(1), constSource(0))

	if got := f.Find(encode(Site{0, 0, 0}, b)); got != f.Find(encode(Site{l / 2, 0, 0}, b)) {
		t.Error("seam merge should have collapsed the two halves into one component")
	}
}
