package cubicperc

import "testing"

func TestPCGSourceIsDeterministicForAFixedSeed(t *testing.T) {
	a := NewPCGSource(1, 2)
	b := NewPCGSource(1, 2)
	for i := 0; i < 8; i++ {
		if got, want := a.Uint64(), b.Uint64(); got != want {
			t.Fatalf("draw %d: a=%d, b=%d, want equal for identical seeds", i, got, want)
		}
	}
}

func TestPCGSourceDiffersForDifferentSeeds(t *testing.T) {
	a := NewPCGSource(1, 2)
	b := NewPCGSource(3, 4)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	if same {
		t.Error("two independently seeded PCG sources agreed on 8 consecutive draws")
	}
}

func TestNewPCGSourceFromEntropyProducesUsableSource(t *testing.T) {
	// No determinism claim here; just confirm it doesn't panic and yields a
	// Source that behaves like one (two draws needn't be equal, but should
	// not both be the zero value for a sane generator).
	s := NewPCGSourceFromEntropy()
	v1 := s.Uint64()
	v2 := s.Uint64()
	if v1 == 0 && v2 == 0 {
		t.Error("entropy-seeded source produced two zero draws in a row, suspiciously unlikely")
	}
}

func TestEdgeSeededSource_SameEdgeSameBaseSeedAgrees(t *testing.T) {
	a := EdgeSeededSource(42)
	b := EdgeSeededSource(42)

	a.ForEdge(3, 5, 7, edgeDirY)
	b.ForEdge(3, 5, 7, edgeDirY)

	if a.Uint64() != b.Uint64() {
		t.Error("two edgeSeededSource instances with the same base seed disagreed on the same edge")
	}
}

func TestEdgeSeededSource_DifferentEdgesDiffer(t *testing.T) {
	s := EdgeSeededSource(42)
	s.ForEdge(1, 2, 3, edgeDirX)
	v1 := s.Uint64()
	s.ForEdge(1, 2, 3, edgeDirY)
	v2 := s.Uint64()
	s.ForEdge(1, 2, 4, edgeDirX)
	v3 := s.Uint64()

	if v1 == v2 {
		t.Error("different directions on the same site produced the same draw")
	}
	if v1 == v3 {
		t.Error("different sites produced the same draw")
	}
}

func TestEdgeSeededSource_DifferentBaseSeedsDiverge(t *testing.T) {
	a := EdgeSeededSource(1)
	b := EdgeSeededSource(2)
	a.ForEdge(9, 9, 9, edgeDirZ)
	b.ForEdge(9, 9, 9, edgeDirZ)
	if a.Uint64() == b.Uint64() {
		t.Error("different base seeds on the same edge produced the same draw")
	}
}
