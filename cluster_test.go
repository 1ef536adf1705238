package cubicperc

import "testing"

func TestEnumerateClusters_GroupsByRoot(t *testing.T) {
	const b = 2 // L = 4
	f := newTestForest(t, b)
	GenerateSlab(f, b, 0, 1<<b, Threshold(1), constSource(0))

	clusters := EnumerateClusters(f, b, 1)
	if len(clusters) != 1 {
		t.Fatalf("expected one cluster at p=1, got %d", len(clusters))
	}
	for _, sites := range clusters {
		if len(sites) != f.Len() {
			t.Errorf("cluster has %d sites, want %d", len(sites), f.Len())
		}
	}
}

func TestEnumerateClusters_FiltersByMinSize(t *testing.T) {
	const b = 2
	f := newTestForest(t, b)
	GenerateSlab(f, b, 0, 1<<b, Threshold(0), constSource(^uint64(0)))

	// Every site is its own singleton component: minSize=2 should exclude
	// all of them.
	clusters := EnumerateClusters(f, b, 2)
	if len(clusters) != 0 {
		t.Fatalf("expected no clusters with minSize=2 among singletons, got %d", len(clusters))
	}

	clusters = EnumerateClusters(f, b, 1)
	if len(clusters) != f.Len() {
		t.Fatalf("expected %d singleton clusters, got %d", f.Len(), len(clusters))
	}
}

func TestEnumerateClusters_SitesDecodeToOriginalCoordinates(t *testing.T) {
	const b = 2
	f := newTestForest(t, b)
	GenerateSlab(f, b, 0, 1<<b, Threshold(0), constSource(^uint64(0)))

	clusters := EnumerateClusters(f, b, 1)
	for root, sites := range clusters {
		if len(sites) != 1 {
			t.Fatalf("singleton cluster should have exactly one site, got %d", len(sites))
		}
		if got := encode(sites[0], b); got != root {
			t.Errorf("cluster site %v encodes to %d, want root %d", sites[0], got, root)
		}
	}
}
