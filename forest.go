package cubicperc

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// ErrResourceLimit is the sentinel NewForest wraps when L^3 cannot be
// addressed, so callers can classify the failure as a resource error
// rather than a configuration error.
var ErrResourceLimit = errors.New("cubicperc: resource limit exceeded")

// Node is the value of one lattice site's DSU record: Parent is the linear
// index of the DSU parent (a root's parent is its own index); Size is
// signed, where for a root |Size| is the component's cardinality and
// Size < 0 iff some member of the component lies on the outer face of the
// cube. For non-roots Size is unspecified and must not be read. Node is
// returned by value from Forest.At; Forest does not store a []Node slice
// internally (see below).
type Node struct {
	Parent uint64
	Size   int32
}

// Forest stores each site's Parent and Size in two parallel slices rather
// than one []Node slice. A Go struct pads its size up to its widest
// field's alignment, so a single []Node slice (uint64 then int32) costs 16
// bytes/site, not 12: the 4 trailing pad bytes are invisible in source but
// real in the allocation. Splitting into parent []uint64 (8 bytes/element,
// no padding) and size []int32 (4 bytes/element, no padding) gets the true
// 12 bytes/site this package's memory budget requires, the same way the
// teacher keeps UnionFind.parent and UnionFind.size as separate slices
// instead of one struct slice.
type Forest struct {
	parent []uint64
	size   []int32
	l      uint8
}

// perSiteBytes is what NewForest actually allocates per site: one uint64
// parent entry plus one int32 size entry, each stored in its own slice
// with no interior padding. This is the assertion to make: checking
// unsafe.Sizeof(Node{}) instead would measure the padded struct layout
// (16 bytes on a 64-bit platform), which this package never allocates, and
// such an assertion against 12 would always fail.
const perSiteBytes = 12

var _ = func() struct{} {
	if got := unsafe.Sizeof(uint64(0)) + unsafe.Sizeof(int32(0)); got != perSiteBytes {
		panic("cubicperc: Forest's per-site storage must be exactly 12 bytes")
	}
	return struct{}{}
}()

// NewForest allocates a Forest for a cube of side L = 1<<cubePow.
// N = L^3 must fit in an int; NewForest returns an error rather than
// letting the L^3 computation silently overflow or allocation panic.
func NewForest(cubePow uint8) (*Forest, error) {
	bits := 3 * uint(cubePow)
	if bits >= 63 {
		return nil, fmt.Errorf("%w: cube exponent %d too large, L^3 sites overflows addressable memory", ErrResourceLimit, cubePow)
	}
	n := uint64(1) << bits
	if n > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: cube exponent %d too large, L^3 sites overflows addressable memory", ErrResourceLimit, cubePow)
	}

	parent := make([]uint64, n)
	for i := range parent {
		parent[i] = uint64(i)
	}
	return &Forest{parent: parent, size: make([]int32, n), l: cubePow}, nil
}

// Len returns N, the number of sites in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// CubePow returns b, where L = 1<<b.
func (f *Forest) CubePow() uint8 { return f.l }

// Reset restores every node to its freshly-allocated state (Parent =
// self-index, Size = 0) without reallocating the backing slices, so
// Simulate can run R independent repeats against one forest allocation
// instead of paying N*12 bytes of allocation per repeat.
func (f *Forest) Reset() {
	for i := range f.parent {
		f.parent[i] = uint64(i)
		f.size[i] = 0
	}
}

// At returns a copy of the node at idx. Forest.MakeSet/Find/Union mutate
// the backing parent/size slices directly; At exists for read-only
// callers (histogramming, cluster enumeration, tests) that want both
// fields of a site together.
func (f *Forest) At(idx uint64) Node {
	if debugChecks && idx >= uint64(len(f.parent)) {
		panic("cubicperc: index out of range")
	}
	return Node{Parent: f.parent[idx], Size: f.size[idx]}
}
