package cubicperc

// MakeSet initializes the site at idx as a singleton component. idx must
// not already have been made; make_set is a precondition violation if
// called twice on the same site (checked under debugChecks).
//
// Size is +1 for an interior site, -1 for a boundary site — the sign bit
// is the "still growing" flag from the moment a site is born, not
// something bolted on later at union time.
func (f *Forest) MakeSet(idx uint64, boundary bool) {
	if debugChecks && f.size[idx] != 0 {
		panic("cubicperc: make_set called on an already-initialized site")
	}
	f.parent[idx] = idx
	if boundary {
		f.size[idx] = -1
	} else {
		f.size[idx] = 1
	}
}

// Find walks parent links to the root, applying path halving: each step
// repoints the current node at its grandparent before advancing. This
// mutates Parent pointers and is only safe while no other worker can
// observe or write nodes sharing a find chain with idx — during parallel
// generation that holds because workers are confined to disjoint x-slabs
// (see the Parallel Orchestrator). Path halving rather than full
// compression keeps each step a single pointer write.
func (f *Forest) Find(idx uint64) uint64 {
	parent := f.parent
	for parent[idx] != idx {
		p := parent[idx]
		gp := parent[p]
		parent[idx] = gp
		idx = gp
	}
	return idx
}

// FindConst walks parent links to the root without writing anything. Used
// during post-generation read-only phases (histogram, cluster
// enumeration) where the forest may be read concurrently and path
// compression would be a data race.
func (f *Forest) FindConst(idx uint64) uint64 {
	parent := f.parent
	for parent[idx] != idx {
		idx = parent[idx]
	}
	return idx
}

// Union merges the components containing a and b. If they are already the
// same component this is a no-op (including the degenerate a == b case
// produced by slab-edge clamping). Otherwise the root with the smaller
// |Size| is reparented onto the root with the larger |Size|; ties are
// broken in favor of b's root (either tie-break is valid, this one just
// has to be consistent). The surviving root's Size is the signed
// sum: negative iff either input root was negative, so "touches the outer
// boundary" propagates monotonically through every union.
func (f *Forest) Union(a, b uint64) {
	ra := f.Find(a)
	rb := f.Find(b)
	if ra == rb {
		return
	}

	sizeA, sizeB := f.size[ra], f.size[rb]
	absA, absB := abs32(sizeA), abs32(sizeB)
	negative := sizeA < 0 || sizeB < 0

	// Ties go to b's root: a is reparented onto b.
	if absA <= absB {
		newSize := absA + absB
		if negative {
			newSize = -newSize
		}
		f.parent[ra] = rb
		f.size[rb] = newSize
		return
	}

	newSize := absA + absB
	if negative {
		newSize = -newSize
	}
	f.parent[rb] = ra
	f.size[ra] = newSize
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
