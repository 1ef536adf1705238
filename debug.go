package cubicperc

// debugChecks gates defensive precondition checks (double make_set,
// out-of-range index, overlapping slab ranges) that are cheap relative to
// the dominant cost of generation but still a branch on every hot-path
// call. It is a plain const rather than a build tag so the compiler can
// fold the dead branch away entirely when false.
const debugChecks = false
