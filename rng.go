package cubicperc

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
)

// Source is the RNG contract the generation phase requires: a uniform
// 64-bit source owned by exactly one worker. Slab Generator and Seam
// Merger each draw their own Source and never share one across workers.
type Source interface {
	Uint64() uint64
}

// pcgSource wraps math/rand/v2's PCG generator. It is seeded once per
// worker from two independent seeds at worker start.
type pcgSource struct {
	r *mathrand.Rand
}

// NewPCGSource creates a worker RNG seeded from two independent 64-bit
// values (typically drawn from crypto/rand or a parent seed sequence).
func NewPCGSource(seed1, seed2 uint64) Source {
	return &pcgSource{r: mathrand.New(mathrand.NewPCG(seed1, seed2))}
}

func (p *pcgSource) Uint64() uint64 { return p.r.Uint64() }

// NewPCGSourceFromEntropy seeds a pcgSource from the system entropy
// source once at worker start. This is the default SourceFactory
// Simulate uses when Config.Source is nil.
func NewPCGSourceFromEntropy() Source {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("cubicperc: failed to read system entropy: " + err.Error())
	}
	seed1 := binary.LittleEndian.Uint64(buf[0:8])
	seed2 := binary.LittleEndian.Uint64(buf[8:16])
	return NewPCGSource(seed1, seed2)
}

// edgeSeededSource derives a deterministic per-edge draw from a base seed
// and the edge's identity (site + neighbour direction) instead of reading
// from a shared stream. Two runs that visit the same edge — regardless of
// worker interleaving or slab bisection order — draw the identical
// Bernoulli sample for it. This is what lets generation produce identical
// clusterings under sequential and parallel execution for the same base
// seed.
// It trades the "single stream per worker" contract for full edge-level
// reproducibility and is only used where exact cross-mode determinism
// matters, never by default production sweeps (those use per-worker
// pcgSource so each repeat explores an independent configuration).
//
// The mix below is a splitmix64-style avalanche rather than
// hash/maphash: maphash seeds itself randomly per process by design (DoS
// protection), which would make two edgeSeededSource values hash the
// same edge differently — exactly the determinism this type exists to
// provide.
type edgeSeededSource struct {
	base    uint64
	x, y, z uint32
	dir     uint8
}

// EdgeSeededSource returns a Source whose Uint64 draws are keyed off the
// most recent call to ForEdge — callers must call ForEdge before each
// draw that should be attributed to a specific lattice edge.
func EdgeSeededSource(baseSeed uint64) *edgeSeededSource {
	return &edgeSeededSource{base: baseSeed}
}

// ForEdge selects the edge (site -dir-> neighbour) the next Uint64 call
// draws for. dir is an arbitrary small discriminator distinguishing the
// three neighbour directions (z, y, x) so the same site's three edges
// hash to different values.
func (e *edgeSeededSource) ForEdge(x, y, z uint32, dir uint8) {
	e.x, e.y, e.z, e.dir = x, y, z, dir
}

func (e *edgeSeededSource) Uint64() uint64 {
	key := e.base
	key ^= uint64(e.x) * 2862933555777941757
	key ^= uint64(e.y)<<21 * 2862933555777941757
	key ^= uint64(e.z)<<42 * 2862933555777941757
	key ^= uint64(e.dir) * 0x9E3779B97F4A7C15
	return splitmix64(key)
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}
