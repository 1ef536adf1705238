package cubicperc

import (
	"fmt"
	"math/bits"
	"sync"
)

// Histogram counts sites by the floor(log2(|size|)) of their root, the
// bucket at index k holding sites whose root has 2^k <= |size| < 2^(k+1);
// a component of s sites inside the measured volume adds s to its bucket.
// Terminated counts sites whose root has positive size (entirely
// interior); Growing counts sites whose root has negative size (touching
// the outer boundary).
type Histogram struct {
	Terminated []uint64
	Growing    []uint64
}

func bucketOf(size int32) int {
	v := size
	if v < 0 {
		v = -v
	}
	return bits.Len32(uint32(v)) - 1
}

// Merge adds other's counts into h pointwise, growing h's buckets as
// needed. Merge is the reduction step every parallel histogram worker and
// every repeat of Simulate uses to fold results together.
func (h *Histogram) Merge(other Histogram) {
	if len(other.Terminated) > len(h.Terminated) {
		grown := make([]uint64, len(other.Terminated))
		copy(grown, h.Terminated)
		h.Terminated = grown
	}
	if len(other.Growing) > len(h.Growing) {
		grown := make([]uint64, len(other.Growing))
		copy(grown, h.Growing)
		h.Growing = grown
	}
	for i, v := range other.Terminated {
		h.Terminated[i] += v
	}
	for i, v := range other.Growing {
		h.Growing[i] += v
	}
}

func (h *Histogram) record(size int32) {
	bucket := bucketOf(size)
	if size > 0 {
		for len(h.Terminated) <= bucket {
			h.Terminated = append(h.Terminated, 0)
		}
		h.Terminated[bucket]++
	} else {
		for len(h.Growing) <= bucket {
			h.Growing = append(h.Growing, 0)
		}
		h.Growing[bucket]++
	}
}

// CentralHistogram is the Central-Volume Histogram: for every site in the
// centred sub-cube of side central, it finds the site's root with
// FindConst (no path mutation — the forest is shared and read-only here)
// and buckets the root by floor(log2(|size|)). The x-range of the
// sub-cube is divided among threads workers exactly the way
// GenerateParallel divides the full cube, each worker accumulating into
// its own local Histogram; histograms are merged pointwise at every join.
func CentralHistogram(f *Forest, b uint8, central int, threads int) (Histogram, error) {
	l := int(uint32(1) << b)
	if central > l {
		return Histogram{}, fmt.Errorf("%w: central cube size %d exceeds simulation size %d", ErrInvalidConfig, central, l)
	}
	lo := uint32((l - central) / 2)
	hi := uint32((l + central) / 2)

	if threads < 1 {
		threads = 1
	}
	return histogramBisect(f, b, lo, hi, lo, hi, threads), nil
}

func histogramBisect(f *Forest, b uint8, x0, x1, yzLo, yzHi uint32, threadsRemaining int) Histogram {
	if threadsRemaining <= 1 || x1-x0 <= 1 {
		return histogramLeaf(f, b, x0, x1, yzLo, yzHi)
	}

	mid := x0 + (x1-x0)/2

	var wg sync.WaitGroup
	var left, right Histogram
	wg.Add(2)
	go func() {
		defer wg.Done()
		left = histogramBisect(f, b, x0, mid, yzLo, yzHi, threadsRemaining/2)
	}()
	go func() {
		defer wg.Done()
		right = histogramBisect(f, b, mid, x1, yzLo, yzHi, threadsRemaining/2)
	}()
	wg.Wait()

	left.Merge(right)
	return left
}

func histogramLeaf(f *Forest, b uint8, x0, x1, yzLo, yzHi uint32) Histogram {
	var h Histogram
	for x := x0; x < x1; x++ {
		for y := yzLo; y < yzHi; y++ {
			for z := yzLo; z < yzHi; z++ {
				idx := encode(Site{X: x, Y: y, Z: z}, b)
				root := f.FindConst(idx)
				h.record(f.At(root).Size)
			}
		}
	}
	return h
}
