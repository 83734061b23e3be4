package engine

// RebalanceResult reports the outcome of Rebalance: either the enclosing
// window that was packed and spread, or that every level up to the root was
// out of bounds and the caller must perform a full Resize.
type RebalanceResult struct {
	NeedsResize          bool
	WindowStart, WindowEnd int64
}

// Rebalance walks the implicit window tree upward from the segment
// containing index i, starting at height 0, until it finds the smallest
// enclosing window whose density lies in [p(height), t(height)). Window
// occupancy is tracked incrementally: when the window doubles, only the
// newly added half is counted, never the whole window again.
func Rebalance(slots []Slot, desc Descriptor, i int64) RebalanceResult {
	height := int64(0)
	windowSize := desc.S
	windowStart := alignDown(i, windowSize)
	windowEnd := windowStart + windowSize
	occupancy := countRange(slots, windowStart, windowEnd)

	for {
		t, p := desc.Threshold(height)
		density := float64(occupancy) / float64(windowEnd-windowStart)
		if density >= p && density < t {
			Pack(slots, windowStart, windowEnd, occupancy)
			Spread(slots, windowStart, windowEnd, occupancy)
			return RebalanceResult{WindowStart: windowStart, WindowEnd: windowEnd}
		}

		height++
		if height >= desc.H {
			return RebalanceResult{NeedsResize: true}
		}

		newWindowSize := windowSize * 2
		newWindowStart := alignDown(i, newWindowSize)
		newWindowEnd := newWindowStart + newWindowSize
		if newWindowStart == windowStart {
			occupancy += countRange(slots, windowEnd, newWindowEnd)
		} else {
			occupancy += countRange(slots, newWindowStart, windowStart)
		}
		windowStart, windowEnd, windowSize = newWindowStart, newWindowEnd, newWindowSize
	}
}

func alignDown(i, size int64) int64 {
	return (i / size) * size
}

func countRange(slots []Slot, from, to int64) int64 {
	var n int64
	for k := from; k < to; k++ {
		if !slots[k].IsEmpty() {
			n++
		}
	}
	return n
}
