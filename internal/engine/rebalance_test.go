package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebalance_PacksAndSpreadsWithinWindow(t *testing.T) {
	slots := newTestSlots(16)
	desc := NewDescriptor(16, 4)
	// fill the first two segments: the segment holding index 3 (density 1.0,
	// not below t(0)=1.00) and its height-1 window (density 1.0) are both out
	// of range, so Rebalance climbs to the root window, whose density 0.5
	// lies within [p(2), t(2)), and packs and spreads there.
	for i := int64(0); i < 8; i++ {
		write(&slots[i], uint64(i+1), uint64(i+1))
	}

	res := Rebalance(slots, desc, 3)
	assert.False(t, res.NeedsResize)

	// keys must still be present, sorted, after pack+spread
	var keys []uint64
	for i := range slots {
		if k, _ := slots[i].Load(); k != 0 {
			keys = append(keys, k)
		}
	}
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
	assert.Len(t, keys, 8)
}

func TestRebalance_RequestsResizeWhenRootOutOfRange(t *testing.T) {
	slots := newTestSlots(16)
	desc := NewDescriptor(16, 4)
	for i := int64(0); i < 16; i++ {
		write(&slots[i], uint64(i+1), uint64(i+1))
	}

	res := Rebalance(slots, desc, 0)
	assert.True(t, res.NeedsResize, "a fully dense array must exceed every window's upper threshold")
}

func TestRebalance_PreservesElementCount(t *testing.T) {
	slots := newTestSlots(32)
	desc := NewDescriptor(32, 4)
	for i := int64(0); i < 10; i++ {
		write(&slots[i*3], uint64(i+1), uint64(i+1))
	}

	// Sanity: whatever Rebalance decides, the array must keep the same
	// element count regardless of whether it packs+spreads a window or
	// reports NeedsResize.
	before := countRange(slots, 0, 32)
	_ = Rebalance(slots, desc, 15)
	after := countRange(slots, 0, 32)
	assert.Equal(t, before, after)
}
