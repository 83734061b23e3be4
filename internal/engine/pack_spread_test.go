package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_CompactsToLowEnd(t *testing.T) {
	slots := newTestSlots(10)
	write(&slots[1], 1, 1)
	write(&slots[4], 2, 2)
	write(&slots[5], 3, 3)
	write(&slots[8], 4, 4)

	Pack(slots, 0, 10, 4)

	var keys []uint64
	for i := 0; i < 10; i++ {
		k, _ := slots[i].Load()
		if k != 0 {
			keys = append(keys, k)
		}
	}
	assert.Equal(t, []uint64{1, 2, 3, 4}, keys)
	for i := 0; i < 4; i++ {
		require.False(t, slots[i].IsEmpty())
	}
	for i := 4; i < 10; i++ {
		require.True(t, slots[i].IsEmpty())
	}
}

func TestSpread_EvenlyDistributes(t *testing.T) {
	slots := newTestSlots(16)
	for i := 0; i < 4; i++ {
		write(&slots[i], uint64(i+1), uint64(i+1))
	}

	Spread(slots, 0, 16, 4)

	var order []uint64
	var occupiedIdx []int
	for i := 0; i < 16; i++ {
		k, _ := slots[i].Load()
		if k != 0 {
			order = append(order, k)
			occupiedIdx = append(occupiedIdx, i)
		}
	}
	// relative order preserved
	assert.Equal(t, []uint64{1, 2, 3, 4}, order)
	// max gap between consecutive occupied slots should not wildly exceed
	// ceil(capacity/n)
	maxGap := 0
	for i := 1; i < len(occupiedIdx); i++ {
		gap := occupiedIdx[i] - occupiedIdx[i-1]
		if gap > maxGap {
			maxGap = gap
		}
	}
	assert.LessOrEqual(t, maxGap, 5)
}

func TestSpread_NoOp_WhenZeroElements(t *testing.T) {
	slots := newTestSlots(8)
	assert.NotPanics(t, func() { Spread(slots, 0, 8, 0) })
}
