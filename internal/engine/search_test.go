package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlots(n int) []Slot {
	s := make([]Slot, n)
	for i := range s {
		s[i].Init()
	}
	return s
}

func TestFind_EmptyArray(t *testing.T) {
	slots := newTestSlots(8)
	found, idx := Find(slots, 5)
	assert.False(t, found)
	assert.Equal(t, int64(-1), idx)
}

func TestFind_HitAndMiss(t *testing.T) {
	slots := newTestSlots(16)
	// sparse: keys 3, 7, 11 at indices 1, 6, 13
	write(&slots[1], 3, 30)
	write(&slots[6], 7, 70)
	write(&slots[13], 11, 110)

	found, idx := Find(slots, 7)
	require.True(t, found)
	assert.EqualValues(t, 6, idx)

	found, idx = Find(slots, 1)
	assert.False(t, found)
	assert.EqualValues(t, -1, idx, "key smaller than everything has no predecessor")

	found, idx = Find(slots, 9)
	assert.False(t, found)
	assert.EqualValues(t, 6, idx, "predecessor of 9 is the slot holding 7")

	found, idx = Find(slots, 50)
	assert.False(t, found)
	assert.EqualValues(t, 13, idx, "predecessor of a key larger than everything is the last slot")
}
