package engine

// Resize computes the new capacity and segment size via SizeFor, allocates a
// fresh backing array, reads the surviving elements out of oldSlots in order
// and writes them into the new array, then spreads them evenly. It panics
// with a *CapacityError if the new capacity would exceed MaxSize or fails to
// exceed n; the concurrent coordinator recovers this panic and turns it into
// a plain error.
//
// oldSlots is never mutated: a concurrent lock-free reader may still be
// scanning it while this runs (the coordinator only guards the generation
// pointer swap, not the old generation's contents), so packing it in place
// would transiently break its sorted order out from under that reader.
func Resize(oldSlots []Slot, n int64) ([]Slot, Descriptor) {
	m, s := SizeFor(n)
	if m > MaxSize || m <= n {
		panic(&CapacityError{Requested: m})
	}

	newSlots := make([]Slot, m)
	for i := range newSlots {
		newSlots[i].Init()
	}
	w := int64(0)
	for i := range oldSlots {
		k, v := oldSlots[i].Load()
		if k == 0 {
			continue
		}
		write(&newSlots[w], k, v)
		w++
	}
	if n > 0 {
		Spread(newSlots, 0, m, n)
	}
	return newSlots, NewDescriptor(m, s)
}
