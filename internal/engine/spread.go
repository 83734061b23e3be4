package engine

// Spread evenly redistributes the n elements previously packed at the low
// end of [from, to) across the full range, using 8-bit fixed-point
// arithmetic to get a deterministic, uniform placement without resorting to
// floating point. With n == 0 it does nothing.
func Spread(slots []Slot, from, to, n int64) {
	if n == 0 {
		return
	}
	capacity := to - from
	frequency := (capacity << 8) / n
	readIndex := from + n - 1
	writeIndex := (to << 8) - frequency
	for (writeIndex >> 8) > readIndex {
		moveInto(&slots[writeIndex>>8], &slots[readIndex])
		readIndex--
		writeIndex -= frequency
	}
}
