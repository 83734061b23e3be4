package engine

// Pack compacts the n non-empty slots of [from, to) to the low end of that
// range, preserving relative key order. Postcondition: slots[from:from+n]
// are all non-empty and slots[from+n:to] are all empty.
func Pack(slots []Slot, from, to, n int64) {
	_ = n
	read, dst := from, from
	for read < to {
		if !slots[read].IsEmpty() {
			if read > dst {
				moveInto(&slots[dst], &slots[read])
			}
			dst++
		}
		read++
	}
}
