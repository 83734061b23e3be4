package engine

// Insert writes (key, val) into slots at the position determined by Find,
// shifting the minimal neighborhood of occupied slots to open a gap. It
// reports false without mutating anything if key is already present, or if
// the array is entirely full (both callers guarantee the latter cannot
// happen by rebalancing/resizing before density reaches 1.0).
//
// The shift direction prefers right (toward higher indices) and only falls
// back to a left shift when no empty slot exists to the right.
func Insert(slots []Slot, key, val uint64) (ok bool, index int64) {
	found, pred := Find(slots, key)
	if found {
		return false, -1
	}
	m := int64(len(slots))

	j := pred + 1
	for j < m && !slots[j].IsEmpty() {
		j++
	}
	if j < m {
		for k := j; k > pred+1; k-- {
			moveInto(&slots[k], &slots[k-1])
		}
		write(&slots[pred+1], key, val)
		return true, pred + 1
	}

	j = pred
	for j >= 0 && !slots[j].IsEmpty() {
		j--
	}
	if j < 0 {
		return false, -1
	}
	for k := j; k < pred; k++ {
		moveInto(&slots[k], &slots[k+1])
	}
	write(&slots[pred], key, val)
	return true, pred
}
