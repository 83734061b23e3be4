package engine

// Find performs a gap-aware binary search: a classical binary search over
// [0, len(slots)), except that after computing mid it scans left from mid
// down to lo looking for a non-empty slot to compare against, since mid
// itself may land on a gap. If the whole [lo, mid] window is empty, the
// search recurses right instead of giving up.
//
// On a hit it returns (true, index of the matching slot). On a miss it
// returns (false, index of key's predecessor, or -1 if key is smaller than
// every stored key).
func Find(slots []Slot, key uint64) (found bool, index int64) {
	lo, hi := int64(0), int64(len(slots))-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		idx := int64(-1)
		for i := mid; i >= lo; i-- {
			if !slots[i].IsEmpty() {
				idx = i
				break
			}
		}
		if idx == -1 {
			lo = mid + 1
			continue
		}
		k, _ := slots[idx].Load()
		switch {
		case k == key:
			return true, idx
		case k < key:
			lo = idx + 1
		default:
			hi = idx - 1
		}
	}
	for hi >= 0 && slots[hi].IsEmpty() {
		hi--
	}
	return false, hi
}
