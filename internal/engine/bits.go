package engine

import "math/bits"

// Hyperceil returns the smallest power of two that is >= x, x > 0. Exported
// so that callers configuring a PMA's initial shape (see the Option
// constructors in the pma and concurrent packages) can round up to a valid
// capacity/segment size themselves, the same way SizeFor does internally.
func Hyperceil(x int64) int64 {
	if x <= 1 {
		return 1
	}
	return int64(1) << uint(bits.Len64(uint64(x-1)))
}

// log2Floor returns floor(log2(x)) for x >= 1.
func log2Floor(x int64) int64 {
	return int64(bits.Len64(uint64(x)) - 1)
}

// log2Ceil returns ceil(log2(x)) for x >= 1.
func log2Ceil(x int64) int64 {
	if x <= 1 {
		return 0
	}
	return int64(bits.Len64(uint64(x - 1)))
}

// ceilDiv returns ceil(a/b) for a >= 0, b > 0.
func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
