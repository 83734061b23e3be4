package engine

import "fmt"

// Density threshold constants for the height-indexed rebalancing windows.
const (
	T0 = 1.00
	TH = 0.75
	P0 = 0.25
	PH = 0.50

	// MaxSparseness is 1/P0: the scaling factor applied to capacity after a
	// resize to guarantee room for future growth.
	MaxSparseness = 4

	// MaxSize is the largest capacity the engine will allocate: 2^56 - 1.
	MaxSize = (int64(1) << 56) - 1
)

// Descriptor holds the shape of a PMA's backing array: capacity, segment
// size and the height-indexed density thresholds derived from them. It does
// not track the live element count; callers (pma.PMA, concurrent.generation)
// own that separately, since under concurrent mutation it changes far more
// often than the shape does.
type Descriptor struct {
	M           int64 // capacity (total slots), always a power of two
	S           int64 // segment size, a power of two
	NumSegments int64 // M / S, a power of two
	H           int64 // height of the implicit window tree
	DeltaT      float64
	DeltaP      float64
}

// NewDescriptor derives a Descriptor from a capacity and segment size.
func NewDescriptor(m, s int64) Descriptor {
	numSegments := m / s
	h := log2Floor(numSegments) + 1
	return Descriptor{
		M:           m,
		S:           s,
		NumSegments: numSegments,
		H:           h,
		DeltaT:      (T0 - TH) / float64(h),
		DeltaP:      (PH - P0) / float64(h),
	}
}

// Threshold returns the upper (t) and lower (p) density bounds for the given
// window height.
func (d Descriptor) Threshold(height int64) (t, p float64) {
	return T0 - float64(height)*d.DeltaT, P0 + float64(height)*d.DeltaP
}

// SizeFor computes the (capacity, segment size) a freshly resized PMA should
// use to hold n elements: round the requested element count up to a
// segment/window-aligned shape, then scale by the maximum sparseness factor
// to leave room to grow.
func SizeFor(n int64) (m, s int64) {
	if n < 1 {
		n = 1
	}
	s = log2Ceil(n)
	if s < 1 {
		s = 1
	}
	numSegments := Hyperceil(ceilDiv(n, s))
	s = Hyperceil(ceilDiv(n, numSegments))
	m = s * numSegments
	m *= MaxSparseness
	s *= MaxSparseness
	return m, s
}

// CapacityError reports that a resize would need to grow past MaxSize, or
// otherwise failed to produce room for the requested element count. The
// sequential pma package lets this propagate as a panic (fail-fast); the
// concurrent package recovers it and returns it as a plain error from
// Insert.
type CapacityError struct {
	Requested int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("pma: resize to capacity %d exceeds maximum size %d", e.Requested, MaxSize)
}
