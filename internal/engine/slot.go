package engine

import "sync/atomic"

// Operation identifies the kind of transition a Marker is claiming.
type Operation uint8

const (
	// OpNone means the slot is quiescent: no mutator owns it.
	OpNone Operation = iota
	// OpShift means a value is being written or moved into the slot.
	OpShift
	// OpClear means the slot is being emptied (delete, or the source side
	// of a pack/spread move).
	OpClear
)

// Marker is the in-flight operation descriptor published for a Slot. Markers
// are immutable once constructed; a transition publishes a new *Marker via
// compare-and-swap on Slot.marker, which stands in for a wide (operation,
// version, key, val) compare-and-swap that no hardware actually offers (see
// the slot.go section of DESIGN.md).
type Marker struct {
	Operation Operation
	Version   uint64
	Key       uint64
	Val       uint64
}

// Slot is one cell of the backing array. The zero Slot is not ready for use;
// call Init first.
type Slot struct {
	key     atomic.Uint64
	val     atomic.Uint64
	version atomic.Uint64
	marker  atomic.Pointer[Marker]
}

// Init brings a freshly allocated Slot to the quiescent empty state.
func (s *Slot) Init() {
	s.marker.Store(&Marker{})
}

// Load returns the slot's current (key, val), helping along any in-flight
// operation it observes first. A key of 0 means the slot is empty.
func (s *Slot) Load() (key, val uint64) {
	for {
		m := s.marker.Load()
		if s.version.Load() == m.Version {
			return s.key.Load(), s.val.Load()
		}
		s.help(m)
	}
}

// IsEmpty reports whether the slot currently holds no key.
func (s *Slot) IsEmpty() bool {
	k, _ := s.Load()
	return k == 0
}

// help republishes an observed marker's payload into the slot. Helping is
// idempotent: applying the same marker twice yields the same observable
// state, since the slot's version only ever advances.
func (s *Slot) help(m *Marker) {
	s.key.Store(m.Key)
	s.val.Store(m.Val)
	s.version.Store(m.Version)
}

// transition executes the four-step protocol from the slot/marker design:
// observe quiescence, claim via marker CAS, apply the payload, then quiesce.
// It returns the published quiescent marker and true on success; on failure
// (lost the claim race, or found the slot mid-flight) it returns false and
// the caller should retry from a fresh observation.
func (s *Slot) transition(op Operation, key, val uint64) (*Marker, bool) {
	old := s.marker.Load()
	if s.version.Load() != old.Version {
		// Another mutator's work is visible but not yet quiesced; help it
		// so progress is made, then let the caller retry.
		s.help(old)
		return nil, false
	}
	next := &Marker{Operation: op, Version: old.Version + 1, Key: key, Val: val}
	if !s.marker.CompareAndSwap(old, next) {
		return nil, false
	}
	s.key.Store(key)
	s.val.Store(val)
	quiet := &Marker{Operation: OpNone, Version: next.Version, Key: key, Val: val}
	// If this CAS loses, a helper has already published next's payload and
	// version, and another mutator has since claimed the slot with a newer
	// marker; that marker supersedes next, so the failure is ignored.
	s.marker.CompareAndSwap(next, quiet)
	s.version.Store(next.Version)
	return quiet, true
}

// write publishes (key, val) into s, retrying until its own claim succeeds.
func write(s *Slot, key, val uint64) {
	for {
		if _, ok := s.transition(OpShift, key, val); ok {
			return
		}
	}
}

// Place publishes (key, val) into an empty slot s. It is the same mechanics
// as an internal write, exported for callers (e.g. NewFromSorted) that seed
// a freshly allocated, fully empty array directly instead of going through
// Insert's find-and-shift path.
func Place(s *Slot, key, val uint64) {
	write(s, key, val)
}

// Clear empties s, retrying until its own claim succeeds.
func Clear(s *Slot) {
	for {
		if _, ok := s.transition(OpClear, 0, 0); ok {
			return
		}
	}
}

// moveInto publishes src's current content into dst, then clears src. Used
// by shift, pack and spread, all of which move non-empty slots without
// changing their key/val.
func moveInto(dst, src *Slot) {
	k, v := src.Load()
	write(dst, k, v)
	Clear(src)
}
