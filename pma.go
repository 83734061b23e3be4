package pma

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/db47h/pma/internal/engine"
)

// PMA is a single-goroutine packed memory array of uint64 key/value pairs.
type PMA struct {
	slots  []engine.Slot
	desc   engine.Descriptor
	n      int64
	logger *slog.Logger
}

// New returns an empty PMA. With no options it starts at a default shape of
// capacity 16, segment size 4.
func New(opts ...Option) *PMA {
	o := getOpts(opts)
	slots := make([]engine.Slot, o.initialCapacity)
	for i := range slots {
		slots[i].Init()
	}
	return &PMA{
		slots:  slots,
		desc:   engine.NewDescriptor(o.initialCapacity, o.segmentSize),
		logger: o.logger,
	}
}

// NewFromSorted builds a PMA from a sorted, duplicate-free, zero-free
// sequence of keys and their corresponding values. n = len(keys) must be >
// 0, and keys must already be sorted ascending; the PMA sizes itself exactly
// as a Resize would for n elements and spreads them evenly across the new
// capacity.
func NewFromSorted(keys, vals []uint64) (*PMA, error) {
	n := int64(len(keys))
	if n == 0 {
		return nil, errors.New("pma: NewFromSorted requires at least one element")
	}
	if len(vals) != len(keys) {
		return nil, errors.New("pma: keys and vals must have the same length")
	}
	for i, k := range keys {
		if k == 0 {
			return nil, fmt.Errorf("pma: key 0 is reserved as the empty sentinel (index %d)", i)
		}
		if i > 0 && keys[i-1] >= k {
			return nil, errors.New("pma: keys must be strictly ascending")
		}
	}

	m, s := engine.SizeFor(n)
	slots := make([]engine.Slot, m)
	for i := range slots {
		slots[i].Init()
	}
	// The array is freshly allocated and fully empty, and keys are already
	// sorted ascending, so the first n slots can be seeded directly without
	// going through Find/shift.
	for i := int64(0); i < n; i++ {
		engine.Place(&slots[i], keys[i], vals[i])
	}
	engine.Spread(slots, 0, m, n)
	return &PMA{slots: slots, desc: engine.NewDescriptor(m, s), n: n}, nil
}

// Find looks up key. On a hit it returns (true, index of the matching
// slot). On a miss it returns (false, index of key's predecessor, or -1 if
// no smaller key is stored).
func (p *PMA) Find(key uint64) (found bool, index int64) {
	if key == 0 {
		return false, -1
	}
	return engine.Find(p.slots, key)
}

// Insert adds key/val to the PMA. It returns false without modifying
// anything if key is already present (or is the reserved sentinel 0).
func (p *PMA) Insert(key, val uint64) bool {
	if key == 0 {
		return false
	}
	ok, idx := engine.Insert(p.slots, key, val)
	if !ok {
		return false
	}
	p.n++
	p.afterMutation(idx)
	return true
}

// Delete removes key from the PMA. It returns false if key was not present.
func (p *PMA) Delete(key uint64) bool {
	if key == 0 {
		return false
	}
	found, idx := engine.Find(p.slots, key)
	if !found {
		return false
	}
	engine.Clear(&p.slots[idx])
	p.n--
	p.afterMutation(idx)
	return true
}

// Get returns the key/value stored at positional index i, which must lie in
// [0, Capacity()). ok is false if slot i is currently empty.
func (p *PMA) Get(i int64) (key, val uint64, ok bool) {
	if i < 0 || i >= int64(len(p.slots)) {
		panic(fmt.Sprintf("pma: index %d out of range [0, %d)", i, len(p.slots)))
	}
	k, v := p.slots[i].Load()
	if k == 0 {
		return 0, 0, false
	}
	return k, v, true
}

// Count returns the number of elements currently stored.
func (p *PMA) Count() int64 { return p.n }

// Capacity returns the total number of slots in the backing array.
func (p *PMA) Capacity() int64 { return int64(len(p.slots)) }

func (p *PMA) afterMutation(idx int64) {
	res := engine.Rebalance(p.slots, p.desc, idx)
	if !res.NeedsResize {
		return
	}
	oldCap := p.desc.M
	newSlots, newDesc := engine.Resize(p.slots, p.n)
	p.slots, p.desc = newSlots, newDesc
	if p.logger != nil {
		p.logger.Debug("pma: resized", "old_capacity", oldCap, "new_capacity", newDesc.M, "count", p.n)
	}
}
