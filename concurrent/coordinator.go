package concurrent

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/db47h/pma/internal/engine"
)

// ErrCapacityExceeded is returned by Insert when a required resize would
// grow the array past engine.MaxSize. Use errors.As to recover the
// underlying *engine.CapacityError for the requested size.
var ErrCapacityExceeded = errors.New("pma: capacity would exceed maximum size")

// Coordinator is a packed memory array safe for concurrent use by multiple
// goroutines. Mutations (Insert, Delete, and the resizes they trigger) are
// serialized through a single mutex, the same way the cache this package is
// descended from guards its map with one lock. What's new here is that
// Find and Get never take that lock: they read the current generation
// through an atomic pointer, so lookups never block behind a shift, pack,
// spread, or resize in progress. Per-slot markers (see internal/engine)
// still give those lock-free readers a consistent key/value pair even when
// they land on a slot mid-transition.
type Coordinator struct {
	mu     sync.Mutex
	gen    atomic.Pointer[generation]
	logger *slog.Logger
}

// New returns an empty, concurrency-safe PMA.
func New(opts ...Option) *Coordinator {
	o := getOpts(opts)
	c := &Coordinator{logger: o.logger}
	c.gen.Store(newGeneration(o.initialCapacity, o.segmentSize, 0))
	return c
}

// Find looks up key without blocking on any in-progress mutation.
func (c *Coordinator) Find(key uint64) (found bool, index int64) {
	if key == 0 {
		return false, -1
	}
	g := c.gen.Load()
	return engine.Find(g.slots, key)
}

// Insert adds key/val to the PMA. It returns (false, nil) if key is already
// present or is the reserved sentinel 0. It returns a non-nil error only
// when a resize triggered by this insert could not find room within
// engine.MaxSize; the insert itself still succeeded in that case.
func (c *Coordinator) Insert(key, val uint64) (bool, error) {
	if key == 0 {
		return false, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.gen.Load()
	ok, idx := engine.Insert(g.slots, key, val)
	if !ok {
		return false, nil
	}
	g.count.Add(1)
	if res := engine.Rebalance(g.slots, g.desc, idx); res.NeedsResize {
		if err := c.resizeLocked(g); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Delete removes key from the PMA. See pma.PMA.Delete for semantics.
func (c *Coordinator) Delete(key uint64) bool {
	if key == 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.gen.Load()
	found, idx := engine.Find(g.slots, key)
	if !found {
		return false
	}
	engine.Clear(&g.slots[idx])
	g.count.Add(-1)
	if res := engine.Rebalance(g.slots, g.desc, idx); res.NeedsResize {
		// A capacity error here would only be possible if the root window's
		// density fell out of range while shrinking, which never needs more
		// room than the generation already has; any error is unexpected and
		// is reported via the logger rather than changing Delete's signature.
		if err := c.resizeLocked(g); err != nil && c.logger != nil {
			c.logger.Debug("pma: resize after delete failed", "error", err)
		}
	}
	return true
}

// Get returns the key/value stored at positional index i in the current
// generation's backing array, which must lie in [0, Capacity()).
func (c *Coordinator) Get(i int64) (key, val uint64, ok bool) {
	g := c.gen.Load()
	if i < 0 || i >= int64(len(g.slots)) {
		panic(fmt.Sprintf("pma: index %d out of range [0, %d)", i, len(g.slots)))
	}
	k, v := g.slots[i].Load()
	if k == 0 {
		return 0, 0, false
	}
	return k, v, true
}

// Count returns the number of elements currently stored.
func (c *Coordinator) Count() int64 { return c.gen.Load().count.Load() }

// Capacity returns the total number of slots in the current generation's
// backing array.
func (c *Coordinator) Capacity() int64 { return int64(len(c.gen.Load().slots)) }

// resizeLocked grows or shrinks g's backing array and publishes the result
// as the new generation. Callers must hold c.mu.
func (c *Coordinator) resizeLocked(g *generation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*engine.CapacityError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%w: %w", ErrCapacityExceeded, ce)
		}
	}()

	n := g.count.Load()
	newSlots, newDesc := engine.Resize(g.slots, n)
	ng := &generation{slots: newSlots, desc: newDesc}
	ng.count.Store(n)
	c.gen.Store(ng)
	if c.logger != nil {
		c.logger.Debug("pma: concurrent resize", "old_capacity", g.desc.M, "new_capacity", newDesc.M, "count", n)
	}
	return nil
}
