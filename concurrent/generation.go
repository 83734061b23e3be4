package concurrent

import (
	"sync/atomic"

	"github.com/db47h/pma/internal/engine"
)

// generation is an immutable (backing array, shape) pair published by a
// resize. Its slots are mutated in place via the lock-free marker protocol;
// only the live element count changes independently of a resize, hence the
// separate atomic counter.
type generation struct {
	slots []engine.Slot
	desc  engine.Descriptor
	count atomic.Int64
}

func newGeneration(m, s, n int64) *generation {
	slots := make([]engine.Slot, m)
	for i := range slots {
		slots[i].Init()
	}
	g := &generation{slots: slots, desc: engine.NewDescriptor(m, s)}
	g.count.Store(n)
	return g
}
