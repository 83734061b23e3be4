package concurrent

import (
	"log/slog"

	"github.com/db47h/pma/internal/engine"
)

const (
	defaultCapacity    = 16
	defaultSegmentSize = 4
)

// Option is the function prototype for functions that set or change New's
// configuration. Mirrors pma.Option; kept as a distinct type since the two
// packages configure independent handle types.
type Option interface {
	set(*options)
}

type optFn func(*options)

func (f optFn) set(o *options) { f(o) }

type options struct {
	initialCapacity int64
	segmentSize     int64
	logger          *slog.Logger
}

// WithInitialCapacity overrides the default initial capacity of 16 slots.
// The value is rounded up so that it remains a valid PMA shape.
func WithInitialCapacity(m int64) Option {
	return optFn(func(o *options) {
		o.initialCapacity = m
	})
}

// WithSegmentSize overrides the default segment (leaf window) size of 4.
func WithSegmentSize(s int64) Option {
	return optFn(func(o *options) {
		o.segmentSize = s
	})
}

// WithLogger configures a logger used to trace resize events at
// slog.LevelDebug.
func WithLogger(l *slog.Logger) Option {
	return optFn(func(o *options) {
		o.logger = l
	})
}

func getOpts(opts []Option) options {
	o := options{
		initialCapacity: defaultCapacity,
		segmentSize:     defaultSegmentSize,
	}
	for _, op := range opts {
		op.set(&o)
	}
	if o.segmentSize < 1 {
		o.segmentSize = 1
	}
	if o.initialCapacity < o.segmentSize {
		o.initialCapacity = o.segmentSize
	}
	// Round up to a valid PMA shape: S a power of two, NumSegments a power
	// of two, and M = S * NumSegments (so M is a power of two and a
	// multiple of S), matching the invariant NewDescriptor assumes.
	o.segmentSize = engine.Hyperceil(o.segmentSize)
	numSegments := engine.Hyperceil((o.initialCapacity + o.segmentSize - 1) / o.segmentSize)
	o.initialCapacity = o.segmentSize * numSegments
	return o
}
