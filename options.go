package govec

import (
	"github.com/c2h5oh/datasize"

	"github.com/hupe1980/govec/internal/rawmem"
	"github.com/hupe1980/govec/resource"
)

// MemoryAcquirer is charged with the byte footprint of every raw block before
// it is allocated and credited when the block is released.
// *resource.Controller implements it.
type MemoryAcquirer = rawmem.MemoryAcquirer

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	acquirer         MemoryAcquirer
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Vector.
type Option func(*options)

// WithLogger enables debug events for reallocations.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the collector notified on reallocation.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metricsCollector = c
	}
}

// WithMemoryAcquirer charges every raw block of the vector against acq.
//
// Vectors may share one *resource.Controller to enforce a common limit and
// read its usage. Allocation fails with ErrAllocationFailed when acq refuses a
// block.
func WithMemoryAcquirer(acq MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = acq
	}
}

// WithMemoryLimit caps the raw block memory of a single vector.
//
// Blocks of a vector created by Clone share the same limit.
func WithMemoryLimit(limit datasize.ByteSize) Option {
	return func(o *options) {
		o.acquirer = resource.NewController(resource.Config{MemoryLimit: limit})
	}
}
