// Package prommetrics exports govec reallocation metrics to Prometheus.
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/govec"
)

// Collector implements govec.MetricsCollector on top of Prometheus metrics.
// Several vectors may share one Collector.
type Collector struct {
	reallocations        *prometheus.CounterVec
	reallocationDuration prometheus.Histogram
	relocatedElements    prometheus.Counter
	grownSlots           prometheus.Counter
	elementFailures      *prometheus.CounterVec
}

// NewCollector registers the govec metrics with reg. A nil reg creates
// unregistered metrics.
func NewCollector(reg prometheus.Registerer) *Collector {
	return &Collector{
		reallocations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "govec",
			Name:      "reallocations_total",
			Help:      "Total number of raw block replacements by result.",
		}, []string{"result"}),
		reallocationDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: "govec",
			Name:      "reallocation_duration_seconds",
			Help:      "Time spent allocating a block and relocating elements into it.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		relocatedElements: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "govec",
			Name:      "relocated_elements_total",
			Help:      "Total number of live elements carried into new blocks.",
		}),
		grownSlots: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "govec",
			Name:      "grown_slots_total",
			Help:      "Total number of slots added by successful reallocations.",
		}),
		elementFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "govec",
			Name:      "element_failures_total",
			Help:      "Total number of failed element lifetime hooks by operation.",
		}, []string{"op"}),
	}
}

// RecordReallocation implements govec.MetricsCollector.
func (c *Collector) RecordReallocation(oldCapacity, newCapacity, relocated int, duration time.Duration, err error) {
	c.reallocationDuration.Observe(duration.Seconds())
	if err != nil {
		c.reallocations.WithLabelValues("error").Inc()
		return
	}
	c.reallocations.WithLabelValues("success").Inc()
	c.relocatedElements.Add(float64(relocated))
	if newCapacity > oldCapacity {
		c.grownSlots.Add(float64(newCapacity - oldCapacity))
	}
}

// RecordElementFailure implements govec.MetricsCollector.
func (c *Collector) RecordElementFailure(op govec.Op) {
	c.elementFailures.WithLabelValues(string(op)).Inc()
}

var _ govec.MetricsCollector = (*Collector)(nil)
