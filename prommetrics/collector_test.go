package prommetrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/govec"
)

type failingInit struct{}

func (f *failingInit) Init() error { return errors.New("no default") }

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	v := govec.New[int](govec.WithMetricsCollector(c))
	for i := range 5 {
		require.NoError(t, v.PushBack(i))
	}

	// 0 -> 1 -> 2 -> 4 -> 8
	assert.Equal(t, 4.0, testutil.ToFloat64(c.reallocations.WithLabelValues("success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.reallocations.WithLabelValues("error")))
	assert.Equal(t, float64(0+1+2+4), testutil.ToFloat64(c.relocatedElements))
	assert.Equal(t, 8.0, testutil.ToFloat64(c.grownSlots))
	assert.Equal(t, 1, testutil.CollectAndCount(c.reallocationDuration))

	count, err := testutil.GatherAndCount(reg, "govec_reallocations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCollector_Failures(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	v := govec.New[failingInit](govec.WithMetricsCollector(c))
	_, err := v.EmplaceBack(nil)
	require.ErrorIs(t, err, govec.ErrElementOp)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.elementFailures.WithLabelValues(string(govec.OpInit))))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.reallocations.WithLabelValues("error")))
	assert.Equal(t, 0, v.Capacity())
}

func TestCollector_NilRegisterer(t *testing.T) {
	c := NewCollector(nil)
	c.RecordReallocation(0, 4, 0, 0, nil)
	assert.Equal(t, 4.0, testutil.ToFloat64(c.grownSlots))
}
