package rawmem

import (
	"errors"
	"math"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/govec/resource"
)

func TestNew(t *testing.T) {
	t.Run("zero capacity", func(t *testing.T) {
		b, err := New[int64](0, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, b.Capacity())
		assert.Equal(t, int64(0), b.Bytes())
		assert.Nil(t, b.slots)
	})

	t.Run("sized", func(t *testing.T) {
		b, err := New[int64](16, nil)
		require.NoError(t, err)
		assert.Equal(t, 16, b.Capacity())
		assert.Equal(t, int64(128), b.Bytes())
		for i := range 16 {
			assert.Zero(t, *b.At(i))
		}
	})

	t.Run("negative capacity", func(t *testing.T) {
		_, err := New[int64](-1, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAllocationFailed)

		var ae *AllocationError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, -1, ae.Capacity)
	})

	t.Run("byte count overflow", func(t *testing.T) {
		_, err := New[[16]byte](math.MaxInt, nil)
		assert.ErrorIs(t, err, ErrAllocationFailed)
	})

	t.Run("runtime refusal", func(t *testing.T) {
		_, err := New[byte](math.MaxInt, nil)
		assert.ErrorIs(t, err, ErrAllocationFailed)
	})
}

func TestNew_MemoryBudget(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimit: 256 * datasize.B})

	b, err := New[int64](16, rc)
	require.NoError(t, err)
	assert.Equal(t, int64(128), rc.MemoryUsage())

	_, err = New[int64](32, rc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
	assert.Equal(t, int64(128), rc.MemoryUsage(), "failed request must not hold budget")
	assert.Contains(t, err.Error(), "256 B")

	b.Release()
	assert.Equal(t, int64(0), rc.MemoryUsage())

	b.Release()
	assert.Equal(t, int64(0), rc.MemoryUsage(), "release is idempotent")
}

func TestBuffer_Addr(t *testing.T) {
	b, err := New[string](4, nil)
	require.NoError(t, err)

	*b.Addr(2) = "two"
	assert.Equal(t, "two", *b.At(2))
	assert.Nil(t, b.Addr(4), "one past the end is addressable but nil")

	assert.Panics(t, func() { b.Addr(5) })
	assert.Panics(t, func() { b.At(4) })
}

func TestBuffer_Slice(t *testing.T) {
	b, err := New[int](5, nil)
	require.NoError(t, err)

	s := b.Slice(1, 4)
	for i := range s {
		s[i] = i + 1
	}
	assert.Equal(t, []int{0, 1, 2, 3, 0}, b.Slice(0, 5))
	assert.Equal(t, 3, cap(s), "views never reach past their range")
	assert.Empty(t, b.Slice(5, 5))
}

func TestBuffer_Swap(t *testing.T) {
	a, err := New[int](2, nil)
	require.NoError(t, err)
	b, err := New[int](7, nil)
	require.NoError(t, err)

	*a.At(0) = 11
	*b.At(6) = 77

	a.Swap(&b)
	assert.Equal(t, 7, a.Capacity())
	assert.Equal(t, 2, b.Capacity())
	assert.Equal(t, 77, *a.At(6))
	assert.Equal(t, 11, *b.At(0))
}

func TestBuffer_Take(t *testing.T) {
	rc := resource.NewController(resource.Config{})

	src, err := New[int](3, rc)
	require.NoError(t, err)
	*src.At(1) = 9

	dst := src.Take()
	assert.Equal(t, 0, src.Capacity())
	assert.Equal(t, int64(0), src.Bytes())
	assert.Equal(t, 3, dst.Capacity())
	assert.Equal(t, 9, *dst.At(1))

	src.Release()
	assert.Equal(t, dst.Bytes(), rc.MemoryUsage(), "moved-from buffer holds nothing")

	dst.Release()
	assert.Equal(t, int64(0), rc.MemoryUsage())
}

func TestBuffer_Assign(t *testing.T) {
	tests := []struct {
		name        string
		dstCap      int
		srcCap      int
		wantDstCap  int
		wantSrcCap  int
		wantAdopted bool
	}{
		{name: "larger source is adopted", dstCap: 2, srcCap: 8, wantDstCap: 8, wantSrcCap: 0, wantAdopted: true},
		{name: "equal source is ignored", dstCap: 4, srcCap: 4, wantDstCap: 4, wantSrcCap: 4},
		{name: "smaller source is ignored", dstCap: 8, srcCap: 2, wantDstCap: 8, wantSrcCap: 2},
		{name: "empty destination adopts", dstCap: 0, srcCap: 1, wantDstCap: 1, wantSrcCap: 0, wantAdopted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := resource.NewController(resource.Config{})

			dst, err := New[int](tt.dstCap, rc)
			require.NoError(t, err)
			src, err := New[int](tt.srcCap, rc)
			require.NoError(t, err)
			if tt.srcCap > 0 {
				*src.At(0) = 42
			}

			dst.Assign(&src)
			assert.Equal(t, tt.wantDstCap, dst.Capacity())
			assert.Equal(t, tt.wantSrcCap, src.Capacity())
			if tt.wantAdopted {
				assert.Equal(t, 42, *dst.At(0))
			}

			wantUsage, err := SizeOf[int](tt.wantDstCap + tt.wantSrcCap)
			require.NoError(t, err)
			assert.Equal(t, wantUsage, rc.MemoryUsage(), "replaced block must be released")
		})
	}
}

func TestBuffer_AssignSelf(t *testing.T) {
	b, err := New[int](3, nil)
	require.NoError(t, err)

	b.Assign(&b)
	assert.Equal(t, 3, b.Capacity())
}

func TestAllocationError(t *testing.T) {
	cause := errors.New("boom")
	err := &AllocationError{Capacity: 4, Bytes: 2048, cause: cause}

	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "rawmem: allocation failed: 4 slots (2.0 KiB): boom", err.Error())

	noBytes := &AllocationError{Capacity: -2, cause: cause}
	assert.Equal(t, "rawmem: allocation failed: -2 slots: boom", noBytes.Error())
}

func TestSizeOf(t *testing.T) {
	n, err := SizeOf[struct{}](1 << 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = SizeOf[int32](10)
	require.NoError(t, err)
	assert.Equal(t, int64(40), n)
}
