//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint64(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint64(0)
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := IntToUint64(math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint64(-1)
		assert.Error(t, err)
	})
}

func TestInt64ToUint64(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := Int64ToUint64(123)
		assert.NoError(t, err)
		assert.Equal(t, uint64(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := Int64ToUint64(-5)
		assert.Error(t, err)
	})
}

func TestUintptrToInt64(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := UintptrToInt64(64)
		assert.NoError(t, err)
		assert.Equal(t, int64(64), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := UintptrToInt64(math.MaxUint64)
		assert.Error(t, err)
	})
}

func TestMulInt64(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int64
		want    int64
		wantErr bool
	}{
		{name: "zero", a: 0, b: math.MaxInt64, want: 0},
		{name: "small", a: 12, b: 8, want: 96},
		{name: "max exact", a: math.MaxInt64, b: 1, want: math.MaxInt64},
		{name: "overflow", a: math.MaxInt64/2 + 1, b: 2, wantErr: true},
		{name: "overflow high word", a: math.MaxInt64, b: math.MaxInt64, wantErr: true},
		{name: "negative", a: -1, b: 8, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MulInt64(tt.a, tt.b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
