package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFilterSize(t *testing.T) {
	tests := []struct {
		length    uint
		errorRate float64
		want      uint
	}{
		{length: 1000, errorRate: 0.01, want: 12365},
		{length: 1000, errorRate: 0.001, want: 28474},
		{length: 10000, errorRate: 0.01, want: 123642},
		{length: 10, errorRate: 1e-20, want: 139247651},
	}
	for _, tt := range tests {
		size, err := CalculateFilterSize(tt.length, tt.errorRate, 3)
		require.NoError(t, err)
		assert.Equal(t, tt.want, size, "length %v, error rate %v", tt.length, tt.errorRate)
	}
}

func TestCalculateFilterSizeTinyRate(t *testing.T) {
	for _, errorRate := range []float64{1e-50, 1e-60, 1e-300} {
		size, err := CalculateFilterSize(10, errorRate, 3)
		assert.ErrorIs(t, err, ErrFilterTooLarge, "error rate %v", errorRate)
		assert.Zero(t, size)
	}
}

func TestPositiveRate(t *testing.T) {
	assert.Equal(t, 0.0, PositiveRate(0, 100, 3))
	assert.InDelta(t, 0.125, PositiveRate(50, 100, 3), 1e-12)
	assert.Equal(t, 1.0, PositiveRate(5, 0, 3))
	low := PositiveRate(10, 1000, 3)
	high := PositiveRate(500, 1000, 3)
	assert.Less(t, low, high)
}

func TestMax(t *testing.T) {
	assert.Equal(t, uint(3), Max(3, 1))
	assert.Equal(t, uint(3), Max(1, 3))
	assert.Equal(t, uint(1), Max(0, 1))
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(16)
	b := GenerateRandomString(16)
	require.Len(t, a, 16)
	require.Len(t, b, 16)
	assert.NotEqual(t, a, b)
	for _, c := range a {
		assert.Contains(t, letterBytes, string(c))
	}
}
