package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.004, 1},
		{1.006, 1.01},
		{99.994, 99.99},
		{99.996, 100},
		{-1.006, -1.01},
		{52.763636363, 52.76},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in), "Round(%v)", tt.in)
	}
}

func TestRoundIdempotent(t *testing.T) {
	for _, v := range []float64{0, 0.004, 1.005, 96.735, 146.7351, 52.7636} {
		assert.Equal(t, Round(v), Round(Round(v)), "Round(%v)", v)
	}
}

func TestMapSlice(t *testing.T) {
	doubled := MapSlice([]int{1, 2, 3}, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
}
