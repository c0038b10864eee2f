package util

import (
	"testing"

	"mtoohey.com/rmcorrupt/internal/testutil/assert"
)

func TestMax(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		assert.Zero(t, Max[int]())
	})

	t.Run("many", func(t *testing.T) {
		assert.Equal(t, 9, Max(3, 9, -2, 9, 1))
	})
}

func TestMin(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		assert.Zero(t, Min[string]())
	})

	t.Run("many", func(t *testing.T) {
		assert.Equal(t, -2, Min(3, 9, -2, 9, 1))
	})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2, Clamp(2, 1, 5))
	assert.Equal(t, 4, Clamp(2, 4, 5))
	assert.Equal(t, 5, Clamp(2, 8, 5))

	// min wins when the bounds cross, which sampling relies on when a group
	// has exactly two files
	assert.Equal(t, 2, Clamp(2, 0, 1))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(3, 1))
	assert.Equal(t, 1, Percent(3, 50))
	assert.Equal(t, 3, Percent(3, 100))
	assert.Equal(t, 7, Percent(15, 50))
}
