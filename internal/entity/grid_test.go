package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_InBounds(t *testing.T) {
	grid := NewGrid(3)

	assert.True(t, grid.InBounds(0, 0))
	assert.True(t, grid.InBounds(2, 2))
	assert.False(t, grid.InBounds(-1, 0))
	assert.False(t, grid.InBounds(0, -1))
	assert.False(t, grid.InBounds(3, 0))
	assert.False(t, grid.InBounds(0, 3))
}

func TestGrid_At(t *testing.T) {
	// Given: a grid with a single letter
	grid := NewGrid(3)
	grid[0][1] = "A"

	// Then: At returns the letter and treats the outside as empty
	assert.Equal(t, "A", grid.At(0, 1))
	assert.Equal(t, EmptyCell, grid.At(0, 0))
	assert.Equal(t, EmptyCell, grid.At(5, 5))
	assert.True(t, grid.IsEmpty(-1, 0))
}

func TestGrid_Clone(t *testing.T) {
	grid := NewGrid(2)
	grid[0][0] = "A"

	clone := grid.Clone()
	clone[0][0] = "B"

	assert.Equal(t, "A", grid[0][0])
	assert.Equal(t, "B", clone[0][0])
}

func TestWordCandidate_Cells(t *testing.T) {
	t.Run("Horizontal candidate covers one row", func(t *testing.T) {
		candidate := WordCandidate{Word: "CAT", Orientation: Horizontal, Index: 7, Start: 7, End: 9}

		assert.Equal(t, 3, candidate.Len())
		assert.Equal(t, []Cell{{Row: 7, Col: 7}, {Row: 7, Col: 8}, {Row: 7, Col: 9}}, candidate.Cells())
		assert.True(t, candidate.Contains(7, 8))
		assert.False(t, candidate.Contains(8, 8))
	})

	t.Run("Vertical candidate covers one column", func(t *testing.T) {
		candidate := WordCandidate{Word: "CS", Orientation: Vertical, Index: 7, Start: 7, End: 8}

		assert.Equal(t, []Cell{{Row: 7, Col: 7}, {Row: 8, Col: 7}}, candidate.Cells())
		assert.True(t, candidate.Contains(8, 7))
		assert.False(t, candidate.Contains(9, 7))
	})
}
