package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coord
		expected TileClass
	}{
		{"left of board", At(-1, 3), OutOfBounds},
		{"below board", At(3, -1), OutOfBounds},
		{"right of board", At(9, 3), OutOfBounds},
		{"above board", At(3, 9), OutOfBounds},
		{"centre", At(4, 4), NonPassable},
		{"centre left", At(3, 4), NonPassable},
		{"centre right", At(5, 4), NonPassable},
		{"player 1 spawner", At(4, 0), Spawner},
		{"player 2 spawner", At(4, 8), Spawner},
		{"diagonal row 1", At(2, 1), Diagonal},
		{"diagonal row 2", At(7, 2), Diagonal},
		{"diagonal row 3", At(4, 3), Diagonal},
		{"diagonal row 5", At(4, 5), Diagonal},
		{"diagonal row 6", At(1, 6), Diagonal},
		{"diagonal row 7", At(6, 7), Diagonal},
		{"corner", At(0, 0), Regular},
		{"middle row edge", At(0, 4), Regular},
		{"next to a diagonal", At(3, 1), Regular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.coord))
		})
	}
}

func TestTopology_ClassesAreExclusive(t *testing.T) {
	counts := map[TileClass]int{}

	for y := 0; y < Dimension; y++ {
		for x := 0; x < Dimension; x++ {
			c := At(x, y)

			// Then: exactly one of the in-bounds classes applies
			matches := 0
			if IsSpawner(c) {
				matches++
			}
			if IsNonPassable(c) && !IsSpawner(c) {
				matches++
			}
			if IsDiagonal(c) {
				matches++
			}
			if IsRegular(c) {
				matches++
			}
			require.Equal(t, 1, matches, "coordinate %s", c)

			counts[Classify(c)]++
		}
	}

	assert.Equal(t, 2, counts[Spawner])
	assert.Equal(t, 3, counts[NonPassable])
	assert.Equal(t, 10, counts[Diagonal])
	assert.Equal(t, 66, counts[Regular])
}

func TestTopology_DiagonalsMirror(t *testing.T) {
	for y := 0; y < Dimension; y++ {
		for x := 0; x < Dimension; x++ {
			assert.Equal(t, IsDiagonal(At(x, y)), IsDiagonal(At(x, Dimension-1-y)), "row mirror of %s", At(x, y))
			assert.Equal(t, IsDiagonal(At(x, y)), IsDiagonal(At(Dimension-1-x, y)), "column mirror of %s", At(x, y))
		}
	}
}

func TestTopology_OutOfBoundsIsNonPassable(t *testing.T) {
	for _, c := range []Coord{At(-1, -1), At(-1, 0), At(0, -1), At(9, 9), At(9, 0), At(0, 9), InvalidCoord} {
		assert.True(t, IsNonPassable(c), "coordinate %s", c)
		assert.False(t, IsRegular(c), "coordinate %s", c)
	}
}

func TestSpawnerOf(t *testing.T) {
	c, ok := SpawnerOf(Player1)
	require.True(t, ok)
	assert.Equal(t, At(4, 0), c)

	c, ok = SpawnerOf(Player2)
	require.True(t, ok)
	assert.Equal(t, At(4, 8), c)

	_, ok = SpawnerOf(NoPlayer)
	assert.False(t, ok)
}
