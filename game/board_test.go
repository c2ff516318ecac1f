package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("rejects out-of-range sizes", func(t *testing.T) {
		_, err := NewBoard(7)
		require.Error(t, err)
		_, err = NewBoard(20)
		require.Error(t, err)
	})

	t.Run("accepts boundary sizes", func(t *testing.T) {
		for _, size := range []int{8, 19} {
			b, err := NewBoard(size)
			require.NoError(t, err)
			require.Equal(t, size, b.Size())
			require.True(t, b.Full() == false)
			require.Equal(t, size*size, b.Count(NoPlayer))
		}
	})
}

func TestBoardBounds(t *testing.T) {
	b, err := NewBoard(9)
	require.NoError(t, err)

	require.True(t, b.InBounds(Pos(0, 0)))
	require.True(t, b.InBounds(Pos(8, 8)))
	require.False(t, b.InBounds(Pos(-1, 0)))
	require.False(t, b.InBounds(Pos(0, 9)))
	require.False(t, b.InBounds(Pos(9, 3)))
}

func TestBoardNeighbors(t *testing.T) {
	b, err := NewBoard(8)
	require.NoError(t, err)

	t.Run("orthogonal", func(t *testing.T) {
		require.Len(t, b.Neighbors4(Pos(4, 4)), 4)
		require.Len(t, b.Neighbors4(Pos(0, 0)), 2)
		require.Len(t, b.Neighbors4(Pos(0, 3)), 3)
	})

	t.Run("with diagonals", func(t *testing.T) {
		require.Len(t, b.Neighbors8(Pos(4, 4)), 8)
		require.Len(t, b.Neighbors8(Pos(0, 0)), 3)
		require.Len(t, b.Neighbors8(Pos(7, 3)), 5)
	})

	t.Run("all in bounds", func(t *testing.T) {
		for _, n := range b.Neighbors8(Pos(0, 7)) {
			require.True(t, b.InBounds(n))
		}
	})
}

func TestBoardPositions(t *testing.T) {
	b, err := NewBoard(8)
	require.NoError(t, err)

	positions := b.Positions()
	require.Len(t, positions, 64)
	require.Equal(t, Pos(0, 0), positions[0])
	require.Equal(t, Pos(0, 1), positions[1], "row-major order")
	require.Equal(t, Pos(1, 0), positions[8])
	require.Equal(t, Pos(7, 7), positions[63])

	seen := map[Position]bool{}
	for _, p := range positions {
		require.False(t, seen[p], "each position exactly once")
		seen[p] = true
	}
}

func TestBoardClone(t *testing.T) {
	b, err := NewBoard(8)
	require.NoError(t, err)
	b.Set(Pos(2, 3), PlayerA)

	clone := b.Clone()
	require.True(t, b.Equal(clone))

	b.Set(Pos(5, 5), PlayerB)
	require.Equal(t, NoPlayer, clone.Get(Pos(5, 5)), "clone shares no state")
	require.False(t, b.Equal(clone))
}

func TestBoardCells(t *testing.T) {
	b, err := NewBoard(8)
	require.NoError(t, err)
	b.Set(Pos(0, 1), PlayerA)
	b.Set(Pos(7, 7), PlayerB)

	cells := b.Cells()
	require.Len(t, cells, 64)
	require.Equal(t, PlayerA, cells[1])
	require.Equal(t, PlayerB, cells[63])

	rebuilt, err := BoardFromCells(8, cells)
	require.NoError(t, err)
	require.True(t, b.Equal(rebuilt))

	_, err = BoardFromCells(8, cells[:10])
	require.Error(t, err)
}

func TestBoardFullAndCount(t *testing.T) {
	b, err := NewBoard(8)
	require.NoError(t, err)
	for i, p := range b.Positions() {
		if i%2 == 0 {
			b.Set(p, PlayerA)
		} else {
			b.Set(p, PlayerB)
		}
	}
	require.True(t, b.Full())
	require.Equal(t, 32, b.Count(PlayerA))
	require.Equal(t, 32, b.Count(PlayerB))
	require.Equal(t, 0, b.Count(NoPlayer))
}

func TestPlayerOpponent(t *testing.T) {
	require.Equal(t, PlayerB, PlayerA.Opponent())
	require.Equal(t, PlayerA, PlayerB.Opponent())
	require.Equal(t, NoPlayer, NoPlayer.Opponent())
}
