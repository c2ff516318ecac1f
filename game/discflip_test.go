package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscFlipSetup(t *testing.T) {
	rules := DiscFlipRules{}
	b, err := NewBoard(8)
	require.NoError(t, err)
	rules.Setup(b)

	require.Equal(t, PlayerB, b.Get(Pos(3, 3)))
	require.Equal(t, PlayerB, b.Get(Pos(4, 4)))
	require.Equal(t, PlayerA, b.Get(Pos(3, 4)))
	require.Equal(t, PlayerA, b.Get(Pos(4, 3)))
	require.Equal(t, 60, b.Count(NoPlayer))
}

func TestDiscFlipLegality(t *testing.T) {
	rules := DiscFlipRules{}
	b, err := NewBoard(8)
	require.NoError(t, err)
	rules.Setup(b)

	t.Run("opening placements bracket exactly one run", func(t *testing.T) {
		for _, pos := range []Position{Pos(2, 3), Pos(3, 2), Pos(4, 5), Pos(5, 4)} {
			require.True(t, rules.IsLegal(b, PlaceMove(pos), PlayerA), "%v", pos)
		}
	})

	t.Run("no bracket means illegal", func(t *testing.T) {
		require.False(t, rules.IsLegal(b, PlaceMove(Pos(2, 2)), PlayerA))
		require.False(t, rules.IsLegal(b, PlaceMove(Pos(0, 0)), PlayerA))
	})

	t.Run("occupied, out of bounds and pass are illegal", func(t *testing.T) {
		require.False(t, rules.IsLegal(b, PlaceMove(Pos(3, 3)), PlayerA))
		require.False(t, rules.IsLegal(b, PlaceMove(Pos(8, 0)), PlayerA))
		require.False(t, rules.IsLegal(b, PassMove, PlayerA))
	})
}

func TestDiscFlipApply(t *testing.T) {
	rules := DiscFlipRules{}

	t.Run("flips the bracketed run", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)
		rules.Setup(b)

		nb, effects := rules.Apply(b, PlaceMove(Pos(2, 3)), PlayerA)
		require.Equal(t, []Position{Pos(3, 3)}, effects.Flipped)
		require.Equal(t, PlayerA, nb.Get(Pos(2, 3)))
		require.Equal(t, PlayerA, nb.Get(Pos(3, 3)))
		require.Equal(t, PlayerB, b.Get(Pos(3, 3)), "input board untouched")
	})

	t.Run("flips every run in every direction, never partially", func(t *testing.T) {
		// From (0,0): two B discs to the right, one B disc below, each run
		// terminated by an A disc.
		b, err := NewBoard(8)
		require.NoError(t, err)
		b.Set(Pos(0, 1), PlayerB)
		b.Set(Pos(0, 2), PlayerB)
		b.Set(Pos(0, 3), PlayerA)
		b.Set(Pos(1, 0), PlayerB)
		b.Set(Pos(2, 0), PlayerA)

		nb, effects := rules.Apply(b, PlaceMove(Pos(0, 0)), PlayerA)
		require.ElementsMatch(t,
			[]Position{Pos(0, 1), Pos(0, 2), Pos(1, 0)},
			effects.Flipped)
		for _, pos := range []Position{Pos(0, 0), Pos(0, 1), Pos(0, 2), Pos(1, 0)} {
			require.Equal(t, PlayerA, nb.Get(pos))
		}
	})

	t.Run("a run without a terminating disc does not flip", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)
		b.Set(Pos(0, 1), PlayerB)
		b.Set(Pos(0, 2), PlayerB)
		// No A disc beyond the run: the right direction is dead, so (0,0)
		// is only playable if another direction works. It does not.
		require.False(t, rules.IsLegal(b, PlaceMove(Pos(0, 0)), PlayerA))
	})
}

func TestDiscFlipTerminal(t *testing.T) {
	rules := DiscFlipRules{}

	t.Run("fresh game is not terminal", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)
		rules.Setup(b)
		require.False(t, rules.IsTerminal(b, nil, 0))
	})

	t.Run("no bracket for either player is terminal", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)
		b.Set(Pos(0, 0), PlayerA)
		require.True(t, rules.IsTerminal(b, nil, 0))
		require.Equal(t, WinnerA, rules.Winner(b, nil))
	})

	t.Run("full board counts discs", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)
		for i, pos := range b.Positions() {
			if i < 40 {
				b.Set(pos, PlayerB)
			} else {
				b.Set(pos, PlayerA)
			}
		}
		require.True(t, rules.IsTerminal(b, nil, 0))
		require.Equal(t, WinnerB, rules.Winner(b, nil))
	})

	t.Run("equal discs is a draw", func(t *testing.T) {
		b, err := NewBoard(8)
		require.NoError(t, err)
		for i, pos := range b.Positions() {
			if i%2 == 0 {
				b.Set(pos, PlayerA)
			} else {
				b.Set(pos, PlayerB)
			}
		}
		require.Equal(t, WinnerDraw, rules.Winner(b, nil))
	})
}

func TestDiscFlipLegalMoves(t *testing.T) {
	rules := DiscFlipRules{}
	b, err := NewBoard(8)
	require.NoError(t, err)
	rules.Setup(b)

	moves := rules.LegalMoves(b, PlayerA)
	require.ElementsMatch(t,
		[]Move{PlaceMove(Pos(2, 3)), PlaceMove(Pos(3, 2)), PlaceMove(Pos(4, 5)), PlaceMove(Pos(5, 4))},
		moves)
}
