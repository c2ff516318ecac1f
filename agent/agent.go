package agent

import (
	"golang.org/x/exp/rand"

	"boardgame/game"
)

// Agent selects one move for a player from a board position. Implementations
// are pure functions of their inputs: any randomness comes from an injected,
// seeded source so selection stays deterministic under test.
type Agent interface {
	SelectMove(b *game.Board, rules game.RuleSet, p game.Player) game.Move
}

// Random draws uniformly from the ruleset's legal moves.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random agent with its own seeded source.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// SelectMove picks a uniformly random legal move. With no legal move left it
// returns a pass for territory-capture and a resign otherwise, so the caller
// always gets a playable way to end the turn.
func (a *Random) SelectMove(b *game.Board, rules game.RuleSet, p game.Player) game.Move {
	moves := rules.LegalMoves(b, p)
	if len(moves) == 0 {
		if rules.ID() == game.TerritoryCapture {
			return game.PassMove
		}
		return game.ResignMove
	}
	return moves[a.rng.Intn(len(moves))]
}
