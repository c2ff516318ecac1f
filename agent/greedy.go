package agent

import "boardgame/game"

// Positional weights for the greedy disc-flip evaluation. Corners can never
// be re-flipped, edges rarely, so both outrank any interior flip count.
const (
	cornerWeight = 20
	edgeWeight   = 5
)

// Greedy is a one-ply disc-flip heuristic: it scores each candidate
// placement by discs flipped plus a fixed positional weight and takes the
// maximum, breaking ties by earliest position in row-major order. It is not
// a search.
type Greedy struct{}

// SelectMove returns the highest-scoring legal placement, or a resign when
// the player has none.
func (Greedy) SelectMove(b *game.Board, rules game.RuleSet, p game.Player) game.Move {
	moves := rules.LegalMoves(b, p)
	if len(moves) == 0 {
		return game.ResignMove
	}
	best := moves[0]
	bestScore := -1
	for _, m := range moves {
		_, effects := rules.Apply(b, m, p)
		score := len(effects.Flipped) + positionWeight(b, m.Pos)
		if score > bestScore {
			best = m
			bestScore = score
		}
	}
	return best
}

func positionWeight(b *game.Board, pos game.Position) int {
	last := b.Size() - 1
	onRowEdge := pos.Row == 0 || pos.Row == last
	onColEdge := pos.Col == 0 || pos.Col == last
	switch {
	case onRowEdge && onColEdge:
		return cornerWeight
	case onRowEdge || onColEdge:
		return edgeWeight
	default:
		return 0
	}
}
