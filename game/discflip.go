package game

// DiscFlipRules implements the disc-flipping variant: a placement must
// bracket at least one opponent run in one of 8 directions, and flips every
// bracketed run. The game starts from the standard four center discs.
type DiscFlipRules struct{}

func (DiscFlipRules) ID() string { return DiscFlip }

// Setup places the four starting discs around the board center, second
// player on the main diagonal.
func (DiscFlipRules) Setup(b *Board) {
	lo := b.Size()/2 - 1
	hi := b.Size() / 2
	b.Set(Pos(lo, lo), PlayerB)
	b.Set(Pos(hi, hi), PlayerB)
	b.Set(Pos(lo, hi), PlayerA)
	b.Set(Pos(hi, lo), PlayerA)
}

func (DiscFlipRules) IsLegal(b *Board, m Move, p Player) bool {
	if m.Action != PlaceAction {
		return false
	}
	if !b.InBounds(m.Pos) || b.Get(m.Pos) != NoPlayer {
		return false
	}
	for _, d := range dirs8 {
		if len(bracketedRun(b, m.Pos, d, p)) > 0 {
			return true
		}
	}
	return false
}

func (DiscFlipRules) Apply(b *Board, m Move, p Player) (*Board, Effects) {
	nb := b.Clone()
	var flipped []Position
	for _, d := range dirs8 {
		flipped = append(flipped, bracketedRun(nb, m.Pos, d, p)...)
	}
	nb.Set(m.Pos, p)
	for _, pos := range flipped {
		nb.Set(pos, p)
	}
	return nb, Effects{Flipped: flipped}
}

func (r DiscFlipRules) IsTerminal(b *Board, history []Entry, passes int) bool {
	if b.Full() {
		return true
	}
	return !r.hasPlacement(b, PlayerA) && !r.hasPlacement(b, PlayerB)
}

func (DiscFlipRules) Winner(b *Board, history []Entry) Winner {
	countA := b.Count(PlayerA)
	countB := b.Count(PlayerB)
	switch {
	case countA > countB:
		return WinnerA
	case countB > countA:
		return WinnerB
	default:
		return WinnerDraw
	}
}

func (r DiscFlipRules) LegalMoves(b *Board, p Player) []Move {
	var moves []Move
	for _, pos := range b.Positions() {
		m := PlaceMove(pos)
		if b.Get(pos) == NoPlayer && r.IsLegal(b, m, p) {
			moves = append(moves, m)
		}
	}
	return moves
}

func (r DiscFlipRules) hasPlacement(b *Board, p Player) bool {
	for _, pos := range b.Positions() {
		if b.Get(pos) == NoPlayer && r.IsLegal(b, PlaceMove(pos), p) {
			return true
		}
	}
	return false
}

// bracketedRun walks from the empty cell at from in direction d and returns
// the contiguous opponent run immediately bracketed by a p-colored disc, or
// nil if the run is unterminated.
func bracketedRun(b *Board, from Position, d direction, p Player) []Position {
	opp := p.Opponent()
	var run []Position
	for q := from.step(d); b.InBounds(q); q = q.step(d) {
		switch b.Get(q) {
		case opp:
			run = append(run, q)
		case p:
			return run
		default:
			return nil
		}
	}
	return nil
}
