package game

// lineDirs covers the 4 line orientations: horizontal, vertical and the
// two diagonals. Runs are counted in both directions along each.
var lineDirs = []direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

const winningRun = 5

// LineFormationRules implements the five-in-a-row variant: place anywhere
// empty, win by completing a straight run of five or more.
type LineFormationRules struct{}

func (LineFormationRules) ID() string { return LineFormation }

func (LineFormationRules) Setup(*Board) {}

func (LineFormationRules) IsLegal(b *Board, m Move, p Player) bool {
	if m.Action != PlaceAction {
		return false
	}
	return b.InBounds(m.Pos) && b.Get(m.Pos) == NoPlayer
}

func (LineFormationRules) Apply(b *Board, m Move, p Player) (*Board, Effects) {
	nb := b.Clone()
	nb.Set(m.Pos, p)
	return nb, Effects{}
}

func (LineFormationRules) IsTerminal(b *Board, history []Entry, passes int) bool {
	if len(history) > 0 {
		last := history[len(history)-1]
		if runThrough(b, last.Move.Pos, last.Player) {
			return true
		}
	}
	return b.Full()
}

func (LineFormationRules) Winner(b *Board, history []Entry) Winner {
	if len(history) > 0 {
		last := history[len(history)-1]
		if runThrough(b, last.Move.Pos, last.Player) {
			return winnerOf(last.Player)
		}
	}
	return WinnerDraw
}

func (LineFormationRules) LegalMoves(b *Board, p Player) []Move {
	var moves []Move
	for _, pos := range b.Positions() {
		if b.Get(pos) == NoPlayer {
			moves = append(moves, PlaceMove(pos))
		}
	}
	return moves
}

// runThrough reports whether a contiguous same-color run of winningRun or
// more passes through pos in any line direction.
func runThrough(b *Board, pos Position, p Player) bool {
	for _, d := range lineDirs {
		count := 1
		for q := pos.step(d); b.InBounds(q) && b.Get(q) == p; q = q.step(d) {
			count++
		}
		back := direction{-d.dr, -d.dc}
		for q := pos.step(back); b.InBounds(q) && b.Get(q) == p; q = q.step(back) {
			count++
		}
		if count >= winningRun {
			return true
		}
	}
	return false
}
