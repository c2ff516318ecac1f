package game

// TerritoryRules implements the territorial capture variant: stones form
// 4-connected groups that must keep at least one liberty, captures are
// resolved before the suicide check, two consecutive passes end the game,
// and scoring counts territory, stones on board, captures and komi.
type TerritoryRules struct {
	// Komi is the fixed compensation credited to the second player.
	Komi float64
}

func (TerritoryRules) ID() string { return TerritoryCapture }

func (TerritoryRules) Setup(*Board) {}

func (r TerritoryRules) IsLegal(b *Board, m Move, p Player) bool {
	switch m.Action {
	case PassAction:
		return true
	case PlaceAction:
	default:
		return false
	}
	if !b.InBounds(m.Pos) || b.Get(m.Pos) != NoPlayer {
		return false
	}
	// Simulate on a scratch board: place, resolve captures, then check the
	// placed group's liberties. Suicide is forbidden unless it captures.
	nb := b.Clone()
	nb.Set(m.Pos, p)
	captured := captureDeadNeighbors(nb, m.Pos, p.Opponent())
	_, libs := groupAndLiberties(nb, m.Pos)
	return libs > 0 || len(captured) > 0
}

func (r TerritoryRules) Apply(b *Board, m Move, p Player) (*Board, Effects) {
	nb := b.Clone()
	if m.Action == PassAction {
		return nb, Effects{}
	}
	nb.Set(m.Pos, p)
	captured := captureDeadNeighbors(nb, m.Pos, p.Opponent())
	return nb, Effects{Captured: captured}
}

func (TerritoryRules) IsTerminal(b *Board, history []Entry, passes int) bool {
	return passes >= 2
}

func (r TerritoryRules) Winner(b *Board, history []Entry) Winner {
	scoreA, scoreB := r.Scores(b, history)
	switch {
	case scoreA > scoreB:
		return WinnerA
	case scoreB > scoreA:
		return WinnerB
	default:
		return WinnerDraw
	}
}

func (r TerritoryRules) LegalMoves(b *Board, p Player) []Move {
	var moves []Move
	for _, pos := range b.Positions() {
		m := PlaceMove(pos)
		if b.Get(pos) == NoPlayer && r.IsLegal(b, m, p) {
			moves = append(moves, m)
		}
	}
	return append(moves, PassMove)
}

// Scores computes both players' scores: territory cells + stones on board +
// captures made, with komi added to the second player.
func (r TerritoryRules) Scores(b *Board, history []Entry) (scoreA, scoreB float64) {
	terrA, terrB := territories(b)
	capsA, capsB := capturesFromHistory(history)
	scoreA = float64(terrA + b.Count(PlayerA) + capsA)
	scoreB = float64(terrB+b.Count(PlayerB)+capsB) + r.Komi
	return scoreA, scoreB
}

// territories counts, per player, the empty cells of regions whose entire
// stone border is that player's color. Regions bordering both colors, or
// nothing at all, count for neither.
func territories(b *Board) (terrA, terrB int) {
	visited := make([]bool, b.Size()*b.Size())
	for _, start := range b.Positions() {
		if visited[b.index(start)] || b.Get(start) != NoPlayer {
			continue
		}
		area := 0
		var bordersA, bordersB bool
		queue := []Position{start}
		visited[b.index(start)] = true
		for len(queue) > 0 {
			pos := queue[0]
			queue = queue[1:]
			area++
			for _, n := range b.Neighbors4(pos) {
				switch b.Get(n) {
				case NoPlayer:
					if !visited[b.index(n)] {
						visited[b.index(n)] = true
						queue = append(queue, n)
					}
				case PlayerA:
					bordersA = true
				case PlayerB:
					bordersB = true
				}
			}
		}
		if bordersA && !bordersB {
			terrA += area
		} else if bordersB && !bordersA {
			terrB += area
		}
	}
	return terrA, terrB
}

// groupAndLiberties flood-fills the same-color group at start and counts its
// distinct liberties.
func groupAndLiberties(b *Board, start Position) (stones []Position, liberties int) {
	color := b.Get(start)
	if color == NoPlayer {
		return nil, 0
	}
	visited := map[Position]bool{start: true}
	libs := map[Position]bool{}
	stack := []Position{start}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stones = append(stones, pos)
		for _, n := range b.Neighbors4(pos) {
			switch b.Get(n) {
			case NoPlayer:
				libs[n] = true
			case color:
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return stones, len(libs)
}

// captureDeadNeighbors removes every opp-colored group adjacent to pos that
// has no liberties left, mutating b, and returns the removed stones.
func captureDeadNeighbors(b *Board, pos Position, opp Player) []Position {
	var captured []Position
	seen := map[Position]bool{}
	for _, n := range b.Neighbors4(pos) {
		if b.Get(n) != opp || seen[n] {
			continue
		}
		stones, libs := groupAndLiberties(b, n)
		for _, s := range stones {
			seen[s] = true
		}
		if libs == 0 {
			for _, s := range stones {
				b.Set(s, NoPlayer)
			}
			captured = append(captured, stones...)
		}
	}
	return captured
}
