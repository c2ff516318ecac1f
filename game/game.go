package game

import "fmt"

// Winner is the outcome of a game.
type Winner int8

const (
	WinnerNone Winner = iota
	WinnerA
	WinnerB
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerA:
		return "a"
	case WinnerB:
		return "b"
	case WinnerDraw:
		return "draw"
	default:
		return "none"
	}
}

func winnerOf(p Player) Winner {
	switch p {
	case PlayerA:
		return WinnerA
	case PlayerB:
		return WinnerB
	default:
		return WinnerNone
	}
}

// Game is the turn state machine for one match. It owns a board, a ruleset
// and an append-only history, and is mutated only through its own methods.
// A Game is a plain caller-owned value: distinct games share no state, and
// callers must serialize access to the same instance.
type Game struct {
	rules    RuleSet
	size     int
	komi     float64
	board    *Board
	current  Player
	history  []Entry
	passes   int
	finished bool
	winner   Winner
}

// NewGame creates a game bound to the ruleset named by rulesetID. Komi is
// only meaningful for territory-capture and is ignored otherwise.
func NewGame(rulesetID string, size int, komi float64) (*Game, error) {
	if rulesetID != TerritoryCapture {
		komi = 0
	}
	rules, err := NewRuleSet(rulesetID, komi)
	if err != nil {
		return nil, err
	}
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	rules.Setup(board)
	return &Game{
		rules:   rules,
		size:    size,
		komi:    komi,
		board:   board,
		current: PlayerA,
		winner:  WinnerNone,
	}, nil
}

func (g *Game) Rules() RuleSet         { return g.rules }
func (g *Game) Board() *Board          { return g.board }
func (g *Game) Size() int              { return g.size }
func (g *Game) Komi() float64          { return g.komi }
func (g *Game) CurrentPlayer() Player  { return g.current }
func (g *Game) PassCount() int         { return g.passes }
func (g *Game) Finished() bool         { return g.finished }
func (g *Game) Winner() Winner         { return g.winner }
func (g *Game) History() []Entry       { return g.history }

// ApplyMove validates and plays one move for the current player. On failure
// the game is left untouched. After a disc-flip placement the opponent is
// skipped when they have no legal move left (forced pass); the skip is not
// recorded as a history entry of its own.
func (g *Game) ApplyMove(m Move) error {
	if g.finished {
		return fmt.Errorf("%w: game is finished", ErrInvalidOperation)
	}
	if m.Action == ResignAction {
		return g.Resign()
	}
	mover := g.current
	if !g.rules.IsLegal(g.board, m, mover) {
		return fmt.Errorf("%w: %s %v for player %s", ErrIllegalMove, m.Action, m.Pos, mover.Symbol())
	}
	board, effects := g.rules.Apply(g.board, m, mover)
	if m.Action == PassAction {
		g.passes++
	} else {
		g.passes = 0
	}
	g.board = board
	g.history = append(g.history, Entry{
		Player:  mover,
		Move:    m,
		Board:   board,
		Passes:  g.passes,
		Effects: effects,
	})
	if g.rules.IsTerminal(g.board, g.history, g.passes) {
		g.finished = true
		g.winner = g.rules.Winner(g.board, g.history)
	} else {
		next := mover.Opponent()
		if len(g.rules.LegalMoves(g.board, next)) == 0 {
			next = mover
		}
		g.current = next
	}
	g.history[len(g.history)-1].Next = g.current
	return nil
}

// Resign ends the game in favor of the non-resigning player and records a
// resign entry.
func (g *Game) Resign() error {
	if g.finished {
		return fmt.Errorf("%w: game is finished", ErrInvalidOperation)
	}
	mover := g.current
	g.history = append(g.history, Entry{
		Player: mover,
		Move:   ResignMove,
		Board:  g.board,
		Passes: g.passes,
		Next:   mover,
	})
	g.finished = true
	g.winner = winnerOf(mover.Opponent())
	return nil
}

// Undo pops the last history entry and restores the board, current player
// and pass counter to their pre-move values. Only legal while the game is
// in progress and the history is non-empty.
func (g *Game) Undo() error {
	if g.finished {
		return fmt.Errorf("%w: cannot undo a finished game", ErrInvalidOperation)
	}
	if len(g.history) == 0 {
		return fmt.Errorf("%w: nothing to undo", ErrInvalidOperation)
	}
	g.history = g.history[:len(g.history)-1]
	if len(g.history) == 0 {
		board, err := NewBoard(g.size)
		if err != nil {
			return err
		}
		g.rules.Setup(board)
		g.board = board
		g.current = PlayerA
		g.passes = 0
		return nil
	}
	last := g.history[len(g.history)-1]
	g.board = last.Board.Clone()
	g.current = last.Next
	g.passes = last.Passes
	return nil
}
