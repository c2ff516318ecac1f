package game

import "fmt"

// Ruleset identifiers.
const (
	LineFormation    = "line-formation"
	TerritoryCapture = "territory-capture"
	DiscFlip         = "disc-flip"
)

// Effects summarizes the board side effects of one applied move.
type Effects struct {
	// Captured holds opponent stones removed by a territory-capture placement.
	Captured []Position
	// Flipped holds opponent discs converted by a disc-flip placement.
	Flipped []Position
}

// Entry is one history record: who moved, what they played, and the full
// resulting state needed to undo by snapshot pop.
type Entry struct {
	Player  Player
	Move    Move
	Board   *Board // snapshot after the move
	Passes  int    // consecutive-pass counter after the move
	Effects Effects
	Next    Player // player to move after the move
}

// RuleSet is the uniform contract every variant implements. Implementations
// are pure: Apply never mutates its input board, and no method keeps state
// between calls. Resign never reaches a RuleSet; the Game routes it itself.
type RuleSet interface {
	ID() string
	// Setup prepares a fresh board (disc-flip places the four center discs;
	// the other variants leave it empty).
	Setup(b *Board)
	IsLegal(b *Board, m Move, p Player) bool
	// Apply plays a legal move and returns the new board plus its side
	// effects. Callers must check IsLegal first.
	Apply(b *Board, m Move, p Player) (*Board, Effects)
	IsTerminal(b *Board, history []Entry, passes int) bool
	// Winner decides the outcome of a terminal position.
	Winner(b *Board, history []Entry) Winner
	// LegalMoves enumerates every legal move for p in row-major order,
	// for AI use.
	LegalMoves(b *Board, p Player) []Move
}

// KnownRuleset reports whether id names a supported variant.
func KnownRuleset(id string) bool {
	switch id {
	case LineFormation, TerritoryCapture, DiscFlip:
		return true
	}
	return false
}

// NewRuleSet builds the variant named by id. Komi is only used by
// territory-capture.
func NewRuleSet(id string, komi float64) (RuleSet, error) {
	switch id {
	case LineFormation:
		return LineFormationRules{}, nil
	case TerritoryCapture:
		return TerritoryRules{Komi: komi}, nil
	case DiscFlip:
		return DiscFlipRules{}, nil
	default:
		return nil, fmt.Errorf("unknown ruleset %q", id)
	}
}

// capturesFromHistory tallies cumulative captures per player out of the
// recorded move effects.
func capturesFromHistory(history []Entry) (byA, byB int) {
	for _, e := range history {
		n := len(e.Effects.Captured)
		switch e.Player {
		case PlayerA:
			byA += n
		case PlayerB:
			byB += n
		}
	}
	return byA, byB
}
