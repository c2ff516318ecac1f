package game

import "errors"

// Error kinds surfaced by the engine. All are recoverable at the call site:
// the failing operation leaves the Game untouched.
var (
	// ErrIllegalMove rejects a move the bound ruleset does not allow.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidOperation rejects an operation in the wrong lifecycle state,
	// e.g. moving after the game finished or undoing an empty history.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrCorruptState rejects an unreadable or inconsistent saved snapshot.
	ErrCorruptState = errors.New("corrupt state")
)
