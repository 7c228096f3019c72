package model

import "errors"

// Rule and lifecycle failures shared across packages. Layer
// boundaries wrap these with fmt.Errorf("...: %w", err) and callers
// match with errors.Is.
var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrGameOver        = errors.New("game is over")
	ErrGameNotFound    = errors.New("game not found")
	ErrGameExists      = errors.New("game already exists")
	ErrEmptyStack      = errors.New("nothing to restore")
	ErrNoProposal      = errors.New("no move proposal")
	ErrProviderTimeout = errors.New("provider deadline exceeded")
)
