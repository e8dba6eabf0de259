package rules

import "errors"

// Sentinel errors per spec §7. Callers use errors.Is against these.
var (
	// ErrMalformedPosition is returned by ParsePosition when the input
	// fails the §4.7 grammar. Fatal for the affected game.
	ErrMalformedPosition = errors.New("rules: malformed position string")

	// ErrInvalidMove is returned by ExecuteMove when to is not among
	// LegalMovesFor(from). State is left unchanged.
	ErrInvalidMove = errors.New("rules: invalid move")

	// ErrGameOver is returned by ExecuteMove once the game has already
	// reached Checkmate or Draw.
	ErrGameOver = errors.New("rules: game already over")
)
