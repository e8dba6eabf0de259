// Package game exposes the chess rules engine's public contract (spec
// §4.1/§6): a single façade type that owns a game's state and orchestrates
// the rules package's components on the caller's behalf. It adds no
// behavior of its own — it exists so external collaborators (matchmaking,
// the HTTP/RPC surface, persistence) depend on a small, stable surface
// rather than reaching into rules directly.
package game

import "chessrules/rules"

// Game holds one in-progress or finished chess game.
type Game struct {
	state *rules.GameState
}

// New creates a Game from a position string (see rules.ParsePosition for
// the grammar). An empty string starts from the classical opening layout.
func New(positionString string) (*Game, error) {
	state, err := rules.ParsePosition(positionString)
	if err != nil {
		return nil, err
	}
	return &Game{state: state}, nil
}

// LegalMovesFor returns the bitboard of squares the piece at sq may
// legally move to.
func (g *Game) LegalMovesFor(sq rules.Square) rules.Bitboard {
	return g.state.LegalMovesFor(sq)
}

// ExecuteMove attempts to play from→to, resolving promotion if the move
// reaches the back rank. It returns rules.ErrInvalidMove if to is not a
// legal destination for the piece at from, and rules.ErrGameOver if the
// game has already concluded.
func (g *Game) ExecuteMove(from, to rules.Square, promotion rules.PieceKind) (rules.MoveResult, error) {
	return g.state.ExecuteMove(from, to, promotion)
}

// SideToPlay reports which color is to move.
func (g *Game) SideToPlay() rules.Color {
	return g.state.SideToMove()
}

// Status reports the most recent terminal-classification snapshot.
func (g *Game) Status() rules.GameStatus {
	return g.state.Status()
}

// KingSquare returns the square of the king of the given color.
func (g *Game) KingSquare(c rules.Color) rules.Square {
	return g.state.KingSquare(c)
}

// Over reports whether the game has reached Checkmate or Draw.
func (g *Game) Over() bool {
	return g.state.Over()
}

// Notation serializes the current position back to the four-field form
// accepted by New, for logging or persistence by an external collaborator.
func (g *Game) Notation() string {
	return g.state.ToNotation()
}

// Hash returns a position fingerprint for external logging/correlation;
// it plays no role in the engine's own repetition detection.
func (g *Game) Hash() uint64 {
	return g.state.Hash()
}
