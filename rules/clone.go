package rules

// Clone returns a deep copy of g: an independent board with independent
// Piece values, so mutating the clone via ExecuteMove never touches g.
// The engine itself never needs this (a game is single-writer and moves
// forward only, per spec §5) — it exists for perft_test.go's differential
// search, which must explore many move sequences from the same root.
func (g *GameState) Clone() *GameState {
	nb := newEmptyBoard()
	for _, p := range g.board.pieces {
		cp := *p
		nb.placePiece(&cp)
	}
	clone := *g
	clone.board = nb
	return &clone
}
