package rules

// Board holds the two parallel representations described in spec §3: a
// dense array of 64 optional piece references, and an ordered collection
// of all live pieces. The two must always agree — every mutation goes
// through movePiece/placePiece/removePiece below, never direct index
// assignment from outside this file.
type Board struct {
	squares [64]*Piece
	pieces  []*Piece
}

func newEmptyBoard() *Board {
	return &Board{pieces: make([]*Piece, 0, 32)}
}

// PieceAt returns the piece on sq, or nil if the square is empty.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq]
}

// Pieces returns the live ordered collection of pieces on the board. The
// returned slice is owned by the board; callers must not mutate it.
func (b *Board) Pieces() []*Piece { return b.pieces }

// placePiece adds a brand-new piece to an empty square, keeping both
// representations in sync.
func (b *Board) placePiece(p *Piece) {
	b.squares[p.Sq] = p
	b.pieces = append(b.pieces, p)
}

// removePieceAt removes whatever piece (if any) stands on sq from both
// representations, and returns it.
func (b *Board) removePieceAt(sq Square) *Piece {
	p := b.squares[sq]
	if p == nil {
		return nil
	}
	b.squares[sq] = nil
	for i, q := range b.pieces {
		if q == p {
			last := len(b.pieces) - 1
			b.pieces[i] = b.pieces[last]
			b.pieces = b.pieces[:last]
			break
		}
	}
	return p
}

// movePiece is the single primitive for relocating a piece. It updates
// both representations and, if a piece already stood on "to", removes the
// captured piece from the collection first. Per design note 9, no caller
// outside this file may touch squares/pieces directly.
func (b *Board) movePiece(from, to Square) (moved, captured *Piece) {
	moved = b.removePieceAt(from)
	if moved == nil {
		return nil, nil
	}
	captured = b.removePieceAt(to)
	moved.Sq = to
	b.squares[to] = moved
	b.pieces = append(b.pieces, moved)
	// removePieceAt above already stripped "moved" out of the collection
	// when it happened to be the occupant of "from"; re-add it at its new
	// square now that its Sq field is updated.
	return moved, captured
}

// replacePiece swaps the piece standing on sq for a freshly constructed
// one of the given kind/color (used by promotion in special.go).
func (b *Board) replacePiece(sq Square, kind PieceKind, color Color) *Piece {
	b.removePieceAt(sq)
	np := &Piece{Kind: kind, Color: color, Sq: sq}
	b.placePiece(np)
	return np
}

// occupancyOf returns the bitboard of squares occupied by pieces of the
// given color.
func (b *Board) occupancyOf(c Color) Bitboard {
	var occ Bitboard
	for _, p := range b.pieces {
		if p.Color == c {
			occ = occ.With(p.Sq)
		}
	}
	return occ
}

// allOccupancy returns the bitboard of every occupied square.
func (b *Board) allOccupancy() Bitboard {
	var occ Bitboard
	for _, p := range b.pieces {
		occ = occ.With(p.Sq)
	}
	return occ
}

// bitboardOf returns the bitboard of every square occupied by a piece of
// the given kind and color.
func (b *Board) bitboardOf(kind PieceKind, c Color) Bitboard {
	var bb Bitboard
	for _, p := range b.pieces {
		if p.Kind == kind && p.Color == c {
			bb = bb.With(p.Sq)
		}
	}
	return bb
}

// kingOf returns the (unique) king piece of the given color, or nil if
// none exists (only possible transiently, never in a well-formed game).
func (b *Board) kingOf(c Color) *Piece {
	for _, p := range b.pieces {
		if p.Kind == King && p.Color == c {
			return p
		}
	}
	return nil
}

// GameState is the complete, owned state of one game, per spec §3. It is
// constructed by notation.go's parser and mutated only through legal.go's
// filtering plus the movePiece/special-move primitives invoked from
// game.Game.ExecuteMove.
type GameState struct {
	board      *Board
	sideToMove Color

	allOcc, sideOcc, oppOcc Bitboard

	castleWK, castleWQ bool
	castleBK, castleBQ bool

	epTarget Square

	history         moveHistory
	repetitionLatch bool
	terminal        bool
	termStat        GameStatus
}

// Status returns the most recent terminal-classification snapshot. Before
// any move has been executed it reports Normal with no winner.
func (g *GameState) Status() GameStatus { return g.termStat }

// SideToMove reports which color is to play.
func (g *GameState) SideToMove() Color { return g.sideToMove }

// Over reports whether the game has reached a terminal status.
func (g *GameState) Over() bool { return g.terminal }

// KingSquare returns the square of the king of the given color.
func (g *GameState) KingSquare(c Color) Square {
	if k := g.board.kingOf(c); k != nil {
		return k.Sq
	}
	return NoSquare
}

// EnPassantTarget returns the current en-passant target square, or
// NoSquare if none is active.
func (g *GameState) EnPassantTarget() Square { return g.epTarget }

// CastlingRights returns the four castling-rights booleans in the order
// white-short, white-long, black-short, black-long.
func (g *GameState) CastlingRights() (wk, wq, bk, bq bool) {
	return g.castleWK, g.castleWQ, g.castleBK, g.castleBQ
}

// recomputeCaches refreshes the cached occupancy bitboards after a
// mutation, per the invariant in spec §3 that they are recomputed after
// every executed move.
func (g *GameState) recomputeCaches() {
	white := g.board.occupancyOf(White)
	black := g.board.occupancyOf(Black)
	g.allOcc = white | black
	if g.sideToMove == White {
		g.sideOcc, g.oppOcc = white, black
	} else {
		g.sideOcc, g.oppOcc = black, white
	}
}
