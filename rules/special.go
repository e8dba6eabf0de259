package rules

// Special-move handling (C5): castling rights bookkeeping, en-passant
// target tracking and its horizontal-pin guard, and promotion resolution.

// castleSquares names every square the castling machinery for one side and
// one color needs: where the king and rook start, where they land, the
// squares that must stand empty, and the squares the king's path must not
// be attacked on (its home square, the square it steps over, and its
// destination).
type castleSquares struct {
	rookFrom, rookTo Square
	kingFrom, kingTo Square
	mustBeEmpty      Bitboard
	kingPath         Bitboard
}

// castlingLayout returns the short (kingside) and long (queenside) castle
// descriptions for c, derived from spec §3's square numbering: col 0 is the
// h-file, col 7 the a-file, so the kingside rook sits at the low-column
// corner and the queenside rook at the high-column corner of the color's
// home rank, regardless of the mirrored orientation.
func castlingLayout(c Color) (short, long castleSquares) {
	row := 0
	if c == Black {
		row = 7
	}
	kingFrom := squareAt(row, 3)

	short = castleSquares{
		rookFrom:    squareAt(row, 0),
		rookTo:      squareAt(row, 2),
		kingFrom:    kingFrom,
		kingTo:      squareAt(row, 1),
		mustBeEmpty: BB(squareAt(row, 1)) | BB(squareAt(row, 2)),
		kingPath:    BB(squareAt(row, 3)) | BB(squareAt(row, 2)) | BB(squareAt(row, 1)),
	}
	long = castleSquares{
		rookFrom:    squareAt(row, 7),
		rookTo:      squareAt(row, 4),
		kingFrom:    kingFrom,
		kingTo:      squareAt(row, 5),
		mustBeEmpty: BB(squareAt(row, 4)) | BB(squareAt(row, 5)) | BB(squareAt(row, 6)),
		kingPath:    BB(squareAt(row, 3)) | BB(squareAt(row, 4)) | BB(squareAt(row, 5)),
	}
	return short, long
}

// castleDestinations returns the bitboard of squares the king of color c
// may legally castle to, given its current rights and the board's current
// occupancy and attacked squares. It is pieceMoves' castling supplement,
// applied on top of the king's ordinary one-step destinations.
func (g *GameState) castleDestinations(c Color) Bitboard {
	wk, wq, bk, bq := g.CastlingRights()
	var short, long bool
	if c == White {
		short, long = wk, wq
	} else {
		short, long = bk, bq
	}
	if !short && !long {
		return 0
	}

	shortSq, longSq := castlingLayout(c)
	attacked := g.threatenedSquaresAgainst(c)
	var dst Bitboard

	if short && (g.allOcc&shortSq.mustBeEmpty) == 0 && (attacked&shortSq.kingPath) == 0 {
		dst = dst.With(shortSq.kingTo)
	}
	if long && (g.allOcc&longSq.mustBeEmpty) == 0 && (attacked&longSq.kingPath) == 0 {
		dst = dst.With(longSq.kingTo)
	}
	return dst
}

// rookHomeSquares reports, for every color, the squares a rook starts
// castling from — used to clear rights the moment either rook moves or is
// captured on its home square.
func rookHomeSquares() (whiteShort, whiteLong, blackShort, blackLong Square) {
	ws, wl := castlingLayout(White)
	bs, bl := castlingLayout(Black)
	return ws.rookFrom, wl.rookFrom, bs.rookFrom, bl.rookFrom
}

// updateCastlingRights adjusts g's castling rights after a move from/to the
// given squares by the given piece, per spec §4.5: a king move forfeits
// both of its color's rights; a rook move or capture on a rook's home
// square forfeits that specific right. Rights only ever turn off, never
// back on, so re-checking an already-false right is harmless.
func (g *GameState) updateCastlingRights(moved Piece, from, to Square) {
	if moved.Kind == King {
		if moved.Color == White {
			g.castleWK, g.castleWQ = false, false
		} else {
			g.castleBK, g.castleBQ = false, false
		}
	}

	wShort, wLong, bShort, bLong := rookHomeSquares()
	clearIfHome := func(sq Square) {
		switch sq {
		case wShort:
			g.castleWK = false
		case wLong:
			g.castleWQ = false
		case bShort:
			g.castleBK = false
		case bLong:
			g.castleBQ = false
		}
	}
	clearIfHome(from)
	clearIfHome(to)
}

// computeEnPassantTarget returns the square a double pawn push from/to
// passes over, to be recorded as the new en-passant target — or NoSquare
// for every other kind of move. Per spec §4.5 the target is cleared on
// every ply and only ever set by this function.
func computeEnPassantTarget(moved Piece, from, to Square) Square {
	if moved.Kind != Pawn {
		return NoSquare
	}
	rowDiff := int(to.Row()) - int(from.Row())
	if rowDiff == 2 {
		return squareAt(from.Row()+1, from.Col())
	}
	if rowDiff == -2 {
		return squareAt(from.Row()-1, from.Col())
	}
	return NoSquare
}

// enPassantCapturedSquare returns the square of the pawn an en-passant
// capture toward epTarget would remove: the square on the capturing pawn's
// own rank, in the target's file.
func enPassantCapturedSquare(capturingPawnSq, epTarget Square) Square {
	return squareAt(capturingPawnSq.Row(), epTarget.Col())
}

// enPassantHorizontalPinBlocks reports whether taking en passant with pawn
// would illegally expose its own king to a rook or queen along the shared
// rank — the rare case where both the capturing pawn and the captured pawn
// are the only pieces standing between an enemy rook/queen and the king,
// so removing them both at once opens a discovered check. Per spec §4.5
// this check stands apart from the ordinary pin logic in threat.go because
// it is the one case where a single move removes two pieces from the board
// at once.
func (g *GameState) enPassantHorizontalPinBlocks(pawn Piece, epTarget Square) bool {
	kingSq := g.KingSquare(pawn.Color)
	if kingSq == NoSquare || kingSq.Row() != pawn.Sq.Row() {
		return false
	}
	capturedSq := enPassantCapturedSquare(pawn.Sq, epTarget)

	occAfter := g.allOcc.Without(pawn.Sq).Without(capturedSq)
	opp := pawn.Color.Opposite()
	attackers := rookAttacks(kingSq, occAfter) &
		(g.board.bitboardOf(Rook, opp) | g.board.bitboardOf(Queen, opp))

	blocked := false
	attackers.Iter(func(sq Square) {
		if sq.Row() == kingSq.Row() {
			blocked = true
		}
	})
	return blocked
}

// enPassantDestination returns the en-passant capture destination for pawn
// (a single bit, or 0), after applying the horizontal-pin guard above.
// This is folded into the pawn's pseudo-legal destinations by legal.go,
// which is also where the "en passant may block a check" extension from
// spec §4.4 is applied.
func (g *GameState) enPassantDestination(pawn Piece) Bitboard {
	if g.epTarget == NoSquare {
		return 0
	}
	var caps Bitboard
	if pawn.Color == White {
		caps = pawnCaptureWhite[pawn.Sq]
	} else {
		caps = pawnCaptureBlack[pawn.Sq]
	}
	if !caps.Has(g.epTarget) {
		return 0
	}
	if g.enPassantHorizontalPinBlocks(pawn, g.epTarget) {
		return 0
	}
	return BB(g.epTarget)
}

// resolvePromotionKind normalizes a requested promotion piece kind,
// silently defaulting to Queen for any kind that cannot legally be
// promoted to (including an unspecified NoKind) — the Open Question on
// default promotion is resolved this way per SPEC_FULL.md §6.
func resolvePromotionKind(requested PieceKind) PieceKind {
	switch requested {
	case Queen, Rook, Bishop, Knight:
		return requested
	default:
		return Queen
	}
}

// isPromotingMove reports whether a pawn move from/to reaches the back
// rank and therefore must resolve a promotion.
func isPromotingMove(moved Piece, to Square) bool {
	if moved.Kind != Pawn {
		return false
	}
	if moved.Color == White {
		return to.Row() == 7
	}
	return to.Row() == 0
}

// promotionChoices enumerates the distinct promotion kinds a move from the
// given piece to the given square must be tried with — the four promotable
// kinds if the move promotes, or just NoKind (no promotion) otherwise. Used
// by perft-style exhaustive move enumeration, where each promotion choice
// is a separate move.
func promotionChoices(moved Piece, to Square) []PieceKind {
	if !isPromotingMove(moved, to) {
		return []PieceKind{NoKind}
	}
	return []PieceKind{Queen, Rook, Bishop, Knight}
}
