package rules

// ExecuteMove is the mutating half of the C9 façade contract (spec §4.1):
// it validates the move against LegalMovesFor, applies it (including any
// castling rook relocation, en-passant capture, and promotion), flips the
// side to move, updates castling rights and the en-passant target,
// recomputes caches, and asks C7 to classify the resulting position.
func (g *GameState) ExecuteMove(from, to Square, promotion PieceKind) (MoveResult, error) {
	if g.terminal {
		return 0, ErrGameOver
	}
	if !g.LegalMovesFor(from).Has(to) {
		return 0, ErrInvalidMove
	}

	mover := g.board.PieceAt(from)
	moverColor := mover.Color
	moverKind := mover.Kind

	isEnPassant := moverKind == Pawn && to == g.epTarget && g.board.PieceAt(to) == nil
	var epCapturedSq Square = NoSquare
	if isEnPassant {
		epCapturedSq = enPassantCapturedSquare(from, g.epTarget)
	}

	isCastle := moverKind == King && absInt(to.Col()-from.Col()) == 2
	var rookMove castleSquares
	if isCastle {
		short, long := castlingLayout(moverColor)
		if to == short.kingTo {
			rookMove = short
		} else {
			rookMove = long
		}
	}

	newEP := computeEnPassantTarget(*mover, from, to)

	moved, _ := g.board.movePiece(from, to)

	if isEnPassant {
		g.board.removePieceAt(epCapturedSq)
	}
	if isCastle {
		g.board.movePiece(rookMove.rookFrom, rookMove.rookTo)
	}
	if isPromotingMove(*moved, to) {
		g.board.replacePiece(to, resolvePromotionKind(promotion), moverColor)
	}

	g.updateCastlingRights(Piece{Kind: moverKind, Color: moverColor, Sq: from}, from, to)
	g.epTarget = newEP
	g.sideToMove = moverColor.Opposite()
	g.recomputeCaches()

	status := g.classify(moveRecord{from: from, to: to, promotion: promotion})
	g.termStat = status
	if status.Result == Checkmate || status.Result == Draw {
		g.terminal = true
	}
	return status.Result, nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
