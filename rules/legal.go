package rules

// Legal-move filter (C6). Combines a piece's pseudo-legal destinations with
// the threat-line list T from threat.go per the per-line logic in spec
// §4.4.

// legalDestinations returns p's legal destination bitboard. p must belong
// to g.sideToMove; callers (LegalMovesFor, hasAnyLegalMove) enforce that.
func (g *GameState) legalDestinations(p *Piece) Bitboard {
	occ := g.allOcc
	own := g.sideOcc

	m := pieceMoves(*p, occ, own)

	if p.Kind == King {
		m |= g.castleDestinations(p.Color)
		e := g.threatenedSquaresAgainst(p.Color)
		return m &^ e
	}

	if p.Kind == Pawn {
		m |= g.enPassantDestination(*p)
	}

	lines := g.computeThreatLines()
	inCheck, double := checkState(lines, occ)

	if double {
		// Only the king has a move in a double check; every other piece's
		// set collapses to empty.
		return 0
	}

	if inCheck {
		// Per spec §4.4 step 2, M is ANDed with *every* line in T that
		// either is the (single) checking line or that p itself lies on —
		// a piece can simultaneously be the one that must block/capture the
		// checker and be pinned along a separate line, and both
		// constraints apply at once. Blocking the check while abandoning
		// an unrelated pin would still leave the king attacked.
		applied := false
		for i := range lines {
			l := lines[i]
			isChecking := l.isCheckingLine(occ)
			isPinOnP := l.line.Has(p.Sq)
			if !isChecking && !isPinOnP {
				continue
			}
			line := l.line
			if isChecking && p.Kind == Pawn && g.epTarget != NoSquare {
				capturedSq := enPassantCapturedSquare(p.Sq, g.epTarget)
				gap := l.between() &^ occ
				if gap.Count() == 1 && gap.Has(capturedSq) {
					line |= BB(g.epTarget)
				}
			}
			m &= line
			applied = true
		}
		if !applied {
			// Unreachable given inCheck is true, but guard against a
			// malformed threat-line list rather than panic.
			return 0
		}
		return m
	}

	for _, l := range lines {
		if l.line.Has(p.Sq) {
			m &= l.line
		}
	}
	return m
}

// LegalMovesFor returns the bitboard of squares the piece at sq may
// legally move to, or 0 if the square is empty, holds the wrong color's
// piece, or the game has already ended.
func (g *GameState) LegalMovesFor(sq Square) Bitboard {
	if g.terminal {
		return 0
	}
	p := g.board.PieceAt(sq)
	if p == nil || p.Color != g.sideToMove {
		return 0
	}
	return g.legalDestinations(p)
}

// hasAnyLegalMove reports whether any piece of color c has a non-empty
// legal destination set. c must be g.sideToMove.
func (g *GameState) hasAnyLegalMove(c Color) bool {
	for _, p := range g.board.pieces {
		if p.Color == c && g.legalDestinations(p) != 0 {
			return true
		}
	}
	return false
}
