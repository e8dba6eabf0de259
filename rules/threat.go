package rules

import "golang.org/x/exp/slices"

// Threat-line analyzer (C4): aggregates individual pieces' threat lines
// into the list T described in spec §4.4, and answers the "what does the
// opponent attack" questions that both check detection and castling
// legality need.

// threatLine pairs a computed ray (inclusive of the attacker's square,
// exclusive of the king's) with the attacker that produced it.
type threatLine struct {
	line     Bitboard
	attacker Square
}

// between returns the squares strictly between the attacker and the king,
// i.e. the line with the attacker's own square removed.
func (t threatLine) between() Bitboard { return t.line &^ BB(t.attacker) }

// isCheckingLine reports whether no piece at all currently occupies the
// squares between the attacker and the king — i.e. this line is a direct
// check rather than a pin.
func (t threatLine) isCheckingLine(occ Bitboard) bool {
	return (t.between() & occ) == 0
}

// computeThreatLines iterates the opponent's pieces (relative to
// side-to-move) and collects every non-zero threat line toward the
// side-to-move's king, discarding any line that — apart from the attacker
// itself — intersects another opponent-colored piece, since such a piece
// fully blocks its own side's line and the ray cannot be a pin/check path.
func (g *GameState) computeThreatLines() []threatLine {
	kingSq := g.KingSquare(g.sideToMove)
	if kingSq == NoSquare {
		return nil
	}
	opp := g.sideToMove.Opposite()
	occ := g.allOcc

	var lines []threatLine
	for _, p := range g.board.pieces {
		if p.Color != opp {
			continue
		}
		line := pieceThreatLine(*p, kingSq, occ)
		if line == 0 {
			continue
		}
		rest := line &^ BB(p.Sq)
		blockedByOwnSide := slices.ContainsFunc(g.board.pieces, func(q *Piece) bool {
			return q.Color == opp && rest.Has(q.Sq)
		})
		if blockedByOwnSide {
			continue
		}
		lines = append(lines, threatLine{line: line, attacker: p.Sq})
	}
	return lines
}

// checkState reports whether side-to-move's king is in check and, if so,
// whether it is in check from two or more attackers at once (in which
// case only the king itself has a legal move, per spec §4.4's per-line
// AND logic collapsing every non-king piece's move set to empty).
func checkState(lines []threatLine, occ Bitboard) (inCheck bool, doubleCheck bool) {
	checkers := 0
	for _, l := range lines {
		if l.isCheckingLine(occ) {
			checkers++
		}
	}
	return checkers > 0, checkers >= 2
}

// rawAttackSquares returns every square attacked by a piece of color `by`,
// given the occupancy `occ` to resolve sliding pieces against. Squares
// occupied by the attacker's own pieces are included (a king stepping
// there would be blocked anyway by ordinary move generation; the set is
// used purely to test safety, not to enumerate the attacker's own legal
// moves).
func rawAttackSquares(pieces []*Piece, by Color, occ Bitboard) Bitboard {
	var t Bitboard
	for _, p := range pieces {
		if p.Color != by {
			continue
		}
		switch p.Kind {
		case King:
			t |= kingMoves[p.Sq]
		case Knight:
			t |= knightMoves[p.Sq]
		case Rook:
			t |= rookAttacks(p.Sq, occ)
		case Bishop:
			t |= bishopAttacks(p.Sq, occ)
		case Queen:
			t |= queenAttacks(p.Sq, occ)
		case Pawn:
			if p.Color == White {
				t |= pawnCaptureWhite[p.Sq]
			} else {
				t |= pawnCaptureBlack[p.Sq]
			}
		}
	}
	return t
}

// threatenedSquaresAgainst returns every square the opponent of `c`
// attacks, with c's own king removed from the occupancy first — so that
// squares "behind" the king along a slider's ray are correctly marked as
// attacked (otherwise the king could appear to escape check by stepping
// backward along the checking ray). This is the façade's internal
// threatened_squares_against_self helper from spec §4.1, generalized to
// either color so legal.go can use it for both king-move filtering and
// castling-through-check tests.
func (g *GameState) threatenedSquaresAgainst(c Color) Bitboard {
	kingSq := g.KingSquare(c)
	occ := g.allOcc
	if kingSq != NoSquare {
		occ = occ.Without(kingSq)
	}
	return rawAttackSquares(g.board.pieces, c.Opposite(), occ)
}

// InCheck reports whether the given color's king currently stands on a
// square attacked by the opponent.
func (g *GameState) InCheck(c Color) bool {
	kingSq := g.KingSquare(c)
	if kingSq == NoSquare {
		return false
	}
	occ := g.allOcc
	return rawAttackSquares(g.board.pieces, c.Opposite(), occ).Has(kingSq)
}
