package rules

// Piece variants (C3): every piece exposes pseudo-legal destinations and a
// threat-line computation. Per design note 9, these are free functions
// taking the attack tables and board context as plain arguments rather
// than services injected into the Piece value itself — a Piece owns only
// its kind, color and square.

// pieceMoves returns p's pseudo-legal destinations: every square p's
// movement rule reaches, excluding squares occupied by same-color pieces,
// ignoring checks and pins entirely (those are legal.go's job).
func pieceMoves(p Piece, occ, own Bitboard) Bitboard {
	switch p.Kind {
	case King:
		return kingMoves[p.Sq] &^ own
	case Knight:
		return knightMoves[p.Sq] &^ own
	case Rook:
		return rookAttacks(p.Sq, occ) &^ own
	case Bishop:
		return bishopAttacks(p.Sq, occ) &^ own
	case Queen:
		return queenAttacks(p.Sq, occ) &^ own
	case Pawn:
		return pawnMoves(p, occ, own)
	default:
		return 0
	}
}

func pawnMoves(p Piece, occ, own Bitboard) Bitboard {
	opp := occ &^ own
	var dst Bitboard
	row, col := p.Sq.Row(), p.Sq.Col()

	if p.Color == White {
		one := squareAt(row+1, col)
		if one != NoSquare && !occ.Has(one) {
			dst = dst.With(one)
			if row == 1 {
				if two := squareAt(row+2, col); two != NoSquare && !occ.Has(two) {
					dst = dst.With(two)
				}
			}
		}
		dst |= pawnCaptureWhite[p.Sq] & opp
	} else {
		one := squareAt(row-1, col)
		if one != NoSquare && !occ.Has(one) {
			dst = dst.With(one)
			if row == 6 {
				if two := squareAt(row-2, col); two != NoSquare && !occ.Has(two) {
					dst = dst.With(two)
				}
			}
		}
		dst |= pawnCaptureBlack[p.Sq] & opp
	}
	return dst
}

// pieceThreatLine returns the ray from p toward kingSq, including p's own
// square, along which p threatens the king — or 0 if p does not threaten
// along any ray to that king at all. For non-sliders the "line" is either
// just p.Sq (direct attacker) or empty. For sliders, it is an x-ray walk:
// if at most one piece (of either color) stands strictly between p and
// the king, the full ray (p's square through the king-adjacent square) is
// returned; zero pieces between means direct check, exactly one means
// that piece is pinned (or, from the check side, the king can capture the
// checker — legal.go resolves which).
func pieceThreatLine(p Piece, kingSq Square, occ Bitboard) Bitboard {
	switch p.Kind {
	case Knight:
		if knightMoves[p.Sq].Has(kingSq) {
			return BB(p.Sq)
		}
		return 0
	case Pawn:
		var caps Bitboard
		if p.Color == White {
			caps = pawnCaptureWhite[p.Sq]
		} else {
			caps = pawnCaptureBlack[p.Sq]
		}
		if caps.Has(kingSq) {
			return BB(p.Sq)
		}
		return 0
	case King:
		if kingMoves[p.Sq].Has(kingSq) {
			return BB(p.Sq)
		}
		return 0
	case Rook:
		return xrayLine(p.Sq, kingSq, occ, &rookRays)
	case Bishop:
		return xrayLine(p.Sq, kingSq, occ, &bishopRays)
	case Queen:
		if l := xrayLine(p.Sq, kingSq, occ, &rookRays); l != 0 {
			return l
		}
		// At most one of the rook-style or bishop-style analysis is ever
		// nonzero: a queen stands on only one rook or bishop ray to any
		// given king, never both (per spec §4.3).
		return xrayLine(p.Sq, kingSq, occ, &bishopRays)
	default:
		return 0
	}
}

// xrayLine scans the ray from sq toward kingSq (if sq and kingSq share one
// of the four rays in the given table) and returns the inclusive line
// piece-square..king-adjacent-square when at most one piece lies strictly
// between them. It returns 0 if sq and kingSq share no ray, or if two or
// more pieces lie between them (in which case the line cannot be a
// pin/check path).
func xrayLine(sq, kingSq Square, occ Bitboard, rays *[64][4]Bitboard) Bitboard {
	for d := 0; d < 4; d++ {
		ray := rays[sq][d]
		if !ray.Has(kingSq) {
			continue
		}
		// The segment strictly between sq and kingSq, exclusive of both.
		between := ray &^ rays[kingSq][d] &^ BB(kingSq)
		blockers := between & occ
		if blockers.Count() > 1 {
			return 0
		}
		return BB(sq) | between
	}
	return 0
}
