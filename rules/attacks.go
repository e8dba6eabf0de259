package rules

import "math/bits"

// Attack-table builder (C2). All tables are computed once at process
// start and are immutable afterward, so they may be shared by unlimited
// concurrent readers (see spec §5) without locking.
//
// Direction indices for the ray tables below are purely internal axis
// labels (0..3 for each of the rook's and bishop's two axes); they do not
// correspond to compass directions on the physical board, only to
// row/column adjacency, which is all move generation ever needs.

var (
	kingMoves   [64]Bitboard
	knightMoves [64]Bitboard

	pawnPushWhite    [64]Bitboard
	pawnPushBlack    [64]Bitboard
	pawnCaptureWhite [64]Bitboard
	pawnCaptureBlack [64]Bitboard

	// rookRays[sq][d] / bishopRays[sq][d]: every square along ray d from sq,
	// not including sq itself, out to the edge of the board.
	rookRays   [64][4]Bitboard
	bishopRays [64][4]Bitboard

	// Blocker masks exclude the board edge squares for each ray, since an
	// edge square can never hide a further blocker behind it.
	rookMask   [64]Bitboard
	bishopMask [64]Bitboard

	// rookAttackTable[sq][blockerKey] / bishopAttackTable[sq][blockerKey]:
	// the attack set (including the first blocker hit in each direction)
	// for every occupancy pattern expressible within the square's mask.
	rookAttackTable   [64][]Bitboard
	bishopAttackTable [64][]Bitboard
)

func init() {
	buildLeaperTables()
	buildRayTables()
	buildSliderTables()
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

func buildLeaperTables() {
	for s := 0; s < 64; s++ {
		sq := Square(s)
		row, col := sq.Row(), sq.Col()

		var km, nm Bitboard
		for _, d := range kingOffsets {
			if t := squareAt(row+d[0], col+d[1]); t != NoSquare {
				km = km.With(t)
			}
		}
		for _, d := range knightOffsets {
			if t := squareAt(row+d[0], col+d[1]); t != NoSquare {
				nm = nm.With(t)
			}
		}
		kingMoves[s] = km
		knightMoves[s] = nm

		// Pawn single push, plus the double push from each side's second rank.
		if t := squareAt(row+1, col); t != NoSquare {
			pawnPushWhite[s] = pawnPushWhite[s].With(t)
			if row == 1 {
				if t2 := squareAt(row+2, col); t2 != NoSquare {
					pawnPushWhite[s] = pawnPushWhite[s].With(t2)
				}
			}
		}
		if t := squareAt(row-1, col); t != NoSquare {
			pawnPushBlack[s] = pawnPushBlack[s].With(t)
			if row == 6 {
				if t2 := squareAt(row-2, col); t2 != NoSquare {
					pawnPushBlack[s] = pawnPushBlack[s].With(t2)
				}
			}
		}

		// Pawn diagonal captures.
		if t := squareAt(row+1, col+1); t != NoSquare {
			pawnCaptureWhite[s] = pawnCaptureWhite[s].With(t)
		}
		if t := squareAt(row+1, col-1); t != NoSquare {
			pawnCaptureWhite[s] = pawnCaptureWhite[s].With(t)
		}
		if t := squareAt(row-1, col+1); t != NoSquare {
			pawnCaptureBlack[s] = pawnCaptureBlack[s].With(t)
		}
		if t := squareAt(row-1, col-1); t != NoSquare {
			pawnCaptureBlack[s] = pawnCaptureBlack[s].With(t)
		}
	}
}

// rookDirs / bishopDirs give the row/col step for each of the four rays
// of a rook or bishop. Directions 0 and 2 walk toward increasing square
// index along their axis (so the least-significant blocker bit is the
// nearest one); directions 1 and 3 walk toward decreasing index.
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func buildRayTables() {
	for s := 0; s < 64; s++ {
		sq := Square(s)
		row, col := sq.Row(), sq.Col()
		for d, step := range rookDirs {
			var ray Bitboard
			r, c := row+step[0], col+step[1]
			for {
				t := squareAt(r, c)
				if t == NoSquare {
					break
				}
				ray = ray.With(t)
				r, c = r+step[0], c+step[1]
			}
			rookRays[s][d] = ray
		}
		for d, step := range bishopDirs {
			var ray Bitboard
			r, c := row+step[0], col+step[1]
			for {
				t := squareAt(r, c)
				if t == NoSquare {
					break
				}
				ray = ray.With(t)
				r, c = r+step[0], c+step[1]
			}
			bishopRays[s][d] = ray
		}
	}
}

// edgeCol/edgeRow report whether a step along a direction has exited the
// board onto the last rank/file that can still hide a blocker — used only
// to build the trimmed masks below.
func buildSliderTables() {
	for s := 0; s < 64; s++ {
		sq := Square(s)
		row, col := sq.Row(), sq.Col()

		var rm Bitboard
		for _, step := range rookDirs {
			r, c := row+step[0], col+step[1]
			for {
				nr, nc := r+step[0], c+step[1]
				if squareAt(nr, nc) == NoSquare {
					break
				}
				if squareAt(r, c) == NoSquare {
					break
				}
				rm = rm.With(Square(r*8 + c))
				r, c = nr, nc
			}
		}
		rookMask[s] = rm

		var bm Bitboard
		for _, step := range bishopDirs {
			r, c := row+step[0], col+step[1]
			for {
				nr, nc := r+step[0], c+step[1]
				if squareAt(nr, nc) == NoSquare {
					break
				}
				if squareAt(r, c) == NoSquare {
					break
				}
				bm = bm.With(Square(r*8 + c))
				r, c = nr, nc
			}
		}
		bishopMask[s] = bm

		rBits := bits.OnesCount64(uint64(rm))
		bBits := bits.OnesCount64(uint64(bm))
		rookAttackTable[s] = make([]Bitboard, 1<<uint(rBits))
		bishopAttackTable[s] = make([]Bitboard, 1<<uint(bBits))

		for idx := 0; idx < (1 << uint(rBits)); idx++ {
			occ := pdep(uint64(idx), uint64(rm))
			rookAttackTable[s][idx] = slideAttacks(Square(s), Bitboard(occ), &rookRays)
		}
		for idx := 0; idx < (1 << uint(bBits)); idx++ {
			occ := pdep(uint64(idx), uint64(bm))
			bishopAttackTable[s][idx] = slideAttacks(Square(s), Bitboard(occ), &bishopRays)
		}
	}
}

// slideAttacks walks every ray from sq outward until it hits the first
// blocker bit (or the edge), including that blocker square as a capture
// target. This is the ray-by-ray walk construction described in spec §4.2.
func slideAttacks(sq Square, occ Bitboard, rays *[64][4]Bitboard) Bitboard {
	var attacks Bitboard
	for d := 0; d < 4; d++ {
		ray := rays[sq][d]
		blockers := ray & occ
		if blockers == 0 {
			attacks |= ray
			continue
		}
		var first Square
		if d == 0 || d == 2 {
			first, _ = blockers.PopLSB()
		} else {
			first = Square(63 - bits.LeadingZeros64(uint64(blockers)))
		}
		attacks |= ray &^ rays[first][d]
	}
	return attacks
}

// pext extracts the bits of x at the positions set in mask, packing them
// into the low bits of the result (software fallback; no BMI2 dependency).
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(lsb))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
		m &= m - 1
	}
	return res
}

// pdep deposits the low bits of x into the positions set in mask.
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; {
		lsb := m & -m
		bit := uint(bits.TrailingZeros64(lsb))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
		m &= m - 1
	}
	return res
}

// rookAttacks returns the rook attack set from sq given full board occupancy.
func rookAttacks(sq Square, occ Bitboard) Bitboard {
	idx := pext(uint64(occ), uint64(rookMask[sq]))
	return rookAttackTable[sq][idx]
}

// bishopAttacks returns the bishop attack set from sq given full board occupancy.
func bishopAttacks(sq Square, occ Bitboard) Bitboard {
	idx := pext(uint64(occ), uint64(bishopMask[sq]))
	return bishopAttackTable[sq][idx]
}

// queenAttacks composes a rook-style and bishop-style analysis, per §4.3.
func queenAttacks(sq Square, occ Bitboard) Bitboard {
	return rookAttacks(sq, occ) | bishopAttacks(sq, occ)
}
