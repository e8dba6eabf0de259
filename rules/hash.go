package rules

import "math/rand"

// Position hashing, adapted from the teacher engine's Zobrist tables. Here
// it serves strictly as an external logging/correlation key for cmd and
// any future HTTP/RPC collaborator (spec §1's "out of scope" boundary) —
// it plays no part in repetition detection, which status.go implements as
// the weaker from/to heuristic spec §4.6 and §9 call for explicitly.

const pieceHashIndex = int(Pawn) + 1 // NoKind..Pawn, times two colors

var (
	zobristPiece   [2][pieceHashIndex][64]uint64
	zobristCastle  [16]uint64
	zobristEnPass  [8]uint64
	zobristSideKey uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := 0; c < 2; c++ {
		for k := 0; k < pieceHashIndex; k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPass[f] = rnd.Uint64()
	}
	zobristSideKey = rnd.Uint64()
}

func colorIndex(c Color) int {
	if c == White {
		return 0
	}
	return 1
}

// Hash returns a position fingerprint suitable for external logging and
// correlating repeated client requests against the same game state. It is
// not consulted anywhere in check, legality, or repetition logic.
func (g *GameState) Hash() uint64 {
	var key uint64
	for _, p := range g.board.pieces {
		key ^= zobristPiece[colorIndex(p.Color)][int(p.Kind)][p.Sq]
	}
	if g.sideToMove == Black {
		key ^= zobristSideKey
	}
	var rights int
	if g.castleWK {
		rights |= 1
	}
	if g.castleWQ {
		rights |= 2
	}
	if g.castleBK {
		rights |= 4
	}
	if g.castleBQ {
		rights |= 8
	}
	key ^= zobristCastle[rights]
	if g.epTarget != NoSquare {
		key ^= zobristEnPass[g.epTarget.Col()]
	}
	return key
}
