package rules

// Game status handler (C7): post-move classification and the weak
// repetition heuristic described in spec §4.6. Per design note 9, only the
// last nine plies are ever consulted, so the history is a fixed-size ring
// rather than an unbounded vector.

// MoveResult is the classification returned after every executed move.
type MoveResult uint8

const (
	Normal MoveResult = iota
	Check
	Checkmate
	Draw
)

func (r MoveResult) String() string {
	switch r {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	default:
		return "normal"
	}
}

// GameStatus is the terminal-state snapshot returned by Game.Status(). A
// Checkmate result names the winner; a Draw or Check/Normal result leaves
// Winner unset.
type GameStatus struct {
	Result    MoveResult
	Winner    Color
	HasWinner bool
}

// moveRecord is one (from, to, promotion) entry in the move history.
type moveRecord struct {
	from, to  Square
	promotion PieceKind
}

func (a moveRecord) sameSquares(b moveRecord) bool {
	return a.from == b.from && a.to == b.to
}

// moveHistory is a ring buffer holding the last nine plies, which is all
// the repetition heuristic below ever needs (design note: "the full vector
// only matters if the engine later surfaces PGN-like output").
type moveHistory struct {
	entries [9]moveRecord
	count   int
}

func (h *moveHistory) push(m moveRecord) {
	h.entries[h.count%len(h.entries)] = m
	h.count++
}

// back returns the move n plies before the most recently pushed one (n=0
// is the move just pushed), or false if that ply predates what the ring
// still holds or no move has been pushed yet.
func (h *moveHistory) back(n int) (moveRecord, bool) {
	if h.count == 0 {
		return moveRecord{}, false
	}
	target := h.count - 1 - n
	if target < 0 || h.count-target > len(h.entries) {
		return moveRecord{}, false
	}
	return h.entries[target%len(h.entries)], true
}

// checkRepetition records the move just played and reports whether it
// completes a repeated (from, to) pattern per spec §4.6: the move just
// played must match both the move four plies earlier and the move eight
// plies earlier — i.e. the player has now made the same (from, to) three
// times at four-ply intervals. The single-bit repetition flag in the data
// model caches this ply's verdict; it is not itself the decision input,
// since re-deriving it from the fixed ring-buffer offsets each ply is both
// simpler and immune to being disturbed by the opponent's unrelated moves
// in between.
func (g *GameState) checkRepetition(m moveRecord) bool {
	g.history.push(m)
	cur, _ := g.history.back(0)
	fourBack, ok4 := g.history.back(4)
	eightBack, ok8 := g.history.back(8)

	repeated := ok4 && ok8 && fourBack.sameSquares(cur) && eightBack.sameSquares(cur)
	g.repetitionLatch = repeated
	return repeated
}

// classify implements the C7 decision tree of spec §4.6 for the
// already-mutated, side-flipped state g, given the move just executed by
// the side that moved before the flip.
func (g *GameState) classify(justPlayed moveRecord) GameStatus {
	// The move is recorded and the repetition latch advanced unconditionally
	// every ply, regardless of which branch below ends up deciding the
	// status — future repetition checks need every intervening ply, not
	// just the ones that happened to end up Normal.
	repeated := g.checkRepetition(justPlayed)

	sideToPlay := g.sideToMove
	inCheck := g.InCheck(sideToPlay)
	hasMove := g.hasAnyLegalMove(sideToPlay)

	switch {
	case inCheck && hasMove:
		return GameStatus{Result: Check}
	case inCheck && !hasMove:
		return GameStatus{Result: Checkmate, Winner: sideToPlay.Opposite(), HasWinner: true}
	case !hasMove:
		return GameStatus{Result: Draw}
	case repeated:
		return GameStatus{Result: Draw}
	default:
		return GameStatus{Result: Normal}
	}
}
