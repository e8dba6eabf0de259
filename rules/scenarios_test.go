package rules

import "testing"

// Concrete walkthroughs exercising the six scenarios worked through in
// design discussions: fool's mate, a castle blocked by a check-through
// square, the en-passant horizontal-pin guard, underpromotion, stalemate,
// and the weak repetition heuristic.

func TestScenarioFoolsMate(t *testing.T) {
	g, err := ParsePosition("")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}
	moves := []struct{ from, to string }{
		{"f2", "f3"},
		{"e7", "e5"},
		{"g2", "g4"},
		{"d8", "h4"},
	}
	var last MoveResult
	for _, m := range moves {
		last, err = g.ExecuteMove(ParseSquare(m.from), ParseSquare(m.to), NoKind)
		if err != nil {
			t.Fatalf("ExecuteMove(%s-%s): %v", m.from, m.to, err)
		}
	}
	if last != Checkmate {
		t.Fatalf("final result = %v, want checkmate", last)
	}
	status := g.Status()
	if !status.HasWinner || status.Winner != Black {
		t.Errorf("status = %+v, want black to have won", status)
	}
}

func TestScenarioCastleBlockedByCheckThrough(t *testing.T) {
	g, err := ParsePosition("4r3/8/8/8/8/8/8/4K2R w K -")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}
	legal := g.LegalMovesFor(ParseSquare("e1"))
	if legal.Has(ParseSquare("g1")) {
		t.Errorf("king should not be able to castle through a checked square")
	}
}

func TestScenarioEnPassantHorizontalPin(t *testing.T) {
	g, err := ParsePosition("8/5p2/8/r3P2K/8/8/8/8 b - -")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}
	if _, err := g.ExecuteMove(ParseSquare("f7"), ParseSquare("f5"), NoKind); err != nil {
		t.Fatalf("ExecuteMove(f7-f5): %v", err)
	}
	if g.EnPassantTarget() != ParseSquare("f6") {
		t.Fatalf("en-passant target = %d, want f6", g.EnPassantTarget())
	}
	legal := g.LegalMovesFor(ParseSquare("e5"))
	if legal.Has(ParseSquare("f6")) {
		t.Errorf("en-passant capture should be rejected: it would expose the king to the rook along the rank")
	}
}

func TestScenarioPromotionToKnight(t *testing.T) {
	g, err := ParsePosition("4k3/P7/8/8/8/8/8/4K3 w - -")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}
	if _, err := g.ExecuteMove(ParseSquare("a7"), ParseSquare("a8"), Knight); err != nil {
		t.Fatalf("ExecuteMove(a7-a8=N): %v", err)
	}
	p := g.board.PieceAt(ParseSquare("a8"))
	if p == nil || p.Kind != Knight || p.Color != White {
		t.Fatalf("a8 holds %+v, want a white knight", p)
	}
}

func TestScenarioStalemate(t *testing.T) {
	g, err := ParsePosition("k7/2K5/1Q6/8/8/8/8/8 b - -")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}
	if legal := g.LegalMovesFor(ParseSquare("a8")); legal != 0 {
		t.Errorf("black king has legal moves %v, want none", legal)
	}
	if got := g.Status().Result; got != Draw {
		t.Errorf("status = %v, want draw (stalemate)", got)
	}
}

func TestScenarioRepetitionDraw(t *testing.T) {
	// White's king shuttles b1<->b2 five times (plies 1,3,5,7,9), replaying
	// the same (from, to) pair at plies 1, 5, and 9 — eight and four plies
	// apart respectively. Black plays distinct, non-repeating king moves on
	// the intervening plies so its own moves never interfere with the
	// pattern being detected.
	g, err := ParsePosition("8/8/8/6k1/8/8/8/1K6 w - -")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}

	play := func(from, to string) MoveResult {
		res, err := g.ExecuteMove(ParseSquare(from), ParseSquare(to), NoKind)
		if err != nil {
			t.Fatalf("ExecuteMove(%s-%s): %v", from, to, err)
		}
		return res
	}

	play("b1", "b2") // ply 1 (white)
	play("g5", "g6") // ply 2 (black)
	play("b2", "b1") // ply 3 (white)
	play("g6", "g5") // ply 4 (black)
	play("b1", "b2") // ply 5 (white): matches ply 1, four plies back
	play("g5", "h5") // ply 6 (black): a different move, breaks any black pattern
	play("b2", "b1") // ply 7 (white): matches ply 3
	play("h5", "g5") // ply 8 (black): different again
	result := play("b1", "b2") // ply 9 (white): matches both ply 5 and ply 1

	if result != Draw {
		t.Fatalf("ply 9 result = %v, want draw by repetition", result)
	}
}

func TestScenarioRepetitionBrokenByDifferingMove(t *testing.T) {
	g, err := ParsePosition("8/8/8/6k1/8/8/8/1K6 w - -")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}

	play := func(from, to string) MoveResult {
		res, err := g.ExecuteMove(ParseSquare(from), ParseSquare(to), NoKind)
		if err != nil {
			t.Fatalf("ExecuteMove(%s-%s): %v", from, to, err)
		}
		return res
	}

	play("b1", "b2")  // ply 1
	play("g5", "g6")  // ply 2
	play("b2", "b1")  // ply 3
	play("g6", "g5")  // ply 4
	play("b1", "b2")  // ply 5: matches ply 1
	play("g5", "h5")  // ply 6
	play("b2", "c2")  // ply 7: differs from ply 3, breaking the pattern
	play("h5", "g5")  // ply 8
	result := play("c2", "b2") // ply 9: does not match ply 5 or ply 1

	if result != Normal {
		t.Errorf("ply 9 result = %v, want normal (pattern was broken)", result)
	}
}
