package game_test

import (
	"testing"

	"chessrules/game"
	"chessrules/rules"
)

func TestNewDefaultsToStartingPosition(t *testing.T) {
	g, err := game.New("")
	if err != nil {
		t.Fatalf("New(\"\"): %v", err)
	}
	if g.SideToPlay() != rules.White {
		t.Errorf("SideToPlay() = %v, want white", g.SideToPlay())
	}
	if g.Over() {
		t.Errorf("a fresh game should not be over")
	}
}

func TestNewRejectsMalformedPosition(t *testing.T) {
	if _, err := game.New("garbage"); err == nil {
		t.Errorf("New(\"garbage\") should have failed")
	}
}

func TestExecuteMoveAdvancesStateAndNotation(t *testing.T) {
	g, err := game.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := g.Notation()
	if _, err := g.ExecuteMove(rules.ParseSquare("e2"), rules.ParseSquare("e4"), rules.NoKind); err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	after := g.Notation()
	if after == before {
		t.Errorf("notation should change after a move")
	}
	if g.SideToPlay() != rules.Black {
		t.Errorf("SideToPlay() after white's move = %v, want black", g.SideToPlay())
	}
}

func TestExecuteMoveRejectsIllegalDestination(t *testing.T) {
	g, err := game.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := g.ExecuteMove(rules.ParseSquare("e2"), rules.ParseSquare("e5"), rules.NoKind); err == nil {
		t.Errorf("a two-square-plus pawn push should be rejected")
	}
}

func TestExecuteMoveAfterGameOverIsRejected(t *testing.T) {
	g, err := game.New("k7/2K5/1Q6/8/8/8/8/8 b - -")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !g.Over() {
		t.Fatalf("stalemated game should report Over() == true")
	}
	if _, err := g.ExecuteMove(rules.ParseSquare("a8"), rules.ParseSquare("a7"), rules.NoKind); err != rules.ErrGameOver {
		t.Errorf("ExecuteMove after game over = %v, want ErrGameOver", err)
	}
}

func TestHashDiffersAfterAMove(t *testing.T) {
	g, err := game.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h1 := g.Hash()
	if _, err := g.ExecuteMove(rules.ParseSquare("e2"), rules.ParseSquare("e4"), rules.NoKind); err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if g.Hash() == h1 {
		t.Errorf("position hash should change after a move")
	}
}

func TestKingSquareTracksBothColors(t *testing.T) {
	g, err := game.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.KingSquare(rules.White) != rules.ParseSquare("e1") {
		t.Errorf("white king square = %d, want e1", g.KingSquare(rules.White))
	}
	if g.KingSquare(rules.Black) != rules.ParseSquare("e8") {
		t.Errorf("black king square = %d, want e8", g.KingSquare(rules.Black))
	}
}
