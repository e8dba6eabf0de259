package rules

import (
	"testing"

	myengine "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
)

// Differential perft testing against two independent move generators,
// used here purely as oracles: github.com/dylhunn/dragontoothmg, and
// github.com/Oliverans/GooseEngineMG/goosemg — the published module the
// teacher's own tests/perft_test.go and cmd/perft/main.go cross-check
// against (in preference to the teacher's in-tree goosemg/ copy), via its
// exported ParseFEN/Perft pair.

func rulesPerft(g *GameState, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	color := g.sideToMove
	pieces := append([]*Piece(nil), g.board.pieces...)

	var nodes uint64
	for _, p := range pieces {
		if p.Color != color {
			continue
		}
		from := p.Sq
		dest := g.legalDestinations(p)
		dest.Iter(func(to Square) {
			for _, promo := range promotionChoices(*p, to) {
				clone := g.Clone()
				if _, err := clone.ExecuteMove(from, to, promo); err == nil {
					nodes += rulesPerft(clone, depth-1)
				}
			}
		})
	}
	return nodes
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		undo()
	}
	return nodes
}

func TestPerftAgainstDragontoothOracle(t *testing.T) {
	positions := []struct {
		name  string
		fen   string
		depth int
	}{
		{"start", "", 2},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 2},
		{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", 2},
	}

	for _, pos := range positions {
		t.Run(pos.name, func(t *testing.T) {
			g, err := ParsePosition(pos.fen)
			if err != nil {
				t.Fatalf("ParsePosition(%q): %v", pos.fen, err)
			}
			oracleFEN := pos.fen
			if oracleFEN == "" {
				oracleFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
			} else {
				oracleFEN = oracleFEN + " 0 1"
			}

			got := rulesPerft(g, pos.depth)

			board := dragontoothmg.ParseFen(oracleFEN)
			if want := dragontoothPerft(&board, pos.depth); got != want {
				t.Errorf("perft depth %d: rules=%d dragontoothmg=%d", pos.depth, got, want)
			}

			mb, err := myengine.ParseFEN(oracleFEN)
			if err != nil {
				t.Fatalf("myengine.ParseFEN(%q): %v", oracleFEN, err)
			}
			if want := myengine.Perft(mb, pos.depth); got != want {
				t.Errorf("perft depth %d: rules=%d GooseEngineMG=%d", pos.depth, got, want)
			}
		})
	}
}

func TestPerftStartingPositionNodeCounts(t *testing.T) {
	g, err := ParsePosition("")
	if err != nil {
		t.Fatalf("ParsePosition: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
	}
	for _, c := range cases {
		if got := rulesPerft(g, c.depth); got != c.want {
			t.Errorf("perft depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}
