package bench

import (
	"testing"

	"chessrules/rules"
)

// Adapted from the teacher's movegen benchmarks: same shape (parse a
// position, hammer the generator, report allocs), retargeted at the
// rules package's legal-move filter instead of the old raw move buffer.

func benchLegalMoves(b *testing.B, position string) {
	g, err := rules.ParsePosition(position)
	if err != nil {
		b.Fatalf("ParsePosition: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for sq := rules.Square(0); sq < 64; sq++ {
			_ = g.LegalMovesFor(sq)
		}
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, "")
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	benchLegalMoves(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
}

func BenchmarkLegalMoves_Endgame(b *testing.B) {
	benchLegalMoves(b, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -")
}

func benchCloneAndExecute(b *testing.B, position string, from, to rules.Square) {
	g, err := rules.ParsePosition(position)
	if err != nil {
		b.Fatalf("ParsePosition: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clone := g.Clone()
		if _, err := clone.ExecuteMove(from, to, rules.NoKind); err != nil {
			b.Fatalf("ExecuteMove: %v", err)
		}
	}
}

func BenchmarkCloneAndExecuteMove_Initial(b *testing.B) {
	benchCloneAndExecute(b, "", rules.ParseSquare("e2"), rules.ParseSquare("e4"))
}

func BenchmarkCloneAndExecuteMove_EnPassant(b *testing.B) {
	benchCloneAndExecute(b, "8/5p2/8/r3P2K/8/8/8/8 b - -", rules.ParseSquare("f7"), rules.ParseSquare("f5"))
}
