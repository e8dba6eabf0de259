// Command chessplay is a minimal terminal driver for the rules engine: it
// loads a position, plays moves typed as "e2e4" or "e7e8q", and prints the
// resulting status after each one. It exists to exercise the game façade
// end to end, the way cmd/perft exercises the teacher engine's movegen.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/exp/slices"

	"chessrules/game"
	"chessrules/rules"
)

func main() {
	position := flag.String("position", "", "initial position string (defaults to the classical starting layout)")
	flag.Parse()

	g, err := game.New(*position)
	if err != nil {
		log.Fatalf("chessplay: %v", err)
	}

	fmt.Println(g.Notation())
	printLegalSummary(g)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		from, to, promo, ok := parseMoveInput(line)
		if !ok {
			fmt.Fprintf(os.Stderr, "chessplay: cannot parse move %q\n", line)
			continue
		}
		result, err := g.ExecuteMove(from, to, promo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "chessplay: %v\n", err)
			continue
		}
		fmt.Printf("%s -> %s\n", rules.EncodeMove(from, to, promo), result)
		if g.Over() {
			fmt.Println(describeStatus(g.Status()))
			return
		}
		printLegalSummary(g)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("chessplay: reading input: %v", err)
	}
}

// parseMoveInput accepts "e2e4" or "e7e8q" style input.
func parseMoveInput(s string) (from, to rules.Square, promo rules.PieceKind, ok bool) {
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, rules.NoKind, false
	}
	from = rules.ParseSquare(s[0:2])
	to = rules.ParseSquare(s[2:4])
	if from == rules.NoSquare || to == rules.NoSquare {
		return 0, 0, rules.NoKind, false
	}
	promo = rules.NoKind
	if len(s) == 5 {
		kind, recognized := pieceLetterKind(s[4])
		if !recognized {
			return 0, 0, rules.NoKind, false
		}
		promo = kind
	}
	return from, to, promo, true
}

func pieceLetterKind(ch byte) (rules.PieceKind, bool) {
	switch ch {
	case 'q':
		return rules.Queen, true
	case 'r':
		return rules.Rook, true
	case 'b':
		return rules.Bishop, true
	case 'n':
		return rules.Knight, true
	default:
		return rules.NoKind, false
	}
}

// printLegalSummary lists every piece with at least one legal move and its
// destinations, sorted for stable output — the one spot slices.SortFunc
// earns its keep over an ad hoc sort.Slice, since the comparator is a
// plain field projection.
func printLegalSummary(g *game.Game) {
	type entry struct {
		from rules.Square
		dest rules.Bitboard
	}
	var entries []entry
	for sq := rules.Square(0); sq < 64; sq++ {
		if dest := g.LegalMovesFor(sq); dest != 0 {
			entries = append(entries, entry{from: sq, dest: dest})
		}
	}
	slices.SortFunc(entries, func(a, b entry) bool { return a.from < b.from })

	fmt.Printf("%s to move, %d piece(s) with a legal move:\n", g.SideToPlay(), len(entries))
	for _, e := range entries {
		var dests []string
		e.dest.Iter(func(sq rules.Square) {
			dests = append(dests, rules.SquareName(sq))
		})
		fmt.Printf("  %s: %v\n", rules.SquareName(e.from), dests)
	}
}

func describeStatus(s rules.GameStatus) string {
	if s.Result == rules.Checkmate {
		return fmt.Sprintf("checkmate, %s wins", s.Winner)
	}
	return s.Result.String()
}
