package rules

import "strings"

// Position-string parser (C8) and serializer. The format is the classical
// six-field layout; only the first four are consumed, per spec §4.7.

// StartingPosition is the canonical initial layout, used whenever the
// caller passes an empty (or all-whitespace) position string.
const StartingPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// ParsePosition parses a position string into a fresh GameState. An empty
// string yields the classical starting position. Scanning follows §4.7:
// the piece-placement field starts at square 63 and decrements, matching
// the classical rank-8-then-rank-1, file-a-then-file-h scan order — which,
// given this package's column numbering (column 0 is file h), means each
// rank's characters are read left to right exactly as in the source
// format, with the column mirrored only at the point a square is computed.
func ParsePosition(position string) (*GameState, error) {
	s := strings.TrimSpace(position)
	if s == "" {
		s = StartingPosition
	}
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, ErrMalformedPosition
	}

	board, err := parsePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	var sideToMove Color
	switch fields[1] {
	case "w":
		sideToMove = White
	case "b":
		sideToMove = Black
	default:
		return nil, ErrMalformedPosition
	}

	wk, wq, bk, bq, err := parseCastlingRights(fields[2])
	if err != nil {
		return nil, err
	}

	epTarget, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}

	g := &GameState{
		board:      board,
		sideToMove: sideToMove,
		castleWK:   wk,
		castleWQ:   wq,
		castleBK:   bk,
		castleBQ:   bq,
		epTarget:   epTarget,
	}
	g.recomputeCaches()
	g.termStat = g.classifyInitial()
	if g.termStat.Result == Checkmate || g.termStat.Result == Draw {
		g.terminal = true
	}
	return g, nil
}

// classifyInitial computes the status of a freshly parsed position, which
// needs its own entry point since classify() expects a just-flipped side
// and a just-played move to record into history.
func (g *GameState) classifyInitial() GameStatus {
	inCheck := g.InCheck(g.sideToMove)
	hasMove := g.hasAnyLegalMove(g.sideToMove)
	switch {
	case inCheck && hasMove:
		return GameStatus{Result: Check}
	case inCheck && !hasMove:
		return GameStatus{Result: Checkmate, Winner: g.sideToMove.Opposite(), HasWinner: true}
	case !hasMove:
		return GameStatus{Result: Draw}
	default:
		return GameStatus{Result: Normal}
	}
}

func parsePlacement(field string) (*Board, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, ErrMalformedPosition
	}

	board := newEmptyBoard()
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, ErrMalformedPosition
		}
		rankIndex := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, color, ok := pieceKindFromLetter(byte(ch))
			if !ok || file >= 8 {
				return nil, ErrMalformedPosition
			}
			sq := squareAt(rankIndex, 7-file)
			board.placePiece(&Piece{Kind: kind, Color: color, Sq: sq})
			file++
		}
		if file != 8 {
			return nil, ErrMalformedPosition
		}
	}
	return board, nil
}

func parseCastlingRights(field string) (wk, wq, bk, bq bool, err error) {
	if field == "-" {
		return false, false, false, false, nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			wk = true
		case 'Q':
			wq = true
		case 'k':
			bk = true
		case 'q':
			bq = true
		default:
			return false, false, false, false, ErrMalformedPosition
		}
	}
	return wk, wq, bk, bq, nil
}

func parseEnPassant(field string) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	if len(field) != 2 {
		return NoSquare, ErrMalformedPosition
	}
	fileCh, rankCh := field[0], field[1]
	if fileCh < 'a' || fileCh > 'h' || rankCh < '1' || rankCh > '8' {
		return NoSquare, ErrMalformedPosition
	}
	col := 7 - int(fileCh-'a')
	row := int(rankCh - '1')
	return squareAt(row, col), nil
}

// ToNotation serializes g back into the four-field form ParsePosition
// consumes, so that parse → serialize → parse reproduces the same state.
func (g *GameState) ToNotation() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := squareAt(rank, 7-file)
			p := g.board.PieceAt(sq)
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Kind.letter(p.Color))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if g.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if !g.castleWK && !g.castleWQ && !g.castleBK && !g.castleBQ {
		sb.WriteByte('-')
	} else {
		if g.castleWK {
			sb.WriteByte('K')
		}
		if g.castleWQ {
			sb.WriteByte('Q')
		}
		if g.castleBK {
			sb.WriteByte('k')
		}
		if g.castleBQ {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if g.epTarget == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(SquareName(g.epTarget))
	}

	return sb.String()
}

// SquareName renders sq using the §6 move-encoding rule: file is
// (7 − column) + 'a', rank is row + 1.
func SquareName(sq Square) string {
	file := byte('a' + (7 - sq.Col()))
	rank := byte('1' + sq.Row())
	return string([]byte{file, rank})
}

// EncodeMove renders a move in the minimal algebraic form of spec §6:
// file1 rank1 file2 rank2, with a trailing promotion letter (q|r|b|n) when
// promotion is one of those four kinds.
func EncodeMove(from, to Square, promotion PieceKind) string {
	var sb strings.Builder
	sb.WriteString(SquareName(from))
	sb.WriteString(SquareName(to))
	switch promotion {
	case Queen, Rook, Bishop, Knight:
		sb.WriteByte(promotion.letter(Black))
	}
	return sb.String()
}

// ParseSquare converts an algebraic square (e.g. "e4") to its Square value,
// or NoSquare if malformed. Exposed for callers that accept user-typed
// move input in cmd/chessplay.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	fileCh, rankCh := s[0], s[1]
	if fileCh < 'a' || fileCh > 'h' || rankCh < '1' || rankCh > '8' {
		return NoSquare
	}
	col := 7 - int(fileCh-'a')
	row := int(rankCh - '1')
	return squareAt(row, col)
}
