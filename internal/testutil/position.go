package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// pieceByLetter maps diagram characters (uppercase) to piece types.
var pieceByLetter = map[byte]chess.Piece{
	'P': chess.Pawn,
	'R': chess.Rook,
	'N': chess.Knight,
	'B': chess.Bishop,
	'Q': chess.Queen,
	'K': chess.King,
}

// MustParsePosition builds a game from a textual board diagram for
// scenario tests. The diagram has eight lines of eight characters with
// rank 7 on the first line and rank 0 on the last; uppercase letters
// are White pieces, lowercase Black, and '.' an empty square. Leading
// and trailing whitespace on each line is ignored. It calls t.Fatal on
// a malformed diagram.
func MustParsePosition(t *testing.T, diagram string, toMove chess.Colour) *chess.Game {
	t.Helper()

	var lines []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != chess.BoardSize {
		t.Fatalf("diagram has %d ranks; want %d", len(lines), chess.BoardSize)
	}

	g := &chess.Game{Board: chess.NewBoard(), Round: 1}
	if toMove == chess.Black {
		g.Round = 2
	}

	for i, line := range lines {
		rank := chess.BoardSize - 1 - i
		if len(line) != chess.BoardSize {
			t.Fatalf("diagram rank %d has %d squares; want %d", rank, len(line), chess.BoardSize)
		}
		for file := 0; file < chess.BoardSize; file++ {
			c := line[file]
			if c == '.' {
				continue
			}
			colour := chess.White
			upper := c
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
				upper = c - 'a' + 'A'
			}
			piece, ok := pieceByLetter[upper]
			if !ok {
				t.Fatalf("diagram rank %d: unknown piece character %q", rank, c)
			}
			g.Board[rank][file] = chess.Square{Colour: colour, Piece: piece}
		}
	}
	return g
}
