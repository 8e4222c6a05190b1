package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// EncodeFEN returns a FEN-style encoding of the position: piece
// placement and side to move, with the castling and en-passant fields
// always "-" since this model does not track either. The halfmove
// field is always 0; the fullmove number is derived from the round
// counter.
func EncodeFEN(g *chess.Game) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			sq := g.At(rank, file)
			if !sq.Occupied() {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			letter := sq.Piece.Letter()
			if sq.Colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	side := 'w'
	if g.CurrentTurn() == chess.Black {
		side = 'b'
	}
	fullmove := (g.Round + 1) / 2
	fmt.Fprintf(&sb, " %c - - 0 %d", side, fullmove)

	return sb.String()
}
