// Package output provides board and move-list rendering: a text grid,
// FEN-style position encoding, and JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// WriteBoard renders the board as a text grid, one letter per piece
// (P, R, N, B, Q, K), a blank for empty squares, with separator lines
// between ranks. Rank 0 (White's back rank) is drawn first.
func WriteBoard(w io.Writer, g *chess.Game) error {
	const separator = "---------------------------------"

	if _, err := fmt.Fprintln(w, separator); err != nil {
		return err
	}
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := g.At(rank, file)
			letter := byte(' ')
			if sq.Occupied() {
				letter = sq.Piece.Letter()
			}
			if _, err := fmt.Fprintf(w, "| %c ", letter); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "|"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, separator); err != nil {
			return err
		}
	}
	return nil
}

// WriteMoves writes one move per line in coordinate notation.
func WriteMoves(w io.Writer, moves []chess.Move) error {
	for _, m := range moves {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	return nil
}
