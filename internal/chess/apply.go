package chess

import (
	"github.com/lgbarn/movegen-go/internal/errors"
)

// Apply executes a move: the piece on the source square is placed on
// the destination (capturing whatever stood there), the source is
// emptied, and the round counter advances one half-move.
//
// Apply enforces the caller contract only: both squares on the board,
// the source occupied by the side to move, and the destination not
// friendly. It does not verify piece geometry or king safety; callers
// are expected to apply moves produced by ListMoves, with any legality
// filtering done separately.
func (g *Game) Apply(m Move) error {
	if !m.InBounds() {
		return errors.Wrapf(errors.ErrInvalidSquare, "move %s", m)
	}

	src := g.Board[m.FromRank][m.FromFile]
	if src.Colour != g.CurrentTurn() {
		return errors.Wrapf(errors.ErrIllegalMove, "move %s: no %s piece on source square", m, g.CurrentTurn())
	}
	if g.Board[m.ToRank][m.ToFile].Colour == src.Colour {
		return errors.Wrapf(errors.ErrIllegalMove, "move %s: destination occupied by own piece", m)
	}

	g.Board[m.ToRank][m.ToFile] = src
	g.Board[m.FromRank][m.FromFile] = Square{Colour: None}
	g.Round++
	return nil
}
