package chess

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/errors"
)

func TestApply(t *testing.T) {
	g := NewGame()

	if err := g.Apply(Move{1, 4, 3, 4}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if got := g.At(3, 4); got.Colour != White || got.Piece != Pawn {
		t.Errorf("destination = %v, want White Pawn", got)
	}
	if g.At(1, 4).Occupied() {
		t.Error("source square still occupied")
	}
	if g.Round != 2 {
		t.Errorf("round = %d, want 2", g.Round)
	}
	if g.CurrentTurn() != Black {
		t.Errorf("turn = %v, want Black", g.CurrentTurn())
	}
}

func TestApplyCapture(t *testing.T) {
	g := NewGame()

	// 1. e4 d5 2. exd5
	for _, m := range []Move{{1, 4, 3, 4}, {6, 3, 4, 3}, {3, 4, 4, 3}} {
		if err := g.Apply(m); err != nil {
			t.Fatalf("Apply(%s): %v", m, err)
		}
	}

	if got := g.At(4, 3); got.Colour != White || got.Piece != Pawn {
		t.Errorf("capture square = %v, want White Pawn", got)
	}
	if g.At(3, 4).Occupied() {
		t.Error("capturing pawn's source still occupied")
	}
	if g.Round != 4 {
		t.Errorf("round = %d, want 4", g.Round)
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name     string
		move     Move
		sentinel error
	}{
		{"source off board", Move{-1, 0, 0, 0}, errors.ErrInvalidSquare},
		{"destination off board", Move{1, 4, 8, 4}, errors.ErrInvalidSquare},
		{"empty source", Move{3, 3, 4, 3}, errors.ErrIllegalMove},
		{"opponent piece on source", Move{6, 4, 5, 4}, errors.ErrIllegalMove},
		{"friendly destination", Move{0, 0, 1, 0}, errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			before := g.Copy()

			err := g.Apply(tt.move)
			if err == nil {
				t.Fatalf("Apply(%s) succeeded, want error", tt.move)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Apply(%s) = %v, want %v", tt.move, err, tt.sentinel)
			}

			// A rejected move must leave the game untouched.
			if *g != *before {
				t.Error("failed Apply changed the game state")
			}
		})
	}
}

func TestApplyAlternatesTurns(t *testing.T) {
	g := NewGame()

	moves := []Move{
		{1, 4, 3, 4}, // e2e4
		{6, 4, 4, 4}, // e7e5
		{0, 6, 2, 5}, // g1f3
		{7, 1, 5, 2}, // b8c6
	}
	wantTurns := []Colour{Black, White, Black, White}

	for i, m := range moves {
		if err := g.Apply(m); err != nil {
			t.Fatalf("Apply(%s): %v", m, err)
		}
		if got := g.CurrentTurn(); got != wantTurns[i] {
			t.Errorf("after move %d turn = %v, want %v", i+1, got, wantTurns[i])
		}
	}
	if g.Round != 5 {
		t.Errorf("round = %d, want 5", g.Round)
	}
}
