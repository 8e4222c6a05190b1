package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// JSONPosition represents a position and its move list in JSON format.
type JSONPosition struct {
	FEN    string     `json:"fen"`
	ToMove string     `json:"toMove"` // "White" or "Black"
	Round  uint       `json:"round"`
	Moves  []JSONMove `json:"moves"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MoveToJSON converts a move to its JSON form.
func MoveToJSON(m chess.Move) JSONMove {
	s := m.String()
	return JSONMove{From: s[:2], To: s[2:]}
}

// PositionToJSON converts a game and its pseudo-legal move list to
// JSON form.
func PositionToJSON(g *chess.Game) *JSONPosition {
	moves := g.ListMoves()
	jp := &JSONPosition{
		FEN:    EncodeFEN(g),
		ToMove: g.CurrentTurn().String(),
		Round:  g.Round,
		Moves:  make([]JSONMove, len(moves)),
	}
	for i, m := range moves {
		jp.Moves[i] = MoveToJSON(m)
	}
	return jp
}

// WritePositionJSON writes the position and its move list as indented
// JSON.
func WritePositionJSON(w io.Writer, g *chess.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(PositionToJSON(g))
}
