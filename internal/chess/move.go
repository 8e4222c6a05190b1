package chess

import "fmt"

// Move is an ordered pair of board coordinates: where a piece stands
// and where it could go. It is a pure value: it carries no notion of
// the piece moved, captures, check, or promotion.
type Move struct {
	FromRank int
	FromFile int
	ToRank   int
	ToFile   int
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return fmt.Sprintf("%c%c%c%c",
		'a'+m.FromFile, '1'+m.FromRank,
		'a'+m.ToFile, '1'+m.ToRank)
}

// InBounds reports whether both endpoints of the move lie on the board.
func (m Move) InBounds() bool {
	return InBounds(m.FromRank, m.FromFile) && InBounds(m.ToRank, m.ToFile)
}

// ParseMove parses coordinate notation such as "e2e4" into a Move.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("parse move %q: want 4 characters", s)
	}
	m := Move{
		FromFile: int(s[0] - 'a'),
		FromRank: int(s[1] - '1'),
		ToFile:   int(s[2] - 'a'),
		ToRank:   int(s[3] - '1'),
	}
	if !m.InBounds() {
		return Move{}, fmt.Errorf("parse move %q: square off the board", s)
	}
	return m, nil
}
