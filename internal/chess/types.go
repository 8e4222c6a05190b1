// Package chess provides the board/state model and the pseudo-legal
// move generator that operate over a fixed 8x8 board.
package chess

// Colour represents the colour of a piece, or None for an empty square.
type Colour int

const (
	Black Colour = iota
	White
	None
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. Opposite of None is None.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return None
}

// Piece represents a chess piece type.
type Piece int

const (
	Pawn Piece = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{'P', 'R', 'N', 'B', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Square is one cell of the board: a colour paired with a piece type.
// A square with Colour None is unoccupied and its Piece value carries
// no meaning.
type Square struct {
	Colour Colour
	Piece  Piece
}

// Occupied returns true if the square holds a piece.
func (s Square) Occupied() bool {
	return s.Colour != None
}

// Constants for board dimensions and pawn home ranks.
const (
	BoardSize = 8

	WhitePawnRank = 1 // rank from which a white pawn may double-push
	BlackPawnRank = 6 // rank from which a black pawn may double-push
)

// InBounds reports whether (rank, file) lies on the board.
func InBounds(rank, file int) bool {
	return rank >= 0 && rank < BoardSize && file >= 0 && file < BoardSize
}
