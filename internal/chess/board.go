package chess

// Board is an 8x8 grid of squares, indexed as [rank][file] with both in
// [0, BoardSize). Rank 0 is White's back rank and rank 7 is Black's.
type Board [BoardSize][BoardSize]Square

// backRank is the piece order of both back ranks, file 0 to file 7.
var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns an empty board.
func NewBoard() Board {
	var b Board
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			b[rank][file] = Square{Colour: None}
		}
	}
	return b
}

// SetupInitialPosition places the 32 pieces of the standard starting
// layout: back ranks on ranks 0 and 7, pawns on ranks 1 and 6, and
// everything between left empty.
func (b *Board) SetupInitialPosition() {
	*b = NewBoard()
	for file := 0; file < BoardSize; file++ {
		b[0][file] = Square{Colour: White, Piece: backRank[file]}
		b[1][file] = Square{Colour: White, Piece: Pawn}
		b[6][file] = Square{Colour: Black, Piece: Pawn}
		b[7][file] = Square{Colour: Black, Piece: backRank[file]}
	}
}

// At returns the square at (rank, file). Out-of-range coordinates
// return an empty square rather than faulting.
func (b *Board) At(rank, file int) Square {
	if !InBounds(rank, file) {
		return Square{Colour: None}
	}
	return b[rank][file]
}

// Game holds the full game state this package models: the board plus a
// half-move counter whose parity determines whose turn it is. The move
// generator only ever reads this state; Apply is the one mutator.
type Game struct {
	Board Board

	// Round counts half-moves, starting at 1. Odd means White to move.
	Round uint
}

// NewGame returns a game at the standard starting position with the
// round counter at 1 (White to move).
func NewGame() *Game {
	g := &Game{Round: 1}
	g.Board.SetupInitialPosition()
	return g
}

// CurrentTurn returns the side to move: White when the round counter is
// odd, Black when it is even.
func (g *Game) CurrentTurn() Colour {
	if g.Round%2 == 1 {
		return White
	}
	return Black
}

// At returns the square at (rank, file) of the current board.
func (g *Game) At(rank, file int) Square {
	return g.Board.At(rank, file)
}

// Copy creates an independent copy of the game state.
func (g *Game) Copy() *Game {
	newGame := &Game{}
	*newGame = *g
	return newGame
}
