package chess

// Direction and offset tables. The orders here fix the order in which
// each rule appends its moves, so enumeration is deterministic.
var (
	// Straight rays: increasing rank, decreasing rank, increasing
	// file, decreasing file.
	straightDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	// Diagonal rays.
	diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
		{-1, -2}, {1, -2}, {-1, 2}, {1, 2},
	}

	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// ListMoves enumerates every pseudo-legal move for the side to move:
// every move that is valid by piece geometry and occupancy, without
// checking whether it leaves the mover's own king attacked. King-safety
// filtering and move execution are the caller's concern.
//
// The board is scanned rank-major, file-minor; each friendly piece
// dispatches to its rule. The board is never modified.
func (g *Game) ListMoves() []Move {
	turn := g.CurrentTurn()
	board := &g.Board

	var moves []Move
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sq := board[rank][file]
			if sq.Colour != turn {
				continue
			}

			switch sq.Piece {
			case Pawn:
				moves = pawnMoves(board, turn, rank, file, moves)
			case Rook:
				moves = slidingMoves(board, turn, rank, file, straightDirs, moves)
			case Knight:
				moves = offsetMoves(board, turn, rank, file, knightOffsets, moves)
			case Bishop:
				moves = slidingMoves(board, turn, rank, file, diagonalDirs, moves)
			case Queen:
				// A queen is the union of the rook and bishop rays.
				moves = slidingMoves(board, turn, rank, file, straightDirs, moves)
				moves = slidingMoves(board, turn, rank, file, diagonalDirs, moves)
			case King:
				moves = offsetMoves(board, turn, rank, file, kingOffsets, moves)
			}
		}
	}
	return moves
}

// pawnMoves appends the pawn's pushes and diagonal captures. White
// pawns advance towards higher ranks, Black towards lower. The double
// push requires the pawn's home rank and both squares ahead empty; a
// capture requires an opponent piece on the target, never an empty
// square. No en passant, no promotion.
func pawnMoves(board *Board, turn Colour, rank, file int, moves []Move) []Move {
	dir, home := 1, WhitePawnRank
	if turn == Black {
		dir, home = -1, BlackPawnRank
	}

	oneAhead := rank + dir
	if InBounds(oneAhead, file) && !board[oneAhead][file].Occupied() {
		moves = append(moves, Move{rank, file, oneAhead, file})

		twoAhead := rank + 2*dir
		if rank == home && InBounds(twoAhead, file) && !board[twoAhead][file].Occupied() {
			moves = append(moves, Move{rank, file, twoAhead, file})
		}
	}

	opponent := turn.Opposite()
	for _, df := range [2]int{-1, 1} {
		captureFile := file + df
		if InBounds(oneAhead, captureFile) && board[oneAhead][captureFile].Colour == opponent {
			moves = append(moves, Move{rank, file, oneAhead, captureFile})
		}
	}
	return moves
}

// slidingMoves walks each of the given rays outward from the origin one
// square at a time. Every visited square whose colour differs from the
// mover's is a destination (empty squares and captures alike); the
// first occupied square then ends the ray, so the colour test must come
// before the stop test. Friendly pieces block without being targets.
func slidingMoves(board *Board, turn Colour, rank, file int, dirs [4][2]int, moves []Move) []Move {
	for _, dir := range dirs {
		for r, f := rank+dir[0], file+dir[1]; InBounds(r, f); r, f = r+dir[0], f+dir[1] {
			target := board[r][f]
			if target.Colour != turn {
				moves = append(moves, Move{rank, file, r, f})
			}
			if target.Occupied() {
				break
			}
		}
	}
	return moves
}

// offsetMoves appends a move for every in-bounds offset whose target is
// not occupied by the mover's own colour. Knights and kings have no
// notion of being blocked by intervening pieces.
func offsetMoves(board *Board, turn Colour, rank, file int, offsets [8][2]int, moves []Move) []Move {
	for _, offset := range offsets {
		r, f := rank+offset[0], file+offset[1]
		if InBounds(r, f) && board[r][f].Colour != turn {
			moves = append(moves, Move{rank, file, r, f})
		}
	}
	return moves
}
