package server

import (
	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/output"
)

// MoveDTO is the wire form of a move. Ranks and files are 0-based,
// rank 0 being White's back rank.
type MoveDTO struct {
	FromRank int `json:"from_rank"`
	FromFile int `json:"from_file"`
	ToRank   int `json:"to_rank"`
	ToFile   int `json:"to_file"`
}

// toMove converts the DTO to the internal move type.
func (d MoveDTO) toMove() chess.Move {
	return chess.Move{
		FromRank: d.FromRank,
		FromFile: d.FromFile,
		ToRank:   d.ToRank,
		ToFile:   d.ToFile,
	}
}

func moveDTO(m chess.Move) MoveDTO {
	return MoveDTO{
		FromRank: m.FromRank,
		FromFile: m.FromFile,
		ToRank:   m.ToRank,
		ToFile:   m.ToFile,
	}
}

// stateResponse describes a session's position after any request.
type stateResponse struct {
	SessionID string    `json:"session_id"`
	FEN       string    `json:"fen"`
	ToMove    string    `json:"to_move"`
	Round     uint      `json:"round"`
	Moves     []MoveDTO `json:"moves"`
}

// playRequest names a session and the move to apply to it.
type playRequest struct {
	SessionID string  `json:"session_id"`
	Move      MoveDTO `json:"move"`
}

// sessionRequest names a session for state and move queries.
type sessionRequest struct {
	SessionID string `json:"session_id"`
}

// movesResponse is the bare move list for /api/moves.
type movesResponse struct {
	SessionID string    `json:"session_id"`
	ToMove    string    `json:"to_move"`
	Moves     []MoveDTO `json:"moves"`
}

// errorResponse carries a failure back to the client.
type errorResponse struct {
	Error string `json:"error"`
}

func newMovesResponse(s *Session) movesResponse {
	moves := s.Game.ListMoves()
	dtos := make([]MoveDTO, len(moves))
	for i, m := range moves {
		dtos[i] = moveDTO(m)
	}
	return movesResponse{
		SessionID: s.ID,
		ToMove:    s.Game.CurrentTurn().String(),
		Moves:     dtos,
	}
}

func newStateResponse(s *Session) stateResponse {
	moves := s.Game.ListMoves()
	dtos := make([]MoveDTO, len(moves))
	for i, m := range moves {
		dtos[i] = moveDTO(m)
	}
	return stateResponse{
		SessionID: s.ID,
		FEN:       output.EncodeFEN(s.Game),
		ToMove:    s.Game.CurrentTurn().String(),
		Round:     s.Game.Round,
		Moves:     dtos,
	}
}
