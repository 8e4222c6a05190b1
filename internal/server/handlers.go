package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Handler implements http.Handler for the /api/* routes.
type Handler struct {
	manager *Manager
}

// NewHandler creates a handler backed by the given session manager.
func NewHandler(m *Manager) *Handler {
	return &Handler{manager: m}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/api/new":
		h.handleNew(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/moves":
		h.handleMoves(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNew(w http.ResponseWriter, _ *http.Request) {
	s := h.manager.Create()
	writeJSON(w, http.StatusOK, newStateResponse(s))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	s, err := h.manager.Get(req.SessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newStateResponse(s))
}

func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	s, err := h.manager.Get(req.SessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newMovesResponse(s))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	s, err := h.manager.Play(req.SessionID, req.Move.toMove())
	if err != nil {
		switch {
		case errors.Is(err, errors.ErrGameNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, errors.ErrIllegalMove), errors.Is(err, errors.ErrInvalidSquare):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, newStateResponse(s))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
