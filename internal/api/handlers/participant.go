package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/simpleval/simpleval-api/internal/service"
)

// ParticipantHandler exposes the manual escape hatches over the join
// relation. The automatic roster snapshot never goes through these routes.
type ParticipantHandler struct {
	matches *service.MatchService
	log     zerolog.Logger
}

func NewParticipantHandler(matches *service.MatchService, log zerolog.Logger) *ParticipantHandler {
	return &ParticipantHandler{matches: matches, log: log}
}

type addParticipantRequest struct {
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`
}

func (h *ParticipantHandler) parsePair(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	matchID, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		respondBadRequest(w, "invalid match id")
		return uuid.Nil, uuid.Nil, false
	}
	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		respondBadRequest(w, "invalid player id")
		return uuid.Nil, uuid.Nil, false
	}
	return matchID, playerID, true
}

func (h *ParticipantHandler) Get(w http.ResponseWriter, r *http.Request) {
	matchID, playerID, ok := h.parsePair(w, r)
	if !ok {
		return
	}

	participant, err := h.matches.GetParticipant(r.Context(), matchID, playerID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, participant)
}

func (h *ParticipantHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	matchID, err := uuid.Parse(req.MatchID)
	if err != nil {
		respondBadRequest(w, "invalid match_id")
		return
	}
	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		respondBadRequest(w, "invalid player_id")
		return
	}

	participant, err := h.matches.AddParticipant(r.Context(), matchID, playerID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, participant)
}

func (h *ParticipantHandler) Remove(w http.ResponseWriter, r *http.Request) {
	matchID, playerID, ok := h.parsePair(w, r)
	if !ok {
		return
	}

	if err := h.matches.RemoveParticipant(r.Context(), matchID, playerID); err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ParticipantHandler) Clear(w http.ResponseWriter, r *http.Request) {
	matchID, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		respondBadRequest(w, "invalid match id")
		return
	}

	if err := h.matches.ClearParticipants(r.Context(), matchID); err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
