package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/simpleval/simpleval-api/internal/domain"
	"github.com/simpleval/simpleval-api/internal/service"
)

type MatchHandler struct {
	matches *service.MatchService
	log     zerolog.Logger
}

func NewMatchHandler(matches *service.MatchService, log zerolog.Logger) *MatchHandler {
	return &MatchHandler{matches: matches, log: log}
}

type matchRequest struct {
	TeamAID      string `json:"team_a_id"`
	TeamBID      string `json:"team_b_id"`
	TeamAMapsWon *int   `json:"team_a_maps_won"`
	TeamBMapsWon *int   `json:"team_b_maps_won"`
	Date         string `json:"date"`
}

// matchResponse decorates a match with its derived outcome so no caller
// reimplements winner logic.
type matchResponse struct {
	*domain.Match
	Outcome domain.Outcome `json:"outcome"`
}

func (h *MatchHandler) toResponse(m *domain.Match) matchResponse {
	return matchResponse{Match: m, Outcome: h.matches.Outcome(m)}
}

func (req matchRequest) toInput() (service.MatchInput, string) {
	input := service.MatchInput{
		TeamAMapsWon: req.TeamAMapsWon,
		TeamBMapsWon: req.TeamBMapsWon,
	}

	if req.TeamAID != "" {
		id, err := uuid.Parse(req.TeamAID)
		if err != nil {
			return input, "invalid team_a_id"
		}
		input.TeamAID = id
	}
	if req.TeamBID != "" {
		id, err := uuid.Parse(req.TeamBID)
		if err != nil {
			return input, "invalid team_b_id"
		}
		input.TeamBID = id
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return input, "invalid date"
	}
	input.Date = date

	return input, ""
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matches.ListMatches(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	resp := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, h.toResponse(m))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid match id")
		return
	}

	match, err := h.matches.GetMatch(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, h.toResponse(match))
}

func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	input, msg := req.toInput()
	if msg != "" {
		respondBadRequest(w, msg)
		return
	}

	match, err := h.matches.CreateMatch(r.Context(), input)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, h.toResponse(match))
}

func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid match id")
		return
	}

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	input, msg := req.toInput()
	if msg != "" {
		respondBadRequest(w, msg)
		return
	}

	match, err := h.matches.UpdateMatch(r.Context(), id, input)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, h.toResponse(match))
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid match id")
		return
	}

	if err := h.matches.DeleteMatch(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
