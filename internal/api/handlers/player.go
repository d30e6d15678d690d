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

type PlayerHandler struct {
	players *service.PlayerService
	log     zerolog.Logger
}

func NewPlayerHandler(players *service.PlayerService, log zerolog.Logger) *PlayerHandler {
	return &PlayerHandler{players: players, log: log}
}

type playerRequest struct {
	InGameName      string  `json:"in_game_name"`
	RealName        string  `json:"real_name"`
	Role            *string `json:"role"`
	CountryName     string  `json:"country_name"`
	CountryFlagCode string  `json:"country_flag_code"`
	ProfilePicture  *string `json:"profile_picture"`
	Status          string  `json:"status"`
	TeamID          *string `json:"team_id"`
}

func (req playerRequest) toInput() (service.PlayerInput, error) {
	input := service.PlayerInput{
		InGameName:      req.InGameName,
		RealName:        req.RealName,
		CountryName:     req.CountryName,
		CountryFlagCode: req.CountryFlagCode,
		ProfilePicture:  req.ProfilePicture,
		Status:          domain.Status(req.Status),
	}
	if req.Role != nil && *req.Role != "" {
		role := domain.Role(*req.Role)
		input.Role = &role
	}
	if req.TeamID != nil && *req.TeamID != "" {
		teamID, err := uuid.Parse(*req.TeamID)
		if err != nil {
			return input, err
		}
		input.TeamID = &teamID
	}
	return input, nil
}

// List handles GET /players and the roster lookup GET /players?team_id=.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	var teamID *uuid.UUID
	if raw := r.URL.Query().Get("team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(w, "invalid team_id")
			return
		}
		teamID = &id
	}

	players, err := h.players.ListPlayers(r.Context(), teamID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, players)
}

func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid player id")
		return
	}

	player, err := h.players.GetPlayer(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondBadRequest(w, "invalid team_id")
		return
	}

	player, err := h.players.CreatePlayer(r.Context(), input)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, player)
}

func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid player id")
		return
	}

	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondBadRequest(w, "invalid team_id")
		return
	}

	player, err := h.players.UpdatePlayer(r.Context(), id, input)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid player id")
		return
	}

	if err := h.players.DeletePlayer(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
