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

type TeamHandler struct {
	teams *service.TeamService
	log   zerolog.Logger
}

func NewTeamHandler(teams *service.TeamService, log zerolog.Logger) *TeamHandler {
	return &TeamHandler{teams: teams, log: log}
}

type teamRequest struct {
	Name     string  `json:"name"`
	TeamCode string  `json:"team_code"`
	Logo     *string `json:"logo"`
	Region   string  `json:"region"`
	Record   *string `json:"record"`
	Status   string  `json:"status"`
}

func (req teamRequest) toInput() service.TeamInput {
	return service.TeamInput{
		Name:     req.Name,
		TeamCode: req.TeamCode,
		Logo:     req.Logo,
		Region:   domain.Region(req.Region),
		Record:   req.Record,
		Status:   domain.Status(req.Status),
	}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.ListTeams(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid team id")
		return
	}

	team, err := h.teams.GetTeam(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	team, err := h.teams.CreateTeam(r.Context(), req.toInput())
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, team)
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid team id")
		return
	}

	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	team, err := h.teams.UpdateTeam(r.Context(), id, req.toInput())
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid team id")
		return
	}

	if err := h.teams.DeleteTeam(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
