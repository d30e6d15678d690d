package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/simpleval/simpleval-api/internal/domain"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Reasons []string `json:"reasons,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// respondError maps the error taxonomy onto HTTP statuses: fix-your-input
// (400/409), nothing-to-operate-on (404), and try-again-later (500).
func respondError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var verr *domain.ValidationError
	var nferr *domain.NotFoundError
	var cerr *domain.ConflictError

	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Reasons: verr.Reasons})
	case errors.As(err, &nferr):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: nferr.Error()})
	case errors.As(err, &cerr):
		respondJSON(w, http.StatusConflict, errorResponse{Error: cerr.Error()})
	default:
		log.Error().Err(err).Msg("request failed")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// parseDate accepts RFC 3339 as well as the zoneless "date plus time-of-day"
// form the admin UI submits.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
}
