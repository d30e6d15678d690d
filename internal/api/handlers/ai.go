package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/simpleval/simpleval-api/internal/ai"
)

type AIHandler struct {
	generator ai.Generator
	log       zerolog.Logger
}

func NewAIHandler(generator ai.Generator, log zerolog.Logger) *AIHandler {
	return &AIHandler{generator: generator, log: log}
}

type aiResponse struct {
	Response string `json:"response"`
}

func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	prompt := r.URL.Query().Get("prompt")
	if prompt == "" {
		respondBadRequest(w, "prompt is required")
		return
	}

	if h.generator == nil {
		respondJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "text generation is not configured"})
		return
	}

	text, err := h.generator.Generate(r.Context(), prompt)
	if err != nil {
		h.log.Error().Err(err).Msg("text generation failed")
		respondJSON(w, http.StatusBadGateway, errorResponse{Error: "text generation failed"})
		return
	}

	respondJSON(w, http.StatusOK, aiResponse{Response: text})
}
