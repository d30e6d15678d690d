package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/simpleval/simpleval-api/internal/ai"
	"github.com/simpleval/simpleval-api/internal/api/handlers"
	"github.com/simpleval/simpleval-api/internal/api/middleware"
	"github.com/simpleval/simpleval-api/internal/config"
	"github.com/simpleval/simpleval-api/internal/service"
)

// NewRouter wires the REST surface. Reads are public; every mutation sits
// behind the bearer-token gate — the identity provider that issues those
// tokens lives outside this service.
func NewRouter(services *service.Services, generator ai.Generator, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	teamHandler := handlers.NewTeamHandler(services.Team, log)
	playerHandler := handlers.NewPlayerHandler(services.Player, log)
	matchHandler := handlers.NewMatchHandler(services.Match, log)
	participantHandler := handlers.NewParticipantHandler(services.Match, log)
	aiHandler := handlers.NewAIHandler(generator, log)

	// Public reads
	r.Get("/teams", teamHandler.List)
	r.Get("/teams/{id}", teamHandler.Get)
	r.Get("/players", playerHandler.List)
	r.Get("/players/{id}", playerHandler.Get)
	r.Get("/matches", matchHandler.List)
	r.Get("/matches/{id}", matchHandler.Get)
	r.Get("/match_players/{matchID}/{playerID}", participantHandler.Get)
	r.Get("/api/ai-response", aiHandler.Generate)

	// Mutations
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.AuthSecret))

		r.Post("/teams", teamHandler.Create)
		r.Put("/teams/{id}", teamHandler.Update)
		r.Delete("/teams/{id}", teamHandler.Delete)

		r.Post("/players", playerHandler.Create)
		r.Put("/players/{id}", playerHandler.Update)
		r.Delete("/players/{id}", playerHandler.Delete)

		r.Post("/matches", matchHandler.Create)
		r.Put("/matches/{id}", matchHandler.Update)
		r.Delete("/matches/{id}", matchHandler.Delete)

		r.Post("/match_players", participantHandler.Add)
		r.Delete("/match_players/{matchID}", participantHandler.Clear)
		r.Delete("/match_players/{matchID}/{playerID}", participantHandler.Remove)
	})

	return r
}
