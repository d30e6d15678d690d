package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/simpleval/simpleval-api/internal/ai"
	"github.com/simpleval/simpleval-api/internal/api"
	"github.com/simpleval/simpleval-api/internal/config"
	"github.com/simpleval/simpleval-api/internal/logger"
	"github.com/simpleval/simpleval-api/internal/repository/postgres"
	"github.com/simpleval/simpleval-api/internal/service"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New("development")
		fallbackLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Environment)

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos, cfg)

	var generator ai.Generator
	if cfg.GeminiAPIKey != "" {
		generator, err = ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create AI client")
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, /api/ai-response disabled")
	}

	router := api.NewRouter(services, generator, cfg, log)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
