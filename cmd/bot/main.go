package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/borissavenets/RecoFilmBot/internal/ai"
	"github.com/borissavenets/RecoFilmBot/internal/bot"
	"github.com/borissavenets/RecoFilmBot/internal/config"
	"github.com/borissavenets/RecoFilmBot/internal/database"
	"github.com/borissavenets/RecoFilmBot/internal/ops"
	"github.com/borissavenets/RecoFilmBot/internal/recommend"
	"github.com/borissavenets/RecoFilmBot/internal/repository"
	"github.com/borissavenets/RecoFilmBot/internal/survey"
	"github.com/borissavenets/RecoFilmBot/internal/tmdb"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connect to Redis (non-fatal: survey state falls back to memory)
	var stateStore survey.StateStore
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, keeping survey state in memory", "error", err)
		stateStore = survey.NewMemoryStore()
	} else {
		stateStore = survey.NewRedisStore(rdb)
	}

	// External clients
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.ImageBaseURL)
	aiClient := ai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	// Repositories
	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	sessions := repository.NewSessionRepository(db)
	saved := repository.NewSavedRepository(db)

	// Application services
	engine := survey.NewEngine(stateStore, survey.BaseDefinition(), survey.DynamicDefinition())
	resolver := recommend.NewResolver(aiClient, tmdbClient, profiles, sessions, saved)

	b, err := bot.New(cfg.TelegramToken, users, profiles, sessions, saved, engine, resolver, tmdbClient)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Ops HTTP server
	opsServer := ops.NewServer(users, sessions, saved)
	go func() {
		addr := ":" + cfg.OpsPort
		slog.Info("starting ops server", "addr", addr)
		if err := opsServer.Listen(addr); err != nil {
			slog.Error("ops server error", "error", err)
		}
	}()

	// Graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down bot...")
		_ = opsServer.Shutdown()
		cancel()
	}()

	slog.Info("starting bot")
	if err := b.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("bot error", "error", err)
		os.Exit(1)
	}
}
