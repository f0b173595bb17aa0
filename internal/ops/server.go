// Package ops exposes a small operational HTTP surface next to the bot:
// a health probe and usage counters.
package ops

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/borissavenets/RecoFilmBot/internal/repository"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatsResponse carries the usage counters.
type StatsResponse struct {
	Users       int `json:"users"`
	Sessions    int `json:"sessions"`
	SavedMovies int `json:"saved_movies"`
}

// Server is the ops HTTP server.
type Server struct {
	app      *fiber.App
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	saved    *repository.SavedRepository
}

// NewServer builds the Fiber app with its routes registered.
func NewServer(
	users *repository.UserRepository,
	sessions *repository.SessionRepository,
	saved *repository.SavedRepository,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "RecoFilm Bot",
		ServerHeader: "RecoFilm-Bot",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{app: app, users: users, sessions: sessions, saved: saved}

	api := app.Group("/api/v1")
	api.Get("/health", s.Health)
	api.Get("/stats", s.Stats)

	return s
}

// Listen starts the server on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health returns service health status.
func (s *Server) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "recofilm-bot",
	})
}

// Stats returns usage counters.
func (s *Server) Stats(c fiber.Ctx) error {
	userCount, err := s.users.CountUsers()
	if err != nil {
		slog.Error("failed to count users", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve stats",
		})
	}
	sessionCount, err := s.sessions.CountSessions()
	if err != nil {
		slog.Error("failed to count sessions", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve stats",
		})
	}
	savedCount, err := s.saved.CountSaved()
	if err != nil {
		slog.Error("failed to count saved movies", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve stats",
		})
	}

	return c.JSON(StatsResponse{
		Users:       userCount,
		Sessions:    sessionCount,
		SavedMovies: savedCount,
	})
}
