package http

import (
	"github.com/SeKiZo0/NotesApp/internal/config"
	"github.com/SeKiZo0/NotesApp/internal/logger"
	"github.com/SeKiZo0/NotesApp/internal/service"
	"github.com/SeKiZo0/NotesApp/internal/store"
)

// Handler holds the dependencies of every HTTP endpoint: the application
// services, the database pinger used by the readiness probe, and the
// environment flag deciding whether internal error detail is echoed to
// callers.
type Handler struct {
	services *service.Services
	pinger   store.Pinger

	development bool

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, pinger store.Pinger, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		pinger:      pinger,
		development: cfg.IsDevelopment(),
		logger:      logger,
	}
}
