// Package http implements the HTTP transport layer of the application: the
// REST routes, the JWT authentication middleware, request tracing and
// logging, and the translation of service errors into HTTP status codes.
package http

import (
	"github.com/rta-cma/camtrack/internal/config"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/service"
)

// Handler owns the route handlers and the middleware chain. One instance
// serves all requests.
type Handler struct {
	services *service.Services
	cfg      config.Query

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler over the service layer. cfg
// supplies listing defaults used when requests omit pagination parameters.
func NewHandler(services *service.Services, cfg config.Query, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
