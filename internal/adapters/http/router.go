// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dcc-platform/healthgate/internal/adapters/http/handlers"
)

// HealthRoutes lists the health endpoint paths. The logging middleware uses
// this set to exempt orchestrator polling from access logs.
var HealthRoutes = []string{
	"/health/liveness",
	"/health/readiness",
	"/health/startup",
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/liveness", healthHandler.Liveness)
	r.Get("/health/readiness", healthHandler.Readiness)
	r.Get("/health/startup", healthHandler.Startup)

	return r
}
