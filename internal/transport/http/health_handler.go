package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"perfpulse/internal/services"
)

// HealthChecker reports service health.
type HealthChecker interface {
	Check(ctx context.Context) services.HealthStatus
}

// HealthHandler serves the health endpoint.
type HealthHandler struct {
	service HealthChecker
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service HealthChecker, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{service: service, logger: logger}
}

// Routes returns the router for health endpoints.
func (h *HealthHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetHealth)

	return r
}

// GetHealth reports liveness plus dataset and store readiness. A degraded
// store still answers 200; the body carries the per-check detail.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := h.service.Check(r.Context())
	render.JSON(w, r, status)
}
