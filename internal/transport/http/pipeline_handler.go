package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"perfpulse/internal/dataprocessing"
	apierrors "perfpulse/internal/errors"
	"perfpulse/internal/services"
)

// PipelineRunner triggers a derivation run over the source dataset.
type PipelineRunner interface {
	Run(ctx context.Context) (*services.PipelineResult, error)
}

// PipelineHandler exposes the refresh endpoint.
type PipelineHandler struct {
	service      PipelineRunner
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewPipelineHandler creates a new pipeline handler.
func NewPipelineHandler(service PipelineRunner, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *PipelineHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineHandler{
		service:      service,
		logger:       logger,
		errorHandler: errorHandler,
	}
}

// Routes returns the router for pipeline endpoints.
func (h *PipelineHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/refresh", h.Refresh)

	return r
}

// RefreshResponse is the payload returned after a successful run.
type RefreshResponse struct {
	Status string                   `json:"status"`
	Result *services.PipelineResult `json:"result"`
}

// Refresh re-runs ingest, derivation and materialization against the
// configured dataset.
func (h *PipelineHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.Run(ctx)
	if err != nil {
		switch {
		case errors.Is(err, dataprocessing.ErrSourceUnavailable):
			h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
				http.StatusNotFound, "DATA_NOT_FOUND",
				"Source dataset not found", err.Error()))
		case errors.Is(err, dataprocessing.ErrSchemaMismatch):
			h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
				http.StatusUnprocessableEntity, "SCHEMA_MISMATCH",
				"Source dataset is missing required columns", err.Error()))
		default:
			h.errorHandler.HandleError(w, r, apierrors.ErrPipelineExecution(err))
		}
		return
	}

	h.logger.InfoContext(ctx, "pipeline refresh completed",
		slog.Int("record_count", result.RecordCount))

	render.JSON(w, r, RefreshResponse{Status: "completed", Result: result})
}
