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
	"perfpulse/pkg/contracts/domain"
)

// DataReader is the read surface the data handler depends on.
type DataReader interface {
	GetRecords(ctx context.Context) ([]domain.DerivedRecord, error)
	GetFilteredRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.DerivedRecord, error)
	GetMetrics(ctx context.Context) (domain.SummaryMetrics, error)
	GetDepartmentMeans(ctx context.Context) (map[string]float64, error)
	GetRecordsWithSentiment(ctx context.Context) ([]domain.SentimentRecord, error)
}

// DataHandler serves the read-only query endpoints.
type DataHandler struct {
	service      DataReader
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDataHandler creates a new data handler.
func NewDataHandler(service DataReader, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DataHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataHandler{
		service:      service,
		logger:       logger,
		errorHandler: errorHandler,
	}
}

// Routes returns the router for data query endpoints.
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/data", h.GetData)
	r.Get("/metrics", h.GetMetrics)
	r.Get("/department", h.GetDepartmentMeans)
	r.Get("/sentiment", h.GetSentiment)

	return r
}

// GetData returns every derived record from the materialized store,
// optionally narrowed by filter query parameters.
func (h *DataHandler) GetData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := filterFromQuery(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	records, err := h.service.GetFilteredRecords(ctx, filter)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapDataError(err))
		return
	}

	h.logger.DebugContext(ctx, "serving records",
		slog.Int("count", len(records)))

	render.JSON(w, r, records)
}

// GetMetrics returns the summary aggregates recomputed from the store.
func (h *DataHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	metrics, err := h.service.GetMetrics(ctx)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapDataError(err))
		return
	}

	render.JSON(w, r, metrics)
}

// GetDepartmentMeans returns mean performance score per department.
func (h *DataHandler) GetDepartmentMeans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	means, err := h.service.GetDepartmentMeans(ctx)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapDataError(err))
		return
	}

	render.JSON(w, r, means)
}

// GetSentiment returns records enriched with feedback polarity.
func (h *DataHandler) GetSentiment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.service.GetRecordsWithSentiment(ctx)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapDataError(err))
		return
	}

	render.JSON(w, r, records)
}

// mapDataError translates pipeline sentinels into API errors. Anything
// unrecognized passes through for the central handler to classify.
func mapDataError(err error) error {
	switch {
	case errors.Is(err, dataprocessing.ErrSourceUnavailable):
		return apierrors.NewWithDetails(http.StatusNotFound, "DATA_NOT_FOUND",
			"No processed data available. Run the pipeline first.", err.Error())
	case errors.Is(err, dataprocessing.ErrSchemaMismatch):
		return apierrors.NewWithDetails(http.StatusUnprocessableEntity, "SCHEMA_MISMATCH",
			"Materialized store is missing required columns", err.Error())
	case errors.Is(err, dataprocessing.ErrUndefinedAggregate):
		return apierrors.NewWithDetails(http.StatusNotFound, "UNDEFINED_AGGREGATE",
			"Aggregates are undefined over an empty dataset", err.Error())
	default:
		return err
	}
}
