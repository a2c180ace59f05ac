package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "perfpulse/internal/errors"
	"perfpulse/internal/exporter"
	"perfpulse/pkg/contracts/domain"
)

// ExportHandler serves filtered report downloads in CSV, Excel and PDF.
type ExportHandler struct {
	service      DataReader
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewExportHandler creates a new export handler.
func NewExportHandler(service DataReader, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{
		service:      service,
		logger:       logger,
		errorHandler: errorHandler,
	}
}

// Routes returns the router for export endpoints.
func (h *ExportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/csv", h.ExportCSV)
	r.Get("/xlsx", h.ExportExcel)
	r.Get("/pdf", h.ExportPDF)

	return r
}

// records loads and filters the store for one export request.
func (h *ExportHandler) records(r *http.Request) ([]domain.DerivedRecord, domain.RecordFilter, error) {
	filter, err := filterFromQuery(r)
	if err != nil {
		return nil, domain.RecordFilter{}, err
	}

	records, err := h.service.GetFilteredRecords(r.Context(), filter)
	if err != nil {
		return nil, filter, mapDataError(err)
	}
	return records, filter, nil
}

// exportFilename builds a timestamped download name.
func exportFilename(ext string) string {
	return fmt.Sprintf("performance_report_%s.%s", time.Now().Format("2006-01-02"), ext)
}

// ExportCSV streams the filtered records as UTF-8 CSV with a BOM so
// spreadsheet tools detect the encoding.
func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.records(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("csv")))

	if err := exporter.WriteCSV(w, records, exporter.CSVOptions{BOMPrefix: true}); err != nil {
		h.logger.ErrorContext(r.Context(), "CSV export failed",
			slog.String("error", err.Error()))
	}
}

// ExportExcel streams the filtered records as an xlsx workbook.
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.records(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("xlsx")))

	if err := exporter.WriteExcel(w, records); err != nil {
		h.logger.ErrorContext(r.Context(), "Excel export failed",
			slog.String("error", err.Error()))
	}
}

// ExportPDF streams the filtered records as a paginated PDF report.
func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	records, filter, err := h.records(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	options := exporter.PDFOptions{}
	if filter.Department != "" {
		options.DepartmentFilter = filter.Department
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("pdf")))

	if err := exporter.WritePDF(w, records, options); err != nil {
		h.logger.ErrorContext(r.Context(), "PDF export failed",
			slog.String("error", err.Error()))
	}
}
