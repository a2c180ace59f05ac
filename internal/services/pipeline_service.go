package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"perfpulse/internal/config"
	"perfpulse/internal/dataprocessing"
)

// PipelineResult reports the outcome of one derivation run.
type PipelineResult struct {
	RecordCount int           `json:"record_count"`
	SourcePath  string        `json:"source_path"`
	StorePath   string        `json:"store_path"`
	Duration    time.Duration `json:"duration_ms"`
}

// PipelineService runs the ingest -> derive -> materialize pipeline. Runs
// are serialized with a mutex: concurrent triggers queue up, and the
// materializer's atomic replace keeps readers safe either way (last writer
// wins, no merge).
type PipelineService struct {
	paths  *config.Paths
	logger *slog.Logger
	mu     sync.Mutex
}

// NewPipelineService creates a new pipeline service.
func NewPipelineService(paths *config.Paths, logger *slog.Logger) *PipelineService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineService{paths: paths, logger: logger}
}

// Run executes one full pipeline pass over the configured dataset.
func (ps *PipelineService) Run(ctx context.Context) (*PipelineResult, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	start := time.Now()

	ps.logger.InfoContext(ctx, "pipeline run starting",
		slog.String("source", ps.paths.DatasetCSV),
		slog.String("store", ps.paths.ProcessedCSV))

	records, err := dataprocessing.LoadCSV(ps.paths.DatasetCSV)
	if err != nil {
		ps.logger.ErrorContext(ctx, "pipeline ingest failed",
			slog.String("source", ps.paths.DatasetCSV),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("ingest: %w", err)
	}

	derived := dataprocessing.Derive(records)

	if err := dataprocessing.WriteDerived(ps.paths.ProcessedCSV, derived); err != nil {
		ps.logger.ErrorContext(ctx, "pipeline materialization failed",
			slog.String("store", ps.paths.ProcessedCSV),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("materialize: %w", err)
	}

	result := &PipelineResult{
		RecordCount: len(derived),
		SourcePath:  ps.paths.DatasetCSV,
		StorePath:   ps.paths.ProcessedCSV,
		Duration:    time.Since(start),
	}

	ps.logger.InfoContext(ctx, "pipeline run completed",
		slog.Int("record_count", result.RecordCount),
		slog.Duration("duration", result.Duration))

	return result, nil
}
