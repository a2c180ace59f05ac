package services

import (
	"context"
	"log/slog"
	"time"

	"perfpulse/internal/config"
)

// HealthStatus is the response shape of the health endpoint.
type HealthStatus struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	BuildTime string            `json:"build_time,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthService reports liveness and the readiness of the data paths.
type HealthService struct {
	version   string
	buildTime string
	paths     *config.Paths
	logger    *slog.Logger
}

// NewHealthService creates a new health service with build information.
func NewHealthService(version, buildTime string, paths *config.Paths, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:   version,
		buildTime: buildTime,
		paths:     paths,
		logger:    logger,
	}
}

// Check reports overall health. The service is degraded (but alive) when the
// materialized store has not been produced yet.
func (hs *HealthService) Check(ctx context.Context) HealthStatus {
	checks := make(map[string]string)
	status := "healthy"

	if config.FileExists(hs.paths.DatasetCSV) {
		checks["dataset"] = "ok"
	} else {
		checks["dataset"] = "missing"
		status = "degraded"
	}

	if config.FileExists(hs.paths.ProcessedCSV) {
		checks["materialized_store"] = "ok"
	} else {
		checks["materialized_store"] = "missing"
		status = "degraded"
	}

	hs.logger.DebugContext(ctx, "health check",
		slog.String("status", status))

	return HealthStatus{
		Status:    status,
		Version:   hs.version,
		BuildTime: hs.buildTime,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	}
}
