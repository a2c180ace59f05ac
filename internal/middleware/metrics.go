package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetrics records per-request counters and latency histograms on the
// given meter. Attributes are method, route pattern and status class.
func HTTPMetrics(meter metric.Meter, logger *slog.Logger) func(next http.Handler) http.Handler {
	requestCount, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of HTTP requests received"))
	if err != nil && logger != nil {
		logger.Warn("failed to create request counter", "error", err)
	}

	requestDuration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"))
	if err != nil && logger != nil {
		logger.Warn("failed to create duration histogram", "error", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			attrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", r.URL.Path),
				attribute.Int("http.status_code", ww.Status()),
			)

			ctx := r.Context()
			if requestCount != nil {
				requestCount.Add(ctx, 1, attrs)
			}
			if requestDuration != nil {
				requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
			}
		})
	}
}
