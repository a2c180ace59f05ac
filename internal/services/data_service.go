package services

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"perfpulse/internal/config"
	"perfpulse/internal/dataprocessing"
	"perfpulse/internal/sentiment"
	"perfpulse/pkg/contracts/domain"
)

// DataService provides read access to the materialized store. Every call
// re-reads the store fresh, so concurrent readers always work from a
// complete snapshot and the service itself carries no mutable state.
type DataService struct {
	paths      *config.Paths
	summarizer *dataprocessing.Summarizer
	scorer     sentiment.Scorer
	logger     *slog.Logger
}

// NewDataService creates a new data service with an explicit path set and
// sentiment scorer. The paths handle is the injected data-access lifecycle:
// tests point it at a temp directory, production at the executable layout.
func NewDataService(paths *config.Paths, scorer sentiment.Scorer, logger *slog.Logger) *DataService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("DataService initialized",
		slog.String("processed_csv", paths.ProcessedCSV),
		slog.String("reports_dir", paths.ReportsDir))

	return &DataService{
		paths:      paths,
		summarizer: dataprocessing.NewSummarizer(logger),
		scorer:     scorer,
		logger:     logger,
	}
}

// GetRecords returns all derived records from the materialized store,
// in store order.
func (ds *DataService) GetRecords(ctx context.Context) ([]domain.DerivedRecord, error) {
	ds.logger.DebugContext(ctx, "GetRecords: reading materialized store",
		slog.String("path", ds.paths.ProcessedCSV))

	return dataprocessing.ReadDerived(ds.paths.ProcessedCSV)
}

// GetFilteredRecords returns the subset of derived records matching filter.
func (ds *DataService) GetFilteredRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.DerivedRecord, error) {
	records, err := ds.GetRecords(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(records), nil
}

// GetMetrics recomputes SummaryMetrics from the materialized store.
func (ds *DataService) GetMetrics(ctx context.Context) (domain.SummaryMetrics, error) {
	records, err := ds.GetRecords(ctx)
	if err != nil {
		return domain.SummaryMetrics{}, err
	}
	return ds.summarizer.Summarize(ctx, records)
}

// GetDepartmentMeans recomputes the department mean scores from the
// materialized store.
func (ds *DataService) GetDepartmentMeans(ctx context.Context) (map[string]float64, error) {
	records, err := ds.GetRecords(ctx)
	if err != nil {
		return nil, err
	}
	return ds.summarizer.DepartmentMeans(ctx, records)
}

// GetRecordsWithSentiment returns all derived records with feedback polarity
// attached. Scoring is a derivation independent of the pipeline: nothing is
// persisted, and records without feedback get a zero score and Neutral label.
func (ds *DataService) GetRecordsWithSentiment(ctx context.Context) ([]domain.SentimentRecord, error) {
	records, err := ds.GetRecords(ctx)
	if err != nil {
		return nil, err
	}

	enriched := make([]domain.SentimentRecord, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, r := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score := ds.scorer.Score(r.Feedback)
			enriched[i] = domain.SentimentRecord{
				DerivedRecord:  r,
				SentimentScore: score,
				SentimentLabel: sentiment.Label(score),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds.logger.DebugContext(ctx, "scored feedback sentiment",
		slog.Int("record_count", len(enriched)))

	return enriched, nil
}
