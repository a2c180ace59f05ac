// Command processor runs one ingest -> derive -> materialize pass over the
// employee dataset and exits. It shares the pipeline implementation with the
// web server's refresh endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"perfpulse/internal/config"
	"perfpulse/internal/infrastructure"
	"perfpulse/internal/services"
)

func main() {
	var (
		inPath  = flag.String("in", "", "source dataset CSV (overrides configured path)")
		outPath = flag.String("out", "", "materialized store CSV (overrides configured path)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	paths, err := config.ResolvePaths(cfg.Paths)
	if err != nil {
		logger.Error("failed to resolve paths", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *inPath != "" {
		paths.DatasetCSV = *inPath
	}
	if *outPath != "" {
		paths.ProcessedCSV = *outPath
	}
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("failed to create directories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := services.NewPipelineService(paths, logger)

	result, err := pipeline.Run(context.Background())
	if err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("pipeline finished",
		slog.Int("record_count", result.RecordCount),
		slog.String("store", result.StorePath),
		slog.Duration("duration", result.Duration))
}
