package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations: the raw dataset,
// the materialized store, export output and logs.
type Paths struct {
	BaseDir      string
	DataDir      string
	DatasetCSV   string
	ProcessedCSV string
	ReportsDir   string
	LogsDir      string
}

// ResolvePaths builds the path set from a PathsConfig. Relative entries are
// resolved against the executable directory so the layout is stable no
// matter where the process is launched from.
//
// Layout:
//
//	<base>/
//	  ├── data/
//	  │   ├── employee_performance.csv   (raw dataset)
//	  │   ├── processed_data.csv         (materialized store)
//	  │   └── reports/                   (CSV/xlsx/PDF exports)
//	  └── logs/
func ResolvePaths(cfg PathsConfig) (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return ResolvePathsIn(filepath.Dir(exe), cfg), nil
}

// ResolvePathsIn builds the path set anchored at an explicit base directory.
// Tests and the processor's -in/-out overrides use this directly.
func ResolvePathsIn(baseDir string, cfg PathsConfig) *Paths {
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}

	dataDir := resolve(cfg.DataDir)

	resolveData := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dataDir, p)
	}

	return &Paths{
		BaseDir:      baseDir,
		DataDir:      dataDir,
		DatasetCSV:   resolveData(cfg.DatasetFile),
		ProcessedCSV: resolveData(cfg.ProcessedFile),
		ReportsDir:   resolveData(cfg.ReportsDir),
		LogsDir:      resolve(cfg.LogsDir),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.ReportsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetReportPath returns a path inside the reports directory
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns a path inside the logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
