package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"perfpulse/internal/errors"
	"perfpulse/pkg/contracts/domain"
)

// storeHeader is the materialized store schema: the raw columns with the
// derived columns appended.
var storeHeader = []string{
	"Name",
	"Department",
	"ExperienceYears",
	"ProjectsCompleted",
	"MonthlySalary",
	"AttendanceRate",
	"PerformanceScore",
	"Feedback",
	"Efficiency",
	"Performance_Level",
}

// WriteDerived materializes the derived table at path, replacing any prior
// contents atomically with respect to readers: the rows are written to a
// temp file in the destination directory and renamed into place, so a
// concurrent ReadDerived only ever observes a complete snapshot.
func WriteDerived(path string, records []domain.DerivedRecord) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewStorageError("failed to create directory for materialized store", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.NewStorageError("failed to create temp file for materialized store", err)
	}
	tmpName := tmp.Name()

	// On any failure below the temp file is removed; the prior store stays
	// intact for readers.
	cleanup := func(cause error) error {
		tmp.Close()
		os.Remove(tmpName)
		return cause
	}

	writer := csv.NewWriter(tmp)

	if err := writer.Write(storeHeader); err != nil {
		return cleanup(errors.NewStorageError("failed to write store header row", err))
	}

	for _, r := range records {
		row := []string{
			r.Name,
			r.Department,
			strconv.Itoa(r.ExperienceYears),
			strconv.Itoa(r.ProjectsCompleted),
			strconv.FormatFloat(r.MonthlySalary, 'f', -1, 64),
			strconv.FormatFloat(r.AttendanceRate, 'f', -1, 64),
			strconv.FormatFloat(r.PerformanceScore, 'f', -1, 64),
			r.Feedback,
			strconv.FormatFloat(r.Efficiency, 'f', -1, 64),
			r.PerformanceLevel,
		}
		if err := writer.Write(row); err != nil {
			return cleanup(errors.NewStorageError("failed to write store data row", err))
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return cleanup(errors.NewStorageError("failed to flush materialized store", err))
	}

	if err := tmp.Sync(); err != nil {
		return cleanup(errors.NewStorageError("failed to sync materialized store", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewStorageError("failed to close materialized store temp file", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.NewStorageError("failed to move materialized store into place", err)
	}

	return nil
}

// ReadDerived loads the materialized store back into memory. Field values
// round-trip exactly against the table WriteDerived was given.
func ReadDerived(path string) ([]domain.DerivedRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []domain.DerivedRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %v", ErrSourceUnavailable, path, err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}
	for _, derived := range []string{"Efficiency", "Performance_Level"} {
		if _, ok := columns[derived]; !ok {
			return nil, fmt.Errorf("%w: missing columns %s", ErrSchemaMismatch, derived)
		}
	}

	var records []domain.DerivedRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row of %s: %v", ErrSourceUnavailable, path, err)
		}

		records = append(records, domain.DerivedRecord{
			EmployeeRecord:   recordFromRow(row, columns),
			Efficiency:       cellFloat(row, columns["Efficiency"]),
			PerformanceLevel: cellString(row, columns["Performance_Level"]),
		})
	}

	return records, nil
}
