package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"perfpulse/pkg/contracts/domain"
)

// RequiredColumns are the columns every source file must carry. Feedback is
// optional; every other column is mandatory and its absence fails the load.
var RequiredColumns = []string{
	"Name",
	"Department",
	"ExperienceYears",
	"ProjectsCompleted",
	"MonthlySalary",
	"AttendanceRate",
	"PerformanceScore",
}

const feedbackColumn = "Feedback"

// LoadCSV reads the raw employee dataset from path. Absent or unparseable
// cells are replaced with the zero-equivalent for their column, matching the
// null-fill contract. The load is all-or-nothing: a missing file yields
// ErrSourceUnavailable, a missing required column yields ErrSchemaMismatch.
func LoadCSV(path string) ([]domain.EmployeeRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // short rows are null-filled, not rejected

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s has no header row", ErrSchemaMismatch, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header of %s: %v", ErrSourceUnavailable, path, err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []domain.EmployeeRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row of %s: %v", ErrSourceUnavailable, path, err)
		}

		records = append(records, recordFromRow(row, columns))
	}

	return records, nil
}

// mapColumns maps column names to their positions and validates the schema.
// The UTF-8 BOM on the first header cell is stripped so files exported for
// Excel round-trip cleanly.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}

	return columns, nil
}

// recordFromRow builds a record from one CSV row, zero-filling absent cells.
func recordFromRow(row []string, columns map[string]int) domain.EmployeeRecord {
	record := domain.EmployeeRecord{
		Name:              cellString(row, columns["Name"]),
		Department:        cellString(row, columns["Department"]),
		ExperienceYears:   cellInt(row, columns["ExperienceYears"]),
		ProjectsCompleted: cellInt(row, columns["ProjectsCompleted"]),
		MonthlySalary:     cellFloat(row, columns["MonthlySalary"]),
		AttendanceRate:    cellFloat(row, columns["AttendanceRate"]),
		PerformanceScore:  cellFloat(row, columns["PerformanceScore"]),
	}

	if idx, ok := columns[feedbackColumn]; ok {
		record.Feedback = cellString(row, idx)
	}

	return record
}

func cellString(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellFloat(row []string, idx int) float64 {
	raw := cellString(row, idx)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// unparseable numeric cells count as absent data
		return 0
	}
	return value
}

func cellInt(row []string, idx int) int {
	raw := cellString(row, idx)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		// tolerate "3.0" style integers
		if f, ferr := strconv.ParseFloat(raw, 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return value
}
