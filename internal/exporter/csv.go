package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"perfpulse/pkg/contracts/domain"
)

// exportHeader is the column order of every tabular export.
var exportHeader = []string{
	"Name",
	"Department",
	"ExperienceYears",
	"ProjectsCompleted",
	"MonthlySalary",
	"AttendanceRate",
	"PerformanceScore",
	"Efficiency",
	"Performance_Level",
}

// CSVOptions configures CSV export behavior.
type CSVOptions struct {
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes the records as CSV text to w.
func WriteCSV(w io.Writer, records []domain.DerivedRecord, options CSVOptions) error {
	if options.BOMPrefix {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, r := range records {
		if err := writer.Write(exportRow(r)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func exportRow(r domain.DerivedRecord) []string {
	return []string{
		r.Name,
		r.Department,
		strconv.Itoa(r.ExperienceYears),
		strconv.Itoa(r.ProjectsCompleted),
		fmt.Sprintf("%.2f", r.MonthlySalary),
		fmt.Sprintf("%.2f", r.AttendanceRate),
		fmt.Sprintf("%.2f", r.PerformanceScore),
		fmt.Sprintf("%.2f", r.Efficiency),
		r.PerformanceLevel,
	}
}
