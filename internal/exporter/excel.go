package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"perfpulse/pkg/contracts/domain"
)

const excelSheetName = "Performance"

// WriteExcel writes the records as an xlsx workbook to w.
func WriteExcel(w io.Writer, records []domain.DerivedRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(excelSheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for col, name := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(excelSheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for rowIdx, r := range records {
		values := []interface{}{
			r.Name,
			r.Department,
			r.ExperienceYears,
			r.ProjectsCompleted,
			r.MonthlySalary,
			r.AttendanceRate,
			r.PerformanceScore,
			r.Efficiency,
			r.PerformanceLevel,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to compute data cell: %w", err)
			}
			if err := f.SetCellValue(excelSheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write data cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
