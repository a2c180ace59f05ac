package exporter

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"perfpulse/pkg/contracts/domain"
)

const pdfRowsPerPage = 25

// PDFOptions configures the PDF report header lines.
type PDFOptions struct {
	Title            string
	DepartmentFilter string
}

// WritePDF writes the records as a paginated tabular PDF report to w. Each
// page carries up to 25 record lines under a title and filter header.
func WritePDF(w io.Writer, records []domain.DerivedRecord, options PDFOptions) error {
	if options.Title == "" {
		options.Title = "Performance Pulse - Report"
	}
	if options.DepartmentFilter == "" {
		options.DepartmentFilter = "All"
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, options.Title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Department Filter: %s", options.DepartmentFilter))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Employees Shown: %d", len(records)))
	pdf.Ln(8)

	rowsOnPage := 0
	for _, r := range records {
		if rowsOnPage == pdfRowsPerPage {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 10)
			rowsOnPage = 0
		}

		line := fmt.Sprintf("%s | %s | Score: %.2f | Salary: %d",
			r.Name, r.Department, r.PerformanceScore, int(r.MonthlySalary))
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
		rowsOnPage++
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF report: %w", err)
	}

	return nil
}
