package exporter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"perfpulse/pkg/contracts/domain"
)

func exportFixture() []domain.DerivedRecord {
	return []domain.DerivedRecord{
		{
			EmployeeRecord: domain.EmployeeRecord{
				Name:              "Alice",
				Department:        "Engineering",
				ExperienceYears:   2,
				ProjectsCompleted: 10,
				MonthlySalary:     9000,
				AttendanceRate:    96.5,
				PerformanceScore:  4.7,
			},
			Efficiency:       50,
			PerformanceLevel: domain.LevelHigh,
		},
		{
			EmployeeRecord: domain.EmployeeRecord{
				Name:             "Bob",
				Department:       "Sales",
				ExperienceYears:  5,
				PerformanceScore: 3.1,
			},
			PerformanceLevel: domain.LevelLow,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportFixture(), CSVOptions{}))

	reader := csv.NewReader(&buf)
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, []string{"Alice", "Engineering", "2", "10", "9000.00", "96.50", "4.70", "50.00", "High"}, rows[1])
	assert.Equal(t, "Bob", rows[2][0])
}

func TestWriteCSVWithBOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportFixture(), CSVOptions{BOMPrefix: true}))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.True(t, strings.HasPrefix(string(data[3:]), "Name,"))
}

func TestWriteCSVEmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, CSVOptions{}))

	reader := csv.NewReader(&buf)
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, exportHeader, rows[0])
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, exportFixture()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Performance")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Alice", rows[1][0])
	assert.Equal(t, "Bob", rows[2][0])
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, exportFixture(), PDFOptions{}))

	data := buf.Bytes()
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestWritePDFManyRecordsPaginates(t *testing.T) {
	records := make([]domain.DerivedRecord, 60)
	for i := range records {
		records[i] = domain.DerivedRecord{
			EmployeeRecord:   domain.EmployeeRecord{Name: "Emp", Department: "Eng", PerformanceScore: 4.0},
			PerformanceLevel: domain.LevelMedium,
		}
	}

	var small, large bytes.Buffer
	require.NoError(t, WritePDF(&small, records[:10], PDFOptions{}))
	require.NoError(t, WritePDF(&large, records, PDFOptions{}))

	// 60 rows at 25 per page spill onto extra pages
	assert.Greater(t, large.Len(), small.Len())
}
