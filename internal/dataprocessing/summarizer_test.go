package dataprocessing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfpulse/pkg/contracts/domain"
)

func derivedFixture() []domain.DerivedRecord {
	return Derive([]domain.EmployeeRecord{
		{Name: "A", Department: "Eng", MonthlySalary: 9000, AttendanceRate: 96, PerformanceScore: 4.6},
		{Name: "B", Department: "Sales", MonthlySalary: 6000, AttendanceRate: 88, PerformanceScore: 3.0},
	})
}

func TestSummarize(t *testing.T) {
	s := NewSummarizer(nil)

	metrics, err := s.Summarize(context.Background(), derivedFixture())
	require.NoError(t, err)

	assert.InDelta(t, 3.8, metrics.AveragePerformanceScore, 1e-9)
	assert.InDelta(t, 7500.0, metrics.AverageSalary, 1e-9)
	assert.InDelta(t, 92.0, metrics.AverageAttendance, 1e-9)
	assert.Equal(t, "A", metrics.TopPerformer)
	assert.Equal(t, "Eng", metrics.TopDepartment)
	assert.Equal(t, 1, metrics.HighPerformersCount)
	assert.Equal(t, 2, metrics.TotalEmployees)
}

func TestSummarizeEmpty(t *testing.T) {
	s := NewSummarizer(nil)

	_, err := s.Summarize(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUndefinedAggregate)
}

func TestSummarizeRoundsAverages(t *testing.T) {
	s := NewSummarizer(nil)

	records := Derive([]domain.EmployeeRecord{
		{Name: "A", Department: "Eng", PerformanceScore: 4.0},
		{Name: "B", Department: "Eng", PerformanceScore: 4.0},
		{Name: "C", Department: "Eng", PerformanceScore: 3.0},
	})

	metrics, err := s.Summarize(context.Background(), records)
	require.NoError(t, err)

	// 11/3 = 3.6666... rounds to 3.67
	assert.InDelta(t, 3.67, metrics.AveragePerformanceScore, 1e-9)
}

func TestSummarizeTopPerformerTieKeepsFirst(t *testing.T) {
	s := NewSummarizer(nil)

	records := Derive([]domain.EmployeeRecord{
		{Name: "First", Department: "Eng", PerformanceScore: 4.8},
		{Name: "Second", Department: "Sales", PerformanceScore: 4.8},
	})

	metrics, err := s.Summarize(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, "First", metrics.TopPerformer)
}

func TestSummarizeTopDepartmentTieKeepsFirstAppearance(t *testing.T) {
	s := NewSummarizer(nil)

	records := Derive([]domain.EmployeeRecord{
		{Name: "A", Department: "Sales", PerformanceScore: 4.0},
		{Name: "B", Department: "Eng", PerformanceScore: 4.0},
		{Name: "C", Department: "Sales", PerformanceScore: 4.0},
	})

	metrics, err := s.Summarize(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, "Sales", metrics.TopDepartment)
}

func TestSummarizeHighPerformersCount(t *testing.T) {
	s := NewSummarizer(nil)

	records := Derive([]domain.EmployeeRecord{
		{Name: "A", Department: "Eng", PerformanceScore: 4.5},
		{Name: "B", Department: "Eng", PerformanceScore: 4.9},
		{Name: "C", Department: "Eng", PerformanceScore: 4.4},
		{Name: "D", Department: "Eng", PerformanceScore: 1.0},
	})

	metrics, err := s.Summarize(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 2, metrics.HighPerformersCount)
}

func TestDepartmentMeans(t *testing.T) {
	s := NewSummarizer(nil)

	records := Derive([]domain.EmployeeRecord{
		{Name: "A", Department: "Eng", PerformanceScore: 4.0},
		{Name: "B", Department: "Eng", PerformanceScore: 3.0},
		{Name: "C", Department: "Sales", PerformanceScore: 5.0},
	})

	means, err := s.DepartmentMeans(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, means, 2)

	assert.InDelta(t, 3.5, means["Eng"], 1e-9)
	assert.InDelta(t, 5.0, means["Sales"], 1e-9)
}

func TestDepartmentMeansRounding(t *testing.T) {
	s := NewSummarizer(nil)

	records := Derive([]domain.EmployeeRecord{
		{Name: "A", Department: "Eng", PerformanceScore: 4.0},
		{Name: "B", Department: "Eng", PerformanceScore: 4.0},
		{Name: "C", Department: "Eng", PerformanceScore: 3.0},
	})

	means, err := s.DepartmentMeans(context.Background(), records)
	require.NoError(t, err)
	assert.InDelta(t, 3.67, means["Eng"], 1e-9)
}

func TestDepartmentMeansEmpty(t *testing.T) {
	s := NewSummarizer(nil)

	_, err := s.DepartmentMeans(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUndefinedAggregate)
}
