package dataprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfpulse/pkg/contracts/domain"
)

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name     string
		projects int
		years    int
		expected float64
	}{
		{"typical ratio", 10, 2, 50.0},
		{"one project one year", 1, 1, 10.0},
		{"zero experience clamps to one", 5, 0, 50.0},
		{"negative experience clamps to one", 5, -3, 50.0},
		{"zero projects", 0, 4, 0.0},
		{"zero projects zero experience", 0, 0, 0.0},
		{"fractional result", 2, 8, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Efficiency(tt.projects, tt.years)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestEfficiencyAlwaysFinite(t *testing.T) {
	for years := -2; years <= 3; years++ {
		got := Efficiency(7, years)
		require.False(t, math.IsNaN(got), "years=%d", years)
		require.False(t, math.IsInf(got, 0), "years=%d", years)
		assert.GreaterOrEqual(t, got, 0.0, "years=%d", years)
	}
}

func TestPerformanceLevel(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{"well above high threshold", 5.0, domain.LevelHigh},
		{"exactly high threshold", 4.5, domain.LevelHigh},
		{"just below high threshold", 4.499999, domain.LevelMedium},
		{"exactly medium threshold", 3.5, domain.LevelMedium},
		{"just below medium threshold", 3.499999, domain.LevelLow},
		{"zero score", 0.0, domain.LevelLow},
		{"negative score", -1.0, domain.LevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PerformanceLevel(tt.score))
		})
	}
}

func TestDerive(t *testing.T) {
	source := []domain.EmployeeRecord{
		{
			Name:              "Alice",
			Department:        "Engineering",
			ExperienceYears:   2,
			ProjectsCompleted: 10,
			MonthlySalary:     9000,
			AttendanceRate:    96.5,
			PerformanceScore:  4.7,
		},
		{
			Name:              "Bob",
			Department:        "Sales",
			ExperienceYears:   5,
			ProjectsCompleted: 10,
			MonthlySalary:     6000,
			AttendanceRate:    88.0,
			PerformanceScore:  3.1,
		},
	}

	derived := Derive(source)
	require.Len(t, derived, 2)

	assert.InDelta(t, 50.0, derived[0].Efficiency, 1e-9)
	assert.Equal(t, domain.LevelHigh, derived[0].PerformanceLevel)
	assert.Equal(t, "Alice", derived[0].Name)

	assert.InDelta(t, 20.0, derived[1].Efficiency, 1e-9)
	assert.Equal(t, domain.LevelLow, derived[1].PerformanceLevel)

	// raw fields carry over untouched
	assert.Equal(t, source[0], derived[0].EmployeeRecord)
	assert.Equal(t, source[1], derived[1].EmployeeRecord)
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	source := []domain.EmployeeRecord{
		{Name: "Alice", ExperienceYears: 2, ProjectsCompleted: 10, PerformanceScore: 4.7},
	}
	snapshot := source[0]

	first := Derive(source)
	second := Derive(source)

	assert.Equal(t, snapshot, source[0])
	assert.Equal(t, first, second)
}

func TestDeriveEmptyInput(t *testing.T) {
	derived := Derive(nil)
	assert.NotNil(t, derived)
	assert.Empty(t, derived)
}
