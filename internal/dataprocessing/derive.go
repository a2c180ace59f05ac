package dataprocessing

import (
	"perfpulse/pkg/contracts/domain"
)

// efficiencyScale converts the projects-per-year ratio into the 0..N
// efficiency figure the dashboard displays.
const efficiencyScale = 10.0

// Performance level thresholds on PerformanceScore. Closed-bounded,
// non-overlapping, exhaustive over the real line.
const (
	highThreshold   = 4.5
	mediumThreshold = 3.5
)

// Efficiency computes the throughput proxy for one record:
// ProjectsCompleted / max(ExperienceYears, 1) * 10. The denominator clamp
// keeps the result finite for zero-experience employees.
func Efficiency(projectsCompleted, experienceYears int) float64 {
	years := experienceYears
	if years < 1 {
		years = 1
	}
	return float64(projectsCompleted) / float64(years) * efficiencyScale
}

// PerformanceLevel buckets a performance score into High, Medium or Low.
func PerformanceLevel(score float64) string {
	switch {
	case score >= highThreshold:
		return domain.LevelHigh
	case score >= mediumThreshold:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}

// Derive returns a new table with Efficiency and PerformanceLevel attached
// to every record. It is a pure function of its input: the source slice is
// never mutated, so callers may keep aliasing it across concurrent reads.
func Derive(records []domain.EmployeeRecord) []domain.DerivedRecord {
	derived := make([]domain.DerivedRecord, len(records))
	for i, record := range records {
		derived[i] = domain.DerivedRecord{
			EmployeeRecord:   record,
			Efficiency:       Efficiency(record.ProjectsCompleted, record.ExperienceYears),
			PerformanceLevel: PerformanceLevel(record.PerformanceScore),
		}
	}
	return derived
}
