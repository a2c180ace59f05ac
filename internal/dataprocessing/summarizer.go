package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"perfpulse/pkg/contracts/domain"
)

// Summarizer computes summary statistics over a derived record set. It is
// stateless apart from its logger and safe for concurrent use; every call
// recomputes from the records it is given.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a new summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Summarize computes SummaryMetrics over the given records.
//
// Tie-breaking is pinned to source order: the top performer is the first
// record holding the maximal score, and the top department is the first
// department, in order of first appearance, holding the maximal mean score.
// An empty record set yields ErrUndefinedAggregate rather than NaN output.
func (s *Summarizer) Summarize(ctx context.Context, records []domain.DerivedRecord) (domain.SummaryMetrics, error) {
	if len(records) == 0 {
		return domain.SummaryMetrics{}, fmt.Errorf("summarize: %w", ErrUndefinedAggregate)
	}

	var scoreSum, salarySum, attendanceSum float64
	highCount := 0

	topPerformer := records[0].Name
	topScore := records[0].PerformanceScore

	deptOrder := make([]string, 0)
	deptSums := make(map[string]float64)
	deptCounts := make(map[string]int)

	for _, r := range records {
		scoreSum += r.PerformanceScore
		salarySum += r.MonthlySalary
		attendanceSum += r.AttendanceRate

		if r.PerformanceLevel == domain.LevelHigh {
			highCount++
		}

		if r.PerformanceScore > topScore {
			topScore = r.PerformanceScore
			topPerformer = r.Name
		}

		if _, seen := deptSums[r.Department]; !seen {
			deptOrder = append(deptOrder, r.Department)
		}
		deptSums[r.Department] += r.PerformanceScore
		deptCounts[r.Department]++
	}

	total := float64(len(records))

	topDepartment := deptOrder[0]
	topDeptMean := deptSums[topDepartment] / float64(deptCounts[topDepartment])
	for _, dept := range deptOrder[1:] {
		mean := deptSums[dept] / float64(deptCounts[dept])
		if mean > topDeptMean {
			topDeptMean = mean
			topDepartment = dept
		}
	}

	metrics := domain.SummaryMetrics{
		AveragePerformanceScore: round2(scoreSum / total),
		AverageSalary:           round2(salarySum / total),
		AverageAttendance:       round2(attendanceSum / total),
		TopPerformer:            topPerformer,
		TopDepartment:           topDepartment,
		HighPerformersCount:     highCount,
		TotalEmployees:          len(records),
	}

	s.logger.DebugContext(ctx, "computed summary metrics",
		slog.Int("total_employees", metrics.TotalEmployees),
		slog.Int("high_performers", metrics.HighPerformersCount),
		slog.String("top_department", metrics.TopDepartment))

	return metrics, nil
}

// DepartmentMeans computes the mean PerformanceScore per department, rounded
// to two decimal places. An empty record set yields ErrUndefinedAggregate.
func (s *Summarizer) DepartmentMeans(ctx context.Context, records []domain.DerivedRecord) (map[string]float64, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("department means: %w", ErrUndefinedAggregate)
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		sums[r.Department] += r.PerformanceScore
		counts[r.Department]++
	}

	means := make(map[string]float64, len(sums))
	for dept, sum := range sums {
		means[dept] = round2(sum / float64(counts[dept]))
	}

	s.logger.DebugContext(ctx, "computed department means",
		slog.Int("department_count", len(means)))

	return means, nil
}

// round2 rounds to two decimal places, matching the wire contract.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
