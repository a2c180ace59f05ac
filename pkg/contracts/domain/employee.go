package domain

// Performance level buckets. Thresholds on PerformanceScore partition the
// real line: score >= 4.5 is High, 3.5 <= score < 4.5 is Medium, below is Low.
const (
	LevelHigh   = "High"
	LevelMedium = "Medium"
	LevelLow    = "Low"
)

// Sentiment labels attached by the feedback scoring step. Polarity above 0.2
// is Positive, below -0.2 is Negative, everything between is Neutral.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// EmployeeRecord is one raw row of the employee performance dataset.
type EmployeeRecord struct {
	Name              string  `json:"Name" csv:"Name"`
	Department        string  `json:"Department" csv:"Department"`
	ExperienceYears   int     `json:"ExperienceYears" csv:"ExperienceYears"`
	ProjectsCompleted int     `json:"ProjectsCompleted" csv:"ProjectsCompleted"`
	MonthlySalary     float64 `json:"MonthlySalary" csv:"MonthlySalary"`
	AttendanceRate    float64 `json:"AttendanceRate" csv:"AttendanceRate"`
	PerformanceScore  float64 `json:"PerformanceScore" csv:"PerformanceScore"`
	Feedback          string  `json:"Feedback,omitempty" csv:"Feedback"`
}

// DerivedRecord is an EmployeeRecord with the computed metric columns
// attached. This is the shape of the materialized store and of every
// record returned by the query surface.
type DerivedRecord struct {
	EmployeeRecord
	Efficiency       float64 `json:"Efficiency" csv:"Efficiency"`
	PerformanceLevel string  `json:"Performance_Level" csv:"Performance_Level"`
}

// SentimentRecord is a DerivedRecord enriched with feedback polarity.
// It is computed on demand and never persisted.
type SentimentRecord struct {
	DerivedRecord
	SentimentScore float64 `json:"SentimentScore"`
	SentimentLabel string  `json:"SentimentLabel"`
}

// SummaryMetrics holds the scalar aggregates recomputed from the
// materialized store on every query. The JSON keys are the wire contract
// consumed by the dashboard and must not change.
type SummaryMetrics struct {
	AveragePerformanceScore float64 `json:"Average Performance Score"`
	AverageSalary           float64 `json:"Average Salary"`
	AverageAttendance       float64 `json:"Average Attendance (%)"`
	TopPerformer            string  `json:"Top Performer"`
	TopDepartment           string  `json:"Top Department"`
	HighPerformersCount     int     `json:"High Performers Count"`
	TotalEmployees          int     `json:"Total Employees"`
}

// RecordFilter narrows a derived record set the way the dashboard's filter
// widgets do. Zero values mean "no constraint"; ranges are inclusive.
type RecordFilter struct {
	Department    string
	MinExperience *int
	MaxExperience *int
	MinScore      *float64
	MaxScore      *float64
}

// Matches reports whether a record satisfies every set constraint.
func (f RecordFilter) Matches(r DerivedRecord) bool {
	if f.Department != "" && f.Department != r.Department {
		return false
	}
	if f.MinExperience != nil && r.ExperienceYears < *f.MinExperience {
		return false
	}
	if f.MaxExperience != nil && r.ExperienceYears > *f.MaxExperience {
		return false
	}
	if f.MinScore != nil && r.PerformanceScore < *f.MinScore {
		return false
	}
	if f.MaxScore != nil && r.PerformanceScore > *f.MaxScore {
		return false
	}
	return true
}

// Apply returns the subset of records matching the filter, in input order.
func (f RecordFilter) Apply(records []DerivedRecord) []DerivedRecord {
	filtered := make([]DerivedRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
