package model

// SubjectStats is one correct/incorrect pair. The zero value means "no
// activity", never null.
// swagger:model SubjectStats
type SubjectStats struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// DailyStats is SubjectStats bucketed by local calendar date (YYYY-MM-DD).
// Dates without activity are omitted, not zero-filled.
// swagger:model DailyStats
type DailyStats struct {
	Date      string `json:"date"`
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
}

// CombinedStats merges the package and legacy storage shapes per subject.
// swagger:model CombinedStats
type CombinedStats struct {
	Math    SubjectStats `json:"math"`
	Reading SubjectStats `json:"reading"`
}

// ChildProgressRow is one line of the parent-facing progress report.
type ChildProgressRow struct {
	AssignmentID   uint   `json:"assignmentId"`
	Title          string `json:"title"`
	Subject        string `json:"subject"`
	Status         string `json:"status"`
	TotalQuestions int    `json:"totalQuestions"`
	Correct        int    `json:"correct"`
	Incorrect      int    `json:"incorrect"`
	CompletedAt    string `json:"completedAt"`
}

// CoverageRow is one curriculum objective's coverage for one child.
type CoverageRow struct {
	ObjectiveCode  string  `json:"objectiveCode"`
	ObjectiveTitle string  `json:"objectiveTitle"`
	Subject        string  `json:"subject"`
	Packages       int     `json:"packages"`
	Completed      int     `json:"completed"`
	Coverage       float64 `json:"coverage"`
}
