package model

import "time"

// AnswerRecord stores a child's answer for one package problem within one
// assignment. One row per (assignment, problem), upserted on conflict; a
// re-submission overwrites the previous answer (last write wins).
// swagger:model AnswerRecord
type AnswerRecord struct {
	BaseModel
	AssignmentID    uint      `gorm:"uniqueIndex:idx_assignment_problem;type:bigint unsigned;not null" json:"assignmentId"`
	ProblemID       uint      `gorm:"uniqueIndex:idx_assignment_problem;type:bigint unsigned;not null" json:"problemId"`
	ChildID         uint      `gorm:"index;type:bigint unsigned;not null" json:"childId"`
	SubmittedAnswer string    `gorm:"type:text" json:"submittedAnswer"`
	IsCorrect       bool      `gorm:"default:false" json:"isCorrect"`
	Attempts        int       `gorm:"default:1" json:"attempts"`
	AnsweredAt      time.Time `gorm:"index" json:"answeredAt"`
}

func (AnswerRecord) TableName() string {
	return "answer_records"
}
