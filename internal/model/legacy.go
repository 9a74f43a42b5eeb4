package model

import (
	"encoding/json"
	"time"
)

// MathProblem is the legacy per-assignment math question shape. It predates
// the package model: the child's answer is stored as mutable columns on the
// question row itself instead of a separate answer record.
// swagger:model MathProblem
type MathProblem struct {
	BaseModel
	AssignmentID  uint            `gorm:"index;type:bigint unsigned;not null" json:"assignmentId"`
	Prompt        string          `gorm:"type:text;not null" json:"prompt"`
	AnswerType    string          `gorm:"size:50;default:'number'" json:"answerType"`
	Options       json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	CorrectAnswer string          `gorm:"type:text" json:"-"`
	Difficulty    string          `gorm:"size:50;default:'easy'" json:"difficulty"`
	Hint          string          `gorm:"type:text" json:"hint,omitempty"`
	Position      int             `gorm:"default:0" json:"position"`

	SubmittedAnswer *string    `gorm:"type:text" json:"submittedAnswer"`
	IsCorrect       *bool      `json:"isCorrect"`
	Attempts        int        `gorm:"default:0" json:"attempts"`
	AnsweredAt      *time.Time `json:"answeredAt"`
}

func (MathProblem) TableName() string {
	return "math_problems"
}

// ReadingQuestion is the legacy per-assignment reading question shape, same
// embedded-answer layout as MathProblem plus an optional passage.
// swagger:model ReadingQuestion
type ReadingQuestion struct {
	BaseModel
	AssignmentID  uint            `gorm:"index;type:bigint unsigned;not null" json:"assignmentId"`
	Passage       string          `gorm:"type:text" json:"passage,omitempty"`
	Prompt        string          `gorm:"type:text;not null" json:"prompt"`
	AnswerType    string          `gorm:"size:50;default:'text'" json:"answerType"`
	Options       json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	CorrectAnswer string          `gorm:"type:text" json:"-"`
	Hint          string          `gorm:"type:text" json:"hint,omitempty"`
	Position      int             `gorm:"default:0" json:"position"`

	SubmittedAnswer *string    `gorm:"type:text" json:"submittedAnswer"`
	IsCorrect       *bool      `json:"isCorrect"`
	Attempts        int        `gorm:"default:0" json:"attempts"`
	AnsweredAt      *time.Time `json:"answeredAt"`
}

func (ReadingQuestion) TableName() string {
	return "reading_questions"
}
