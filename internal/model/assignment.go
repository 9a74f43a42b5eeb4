package model

import "time"

type AssignmentStatus string

const (
	StatusPending    AssignmentStatus = "pending"
	StatusInProgress AssignmentStatus = "in_progress"
	StatusCompleted  AssignmentStatus = "completed"
)

// Assignment is one set of questions given to one child by one parent.
// Status only ever moves forward (pending -> in_progress -> completed) and
// CompletedAt is written exactly once, at the completed transition.
// PackageID is nil for legacy assignments whose questions live in the
// embedded math_problems / reading_questions tables.
// swagger:model Assignment
type Assignment struct {
	BaseModel
	ParentID    uint             `gorm:"index;type:bigint unsigned;not null" json:"parentId"`
	ChildID     uint             `gorm:"index;type:bigint unsigned;not null" json:"childId"`
	Subject     Subject          `gorm:"type:enum('math','reading','english');default:'math'" json:"subject"`
	Status      AssignmentStatus `gorm:"type:enum('pending','in_progress','completed');default:'pending'" json:"status"`
	PackageID   *uint            `gorm:"index;type:bigint unsigned" json:"packageId"`
	Title       string           `gorm:"size:255" json:"title"`
	Position    int              `gorm:"default:0" json:"position"`
	CompletedAt *time.Time       `json:"completedAt"`
}

func (Assignment) TableName() string {
	return "assignments"
}
