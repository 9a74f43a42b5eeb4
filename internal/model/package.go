package model

import "encoding/json"

type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectReading Subject = "reading"
	SubjectEnglish Subject = "english"
)

// Package is a reusable bundle of problems. Global packages are visible to
// every family, filtered by grade; private packages only to their owner.
// Packages are never hard-deleted while referenced: Deleted is a soft flag
// whose cascade hard-deletes dependent assignments and their answers.
// swagger:model Package
type Package struct {
	BaseModel
	OwnerID     uint    `gorm:"index;type:bigint unsigned" json:"ownerId"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Subject     Subject `gorm:"type:enum('math','reading','english');default:'math'" json:"subject"`
	GradeLevel  int     `gorm:"default:1" json:"gradeLevel"`
	ObjectiveID *uint   `gorm:"index;type:bigint unsigned" json:"objectiveId"`
	StoryText   string  `gorm:"type:text" json:"storyText"` // themed reading narrative, optional
	IsGlobal    bool    `gorm:"default:false" json:"isGlobal"`
	Deleted     bool    `gorm:"default:false;index" json:"deleted"`

	Problems []PackageProblem `gorm:"foreignKey:PackageID" json:"problems,omitempty"`
}

func (Package) TableName() string {
	return "packages"
}

// PackageProblem is a package-scoped question shared by every assignment
// instantiated from the package. Options holds a JSON array of option
// strings for multiple_choice; CorrectAnswer is a single option letter in
// that case (validated at import time).
// swagger:model PackageProblem
type PackageProblem struct {
	BaseModel
	PackageID     uint            `gorm:"index;type:bigint unsigned;not null" json:"packageId"`
	Prompt        string          `gorm:"type:text;not null" json:"prompt"`
	AnswerType    string          `gorm:"size:50;default:'number'" json:"answerType"` // number, text, multiple_choice
	Options       json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	CorrectAnswer string          `gorm:"type:text" json:"-"`
	Difficulty    string          `gorm:"size:50;default:'easy'" json:"difficulty"`
	Hint          string          `gorm:"type:text" json:"hint,omitempty"`
	Position      int             `gorm:"default:0" json:"position"`
}

func (PackageProblem) TableName() string {
	return "package_problems"
}
