package model

// CurriculumObjective is a syllabus entry packages can map to. Coverage for
// a child is the share of an objective's packages with at least one
// completed assignment.
// swagger:model CurriculumObjective
type CurriculumObjective struct {
	BaseModel
	Code        string  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Subject     Subject `gorm:"type:enum('math','reading','english');default:'math'" json:"subject"`
	GradeLevel  int     `gorm:"default:1" json:"gradeLevel"`
	Description string  `gorm:"type:text" json:"description"`
	Enabled     bool    `gorm:"default:true" json:"enabled"`
}

func (CurriculumObjective) TableName() string {
	return "curriculum_objectives"
}
