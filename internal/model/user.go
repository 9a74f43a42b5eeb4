package model

import (
	"time"
)

type UserRole string

const (
	Parent UserRole = "parent"
	Kid    UserRole = "child"
	Admin  UserRole = "admin"
)

// User is a parent or admin account. Children are separate rows that hang
// off a parent and authenticate via the parent's family code plus a PIN.
// swagger:model User
type User struct {
	BaseModel
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;unique;not null" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Role       UserRole  `gorm:"type:enum('parent','admin');default:'parent'" json:"role"`
	FamilyCode string    `gorm:"size:12;uniqueIndex;not null" json:"familyCode"`
	Language   string    `gorm:"size:10;default:'en'" json:"language"`
	Disabled   bool      `gorm:"default:false" json:"disabled"`
	LastLogin  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen   time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// Child belongs to one parent. The PIN is a bcrypt hash of a 4-digit code
// used for the kid login flow.
// swagger:model Child
type Child struct {
	BaseModel
	ParentID   uint   `gorm:"index;type:bigint unsigned;not null" json:"parentId"`
	Name       string `gorm:"size:100;not null" json:"name"`
	GradeLevel int    `gorm:"default:1" json:"gradeLevel"`
	Avatar     string `gorm:"size:255" json:"avatar"`
	PIN        string `gorm:"size:100" json:"-"`
}

func (Child) TableName() string {
	return "children"
}
