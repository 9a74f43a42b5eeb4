package model

import (
	"encoding/json"
	"time"
)

type ImportJobStatus string

const (
	ImportQueued     ImportJobStatus = "queued"
	ImportProcessing ImportJobStatus = "processing"
	ImportCompleted  ImportJobStatus = "completed"
	ImportFailed     ImportJobStatus = "failed"
)

// ImportJob tracks one worksheet-scan import through the Redis queue. The
// scan itself lives in object storage under ObjectKey; the OCR result is
// posted back as a problem list in Payload and materialized into a draft
// package by the worker.
// swagger:model ImportJob
type ImportJob struct {
	UUIDBase
	OwnerID     uint            `gorm:"index;type:bigint unsigned;not null" json:"ownerId"`
	Status      ImportJobStatus `gorm:"type:enum('queued','processing','completed','failed');default:'queued'" json:"status"`
	ObjectKey   string          `gorm:"size:512" json:"objectKey"`
	Subject     Subject         `gorm:"type:enum('math','reading','english');default:'math'" json:"subject"`
	GradeLevel  int             `gorm:"default:1" json:"gradeLevel"`
	PackageName string          `gorm:"size:255" json:"packageName"`
	Payload     json.RawMessage `gorm:"type:json" json:"-"`
	PackageID   *uint           `gorm:"type:bigint unsigned" json:"packageId"`
	Error       string          `gorm:"type:text" json:"error,omitempty"`
	FinishedAt  *time.Time      `json:"finishedAt"`
}

func (ImportJob) TableName() string {
	return "import_jobs"
}
