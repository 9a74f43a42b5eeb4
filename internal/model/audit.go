package model

// AuditEntry is an append-only log row. Submission audits are written in
// the same transaction as the answer so a rollback leaves no trace.
// swagger:model AuditEntry
type AuditEntry struct {
	BaseModel
	RequestID string `gorm:"size:36" json:"requestId"`
	ChildID   uint   `gorm:"index;type:bigint unsigned" json:"childId"`
	UserID    uint   `gorm:"index;type:bigint unsigned" json:"userId"`
	Action    string `gorm:"size:100;not null" json:"action"`
	Detail    string `gorm:"type:text" json:"detail"`
}

func (AuditEntry) TableName() string {
	return "audit_entries"
}
