package repository

import (
	"kidslearn_backend/internal/model"

	"gorm.io/gorm"
)

type AuditRepository struct {
	DB *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

func (r *AuditRepository) List(childID uint, limit int) ([]model.AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := r.DB.Order("created_at DESC").Limit(limit)
	if childID != 0 {
		q = q.Where("child_id = ?", childID)
	}
	var out []model.AuditEntry
	err := q.Find(&out).Error
	return out, err
}
