package repository

import (
	"kidslearn_backend/internal/model"

	"gorm.io/gorm"
)

type ImportJobRepository struct {
	DB *gorm.DB
}

func NewImportJobRepository(db *gorm.DB) *ImportJobRepository {
	return &ImportJobRepository{DB: db}
}

func (r *ImportJobRepository) Create(job *model.ImportJob) error {
	return r.DB.Create(job).Error
}

func (r *ImportJobRepository) FindByID(id string) (*model.ImportJob, error) {
	var job model.ImportJob
	err := r.DB.Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *ImportJobRepository) ListByOwner(ownerID uint, limit int) ([]model.ImportJob, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []model.ImportJob
	err := r.DB.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *ImportJobRepository) Update(job *model.ImportJob) error {
	return r.DB.Save(job).Error
}
