package repository

import (
	"kidslearn_backend/internal/model"

	"gorm.io/gorm"
)

type CollectibleRepository struct {
	DB *gorm.DB
}

func NewCollectibleRepository(db *gorm.DB) *CollectibleRepository {
	return &CollectibleRepository{DB: db}
}

func (r *CollectibleRepository) ListEnabled() ([]model.Collectible, error) {
	var out []model.Collectible
	err := r.DB.Where("enabled = ?", true).Order("position ASC").Find(&out).Error
	return out, err
}

func (r *CollectibleRepository) FindByID(id uint) (*model.Collectible, error) {
	var c model.Collectible
	err := r.DB.First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CollectibleRepository) Unlocks(childID uint) ([]model.ChildCollectible, error) {
	var out []model.ChildCollectible
	err := r.DB.Where("child_id = ?", childID).Find(&out).Error
	return out, err
}

func (r *CollectibleRepository) HasUnlock(tx *gorm.DB, childID, collectibleID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.ChildCollectible{}).
		Where("child_id = ? AND collectible_id = ?", childID, collectibleID).
		Count(&count).Error
	return count > 0, err
}
