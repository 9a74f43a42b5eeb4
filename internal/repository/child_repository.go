package repository

import (
	"kidslearn_backend/internal/model"

	"gorm.io/gorm"
)

type ChildRepository struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) *ChildRepository {
	return &ChildRepository{DB: db}
}

// Create inserts the child and its empty wallet in one transaction.
func (r *ChildRepository) Create(child *model.Child) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(child).Error; err != nil {
			return err
		}
		return tx.Create(&model.Wallet{ChildID: child.ID}).Error
	})
}

func (r *ChildRepository) FindByID(id uint) (*model.Child, error) {
	var child model.Child
	err := r.DB.First(&child, id).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *ChildRepository) FindByParent(parentID uint) ([]model.Child, error) {
	var children []model.Child
	err := r.DB.Where("parent_id = ?", parentID).Order("created_at ASC").Find(&children).Error
	return children, err
}

func (r *ChildRepository) Update(child *model.Child) error {
	return r.DB.Save(child).Error
}

// Delete removes the child with its wallet, assignments and answers.
func (r *ChildRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var assignmentIDs []uint
		if err := tx.Model(&model.Assignment{}).Where("child_id = ?", id).
			Pluck("id", &assignmentIDs).Error; err != nil {
			return err
		}
		if len(assignmentIDs) > 0 {
			if err := tx.Where("assignment_id IN ?", assignmentIDs).Delete(&model.AnswerRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Where("assignment_id IN ?", assignmentIDs).Delete(&model.MathProblem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("assignment_id IN ?", assignmentIDs).Delete(&model.ReadingQuestion{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", assignmentIDs).Delete(&model.Assignment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("child_id = ?", id).Delete(&model.Wallet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("child_id = ?", id).Delete(&model.ChildCollectible{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Child{}, id).Error
	})
}
