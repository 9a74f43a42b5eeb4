package repository

import (
	"kidslearn_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(a *model.Assignment) error {
	return r.DB.Create(a).Error
}

// CreateWithLegacyQuestions inserts a legacy assignment and its embedded
// questions atomically.
func (r *AssignmentRepository) CreateWithLegacyQuestions(a *model.Assignment, math []model.MathProblem, reading []model.ReadingQuestion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		for i := range math {
			math[i].AssignmentID = a.ID
			if err := tx.Create(&math[i]).Error; err != nil {
				return err
			}
		}
		for i := range reading {
			reading[i].AssignmentID = a.ID
			if err := tx.Create(&reading[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var a model.Assignment
	err := r.DB.First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) ListByChild(childID uint) ([]model.Assignment, error) {
	var out []model.Assignment
	err := r.DB.Where("child_id = ?", childID).
		Order("position ASC, created_at DESC").Find(&out).Error
	return out, err
}

func (r *AssignmentRepository) ListByParent(parentID uint) ([]model.Assignment, error) {
	var out []model.Assignment
	err := r.DB.Where("parent_id = ?", parentID).
		Order("position ASC, created_at DESC").Find(&out).Error
	return out, err
}

func (r *AssignmentRepository) MathProblems(assignmentID uint) ([]model.MathProblem, error) {
	var out []model.MathProblem
	err := r.DB.Where("assignment_id = ?", assignmentID).Order("position ASC").Find(&out).Error
	return out, err
}

func (r *AssignmentRepository) ReadingQuestions(assignmentID uint) ([]model.ReadingQuestion, error) {
	var out []model.ReadingQuestion
	err := r.DB.Where("assignment_id = ?", assignmentID).Order("position ASC").Find(&out).Error
	return out, err
}

func (r *AssignmentRepository) UpdatePosition(tx *gorm.DB, id uint, position int) error {
	return tx.Model(&model.Assignment{}).Where("id = ?", id).
		Update("position", position).Error
}

// Delete removes the assignment and every dependent row, answers first.
func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", id).Delete(&model.AnswerRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assignment_id = ?", id).Delete(&model.MathProblem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assignment_id = ?", id).Delete(&model.ReadingQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Assignment{}, id).Error
	})
}
