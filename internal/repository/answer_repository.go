package repository

import (
	"kidslearn_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// Upsert writes the answer row for (assignment, problem). A re-submission
// overwrites the previous answer and bumps the attempt counter; last write
// wins, per the upsert-on-conflict contract.
func (r *AnswerRepository) Upsert(tx *gorm.DB, rec *model.AnswerRecord) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "assignment_id"}, {Name: "problem_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"submitted_answer": rec.SubmittedAnswer,
			"is_correct":       rec.IsCorrect,
			"answered_at":      rec.AnsweredAt,
			"attempts":         gorm.Expr("attempts + 1"),
		}),
	}).Create(rec).Error
}

func (r *AnswerRepository) ListByAssignment(assignmentID uint) ([]model.AnswerRecord, error) {
	var out []model.AnswerRecord
	err := r.DB.Where("assignment_id = ?", assignmentID).Find(&out).Error
	return out, err
}
