package repository

import (
	"time"

	"kidslearn_backend/internal/model"

	"gorm.io/gorm"
)

// StatsRepository answers the aggregation queries of the stats service.
// Two physical shapes exist: package answers live in answer_records joined
// through assignments, legacy answers live as columns on math_problems /
// reading_questions. Each scan counts correct vs incorrect, optionally
// bounded below by cutoff (inclusive) on the answer timestamp.
type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

type statsRow struct {
	Correct   int
	Incorrect int
}

type dailyRow struct {
	Day       string
	Correct   int
	Incorrect int
}

func (r *StatsRepository) PackageStats(childID uint, subject model.Subject, cutoff *time.Time) (model.SubjectStats, error) {
	q := r.DB.Model(&model.AnswerRecord{}).
		Select("COALESCE(SUM(answer_records.is_correct), 0) AS correct, COALESCE(SUM(1 - answer_records.is_correct), 0) AS incorrect").
		Joins("JOIN assignments ON assignments.id = answer_records.assignment_id").
		Where("assignments.child_id = ? AND assignments.subject = ?", childID, subject)
	if cutoff != nil {
		q = q.Where("answer_records.answered_at >= ?", *cutoff)
	}
	var row statsRow
	if err := q.Scan(&row).Error; err != nil {
		return model.SubjectStats{}, err
	}
	return model.SubjectStats{Correct: row.Correct, Incorrect: row.Incorrect}, nil
}

func (r *StatsRepository) LegacyStats(childID uint, subject model.Subject, cutoff *time.Time) (model.SubjectStats, error) {
	table, ok := legacyTable(subject)
	if !ok {
		return model.SubjectStats{}, nil
	}
	q := r.DB.Table(table).
		Select("COALESCE(SUM(is_correct), 0) AS correct, COALESCE(SUM(1 - is_correct), 0) AS incorrect").
		Joins("JOIN assignments ON assignments.id = "+table+".assignment_id").
		Where("assignments.child_id = ? AND assignments.subject = ? AND "+table+".submitted_answer IS NOT NULL", childID, subject)
	if cutoff != nil {
		q = q.Where(table+".answered_at >= ?", *cutoff)
	}
	var row statsRow
	if err := q.Scan(&row).Error; err != nil {
		return model.SubjectStats{}, err
	}
	return model.SubjectStats{Correct: row.Correct, Incorrect: row.Incorrect}, nil
}

func (r *StatsRepository) PackageDaily(childID uint, subject model.Subject, cutoff *time.Time) ([]model.DailyStats, error) {
	q := r.DB.Model(&model.AnswerRecord{}).
		Select("DATE_FORMAT(answer_records.answered_at, '%Y-%m-%d') AS day, SUM(answer_records.is_correct) AS correct, SUM(1 - answer_records.is_correct) AS incorrect").
		Joins("JOIN assignments ON assignments.id = answer_records.assignment_id").
		Where("assignments.child_id = ? AND assignments.subject = ?", childID, subject).
		Group("day").Order("day ASC")
	if cutoff != nil {
		q = q.Where("answer_records.answered_at >= ?", *cutoff)
	}
	var rows []dailyRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toDaily(rows), nil
}

func (r *StatsRepository) LegacyDaily(childID uint, subject model.Subject, cutoff *time.Time) ([]model.DailyStats, error) {
	table, ok := legacyTable(subject)
	if !ok {
		return nil, nil
	}
	q := r.DB.Table(table).
		Select("DATE_FORMAT("+table+".answered_at, '%Y-%m-%d') AS day, SUM(is_correct) AS correct, SUM(1 - is_correct) AS incorrect").
		Joins("JOIN assignments ON assignments.id = "+table+".assignment_id").
		Where("assignments.child_id = ? AND assignments.subject = ? AND "+table+".submitted_answer IS NOT NULL", childID, subject).
		Group("day").Order("day ASC")
	if cutoff != nil {
		q = q.Where(table+".answered_at >= ?", *cutoff)
	}
	var rows []dailyRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toDaily(rows), nil
}

// Only math and reading have a legacy table; legacy creation rejects any
// other subject.
func legacyTable(subject model.Subject) (string, bool) {
	switch subject {
	case model.SubjectMath:
		return "math_problems", true
	case model.SubjectReading:
		return "reading_questions", true
	}
	return "", false
}

func toDaily(rows []dailyRow) []model.DailyStats {
	out := make([]model.DailyStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.DailyStats{Date: row.Day, Correct: row.Correct, Incorrect: row.Incorrect})
	}
	return out
}
