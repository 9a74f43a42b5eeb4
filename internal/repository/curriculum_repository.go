package repository

import (
	"kidslearn_backend/internal/model"

	"gorm.io/gorm"
)

type CurriculumRepository struct {
	DB *gorm.DB
}

func NewCurriculumRepository(db *gorm.DB) *CurriculumRepository {
	return &CurriculumRepository{DB: db}
}

func (r *CurriculumRepository) Create(o *model.CurriculumObjective) error {
	return r.DB.Create(o).Error
}

func (r *CurriculumRepository) FindByID(id uint) (*model.CurriculumObjective, error) {
	var o model.CurriculumObjective
	err := r.DB.First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *CurriculumRepository) ListEnabled() ([]model.CurriculumObjective, error) {
	var out []model.CurriculumObjective
	err := r.DB.Where("enabled = ?", true).Order("subject, grade_level, code").Find(&out).Error
	return out, err
}

func (r *CurriculumRepository) Update(o *model.CurriculumObjective) error {
	return r.DB.Save(o).Error
}

type coverageRow struct {
	ObjectiveID uint
	Packages    int
	Completed   int
}

// Coverage counts, per objective, the packages mapped to it and how many of
// those the child has completed at least one assignment from.
func (r *CurriculumRepository) Coverage(childID uint) (map[uint]model.CoverageRow, error) {
	var rows []coverageRow
	err := r.DB.Raw(`
		SELECT p.objective_id AS objective_id,
		       COUNT(DISTINCT p.id) AS packages,
		       COUNT(DISTINCT CASE WHEN a.status = 'completed' THEN p.id END) AS completed
		FROM packages p
		LEFT JOIN assignments a
		       ON a.package_id = p.id AND a.child_id = ?
		WHERE p.objective_id IS NOT NULL AND p.deleted = 0
		GROUP BY p.objective_id`, childID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint]model.CoverageRow, len(rows))
	for _, row := range rows {
		cov := 0.0
		if row.Packages > 0 {
			cov = float64(row.Completed) / float64(row.Packages)
		}
		out[row.ObjectiveID] = model.CoverageRow{
			Packages:  row.Packages,
			Completed: row.Completed,
			Coverage:  cov,
		}
	}
	return out, nil
}
