package repository

import (
	"kidslearn_backend/internal/model"

	"gorm.io/gorm"
)

type PackageRepository struct {
	DB *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{DB: db}
}

func (r *PackageRepository) Create(pkg *model.Package) error {
	return r.DB.Create(pkg).Error
}

func (r *PackageRepository) FindByID(id uint) (*model.Package, error) {
	var pkg model.Package
	err := r.DB.Preload("Problems", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&pkg, id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ListVisible returns the owner's own packages plus global ones for the
// given grade. Soft-deleted packages are always excluded.
func (r *PackageRepository) ListVisible(ownerID uint, gradeLevel int, subject string) ([]model.Package, error) {
	q := r.DB.Where("deleted = ?", false)
	if gradeLevel > 0 {
		q = q.Where("owner_id = ? OR (is_global = ? AND grade_level = ?)", ownerID, true, gradeLevel)
	} else {
		q = q.Where("owner_id = ? OR is_global = ?", ownerID, true)
	}
	if subject != "" {
		q = q.Where("subject = ?", subject)
	}
	var pkgs []model.Package
	err := q.Order("created_at DESC").Find(&pkgs).Error
	return pkgs, err
}

func (r *PackageRepository) Update(pkg *model.Package) error {
	return r.DB.Save(pkg).Error
}

func (r *PackageRepository) Problems(packageID uint) ([]model.PackageProblem, error) {
	var problems []model.PackageProblem
	err := r.DB.Where("package_id = ?", packageID).Order("position ASC").Find(&problems).Error
	return problems, err
}

// SoftDelete flags the package and hard-deletes its dependent assignments
// together with their answers. The package row and its problems stay so
// historical stats keep resolving.
func (r *PackageRepository) SoftDelete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var assignmentIDs []uint
		if err := tx.Model(&model.Assignment{}).Where("package_id = ?", id).
			Pluck("id", &assignmentIDs).Error; err != nil {
			return err
		}
		if len(assignmentIDs) > 0 {
			if err := tx.Where("assignment_id IN ?", assignmentIDs).Delete(&model.AnswerRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", assignmentIDs).Delete(&model.Assignment{}).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Package{}).Where("id = ?", id).Update("deleted", true).Error
	})
}
