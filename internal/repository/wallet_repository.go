package repository

import (
	"kidslearn_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletRepository struct {
	DB *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{DB: db}
}

func (r *WalletRepository) FindByChild(childID uint) (*model.Wallet, error) {
	var w model.Wallet
	err := r.DB.Where("child_id = ?", childID).First(&w).Error
	if err == gorm.ErrRecordNotFound {
		w = model.Wallet{ChildID: childID}
		if err := r.DB.Create(&w).Error; err != nil {
			return nil, err
		}
		return &w, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// LockForUpdate loads the wallet row under FOR UPDATE inside tx. The wallet
// is shared mutable state touched by every submission; the row lock keeps
// concurrent submissions from losing updates.
func (r *WalletRepository) LockForUpdate(tx *gorm.DB, childID uint) (*model.Wallet, error) {
	var w model.Wallet
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("child_id = ?", childID).First(&w).Error
	if err == gorm.ErrRecordNotFound {
		w = model.Wallet{ChildID: childID}
		if err := tx.Create(&w).Error; err != nil {
			return nil, err
		}
		return &w, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}
