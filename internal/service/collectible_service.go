package service

import (
	"time"

	"kidslearn_backend/internal/model"
	"kidslearn_backend/internal/repository"
	"kidslearn_backend/internal/util"

	"gorm.io/gorm"
)

type CollectibleService struct {
	CollectibleRepo *repository.CollectibleRepository
	WalletRepo      *repository.WalletRepository
	DB              *gorm.DB
}

func NewCollectibleService(collectibleRepo *repository.CollectibleRepository, walletRepo *repository.WalletRepository, db *gorm.DB) *CollectibleService {
	return &CollectibleService{CollectibleRepo: collectibleRepo, WalletRepo: walletRepo, DB: db}
}

type ShopItem struct {
	model.Collectible
	Unlocked bool `json:"unlocked"`
}

func (s *CollectibleService) Catalog(childID uint) ([]ShopItem, error) {
	items, err := s.CollectibleRepo.ListEnabled()
	if err != nil {
		return nil, err
	}
	unlocks, err := s.CollectibleRepo.Unlocks(childID)
	if err != nil {
		return nil, err
	}
	owned := make(map[uint]bool, len(unlocks))
	for _, u := range unlocks {
		owned[u.CollectibleID] = true
	}

	out := make([]ShopItem, 0, len(items))
	for _, c := range items {
		out = append(out, ShopItem{Collectible: c, Unlocked: owned[c.ID]})
	}
	return out, nil
}

func (s *CollectibleService) Wallet(childID uint) (*model.Wallet, error) {
	return s.WalletRepo.FindByChild(childID)
}

// Purchase debits the wallet and records the unlock in one transaction,
// with the wallet row locked so concurrent purchases cannot overspend.
func (s *CollectibleService) Purchase(childID, collectibleID uint) (*model.Wallet, error) {
	c, err := s.CollectibleRepo.FindByID(collectibleID)
	if err != nil || !c.Enabled {
		return nil, util.ErrCollectibleNotFound
	}

	var wallet *model.Wallet
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		owned, err := s.CollectibleRepo.HasUnlock(tx, childID, collectibleID)
		if err != nil {
			return err
		}
		if owned {
			return util.ErrAlreadyUnlocked
		}

		w, err := s.WalletRepo.LockForUpdate(tx, childID)
		if err != nil {
			return err
		}
		if w.Balance < c.Cost {
			return util.ErrInsufficientCoins
		}
		w.Balance -= c.Cost
		if err := tx.Save(w).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.ChildCollectible{
			ChildID:       childID,
			CollectibleID: collectibleID,
			UnlockedAt:    time.Now(),
		}).Error; err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}
