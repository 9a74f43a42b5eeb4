package model

import "time"

// Collectible is a shop item a child can unlock with coins.
// swagger:model Collectible
type Collectible struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Emoji    string `gorm:"size:16" json:"emoji"`
	Rarity   string `gorm:"size:50;default:'common'" json:"rarity"` // common, rare, epic, legendary
	Cost     int    `gorm:"default:50" json:"cost"`
	Enabled  bool   `gorm:"default:true" json:"enabled"`
	Position int    `gorm:"default:0" json:"position"`
}

func (Collectible) TableName() string {
	return "collectibles"
}

// ChildCollectible records one unlock, at most one per (child, collectible).
// swagger:model ChildCollectible
type ChildCollectible struct {
	BaseModel
	ChildID       uint      `gorm:"uniqueIndex:idx_child_collectible;type:bigint unsigned;not null" json:"childId"`
	CollectibleID uint      `gorm:"uniqueIndex:idx_child_collectible;type:bigint unsigned;not null" json:"collectibleId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}

func (ChildCollectible) TableName() string {
	return "child_collectibles"
}
