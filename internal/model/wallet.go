package model

// Wallet is the per-child coin balance. Streak counts consecutive correct
// answers across assignments and resets to zero on any wrong answer. The
// row is updated under a row lock inside the submission transaction.
// swagger:model Wallet
type Wallet struct {
	BaseModel
	ChildID     uint `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"childId"`
	Balance     int  `gorm:"default:0" json:"balance"`
	TotalEarned int  `gorm:"default:0" json:"totalEarned"`
	Streak      int  `gorm:"default:0" json:"streak"`
}

func (Wallet) TableName() string {
	return "wallets"
}
