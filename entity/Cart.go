package entity

import (
	"gorm.io/gorm"
)

// Server-side cart, one per session token. The table number is pinned to the
// cart so a new table scan can invalidate stale items.
type Cart struct {
	gorm.Model
	SessionToken string `gorm:"uniqueIndex" json:"sessionToken"`
	TableNo      int    `json:"tableNo"`
	BranchID     *uint  `json:"branchId"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
