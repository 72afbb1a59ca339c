package entity

import (
	"gorm.io/gorm"
)

// Two shapes behind one row: standard lines carry a ProductID and merge by
// product identity; custom lines carry an ingredient snapshot and never merge.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID *uint    `json:"productId"`
	Product   *Product `json:"-"`

	IsCustom  bool    `json:"isCustom"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`

	Ingredients []CartItemIngredient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"ingredients"`
}
