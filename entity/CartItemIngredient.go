package entity

import (
	"gorm.io/gorm"
)

type CartItemIngredient struct {
	gorm.Model
	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	IngredientID uint   `json:"ingredientId"`
	Name         string `json:"name"`
	Category     string `json:"category"`

	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
}
