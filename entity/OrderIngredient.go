package entity

import (
	"gorm.io/gorm"
)

// Historical snapshot of one selected ingredient; name and price are
// denormalized on purpose so later catalog edits never rewrite old orders.
type OrderIngredient struct {
	gorm.Model
	OrderLineID uint      `json:"orderLineId"`
	OrderLine   OrderLine `json:"-"`

	IngredientID uint   `json:"ingredientId"`
	Name         string `json:"name"`

	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
}

func (OrderIngredient) TableName() string { return "burger_ingredients" }
