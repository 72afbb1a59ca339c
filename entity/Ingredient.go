package entity

import (
	"gorm.io/gorm"
)

type Ingredient struct {
	gorm.Model
	IngredientCategoryID uint               `json:"ingredientCategoryId"`
	IngredientCategory   IngredientCategory `json:"-"`

	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"` // 0 = included at no extra charge
	Calories    int      `json:"calories"`
	Allergens   []string `gorm:"serializer:json" json:"allergens"`
	IsAvailable bool     `json:"isAvailable"`
	SortOrder   int      `json:"sortOrder"`
	Image       string   `json:"image"`
}
