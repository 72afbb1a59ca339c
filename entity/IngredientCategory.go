package entity

import (
	"gorm.io/gorm"
)

// One category = one step of the burger builder.
// Invariant: 0 <= MinSelect <= MaxSelect.
type IngredientCategory struct {
	gorm.Model
	Name       string `json:"name"`
	NameEn     string `json:"nameEn"`
	Icon       string `json:"icon"`
	SortOrder  int    `json:"sortOrder"`
	IsRequired bool   `json:"isRequired"`
	MinSelect  int    `json:"minSelect"`
	MaxSelect  int    `json:"maxSelect"`

	Ingredients []Ingredient `json:"ingredients"`
}
