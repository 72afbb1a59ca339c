package entity

import (
	"gorm.io/gorm"
)

// Customer-linked snapshot of a built burger, looked up by phone.
// Phone is not unique: one customer can keep many designs.
type SavedBurger struct {
	gorm.Model
	Phone string `gorm:"index" json:"phone"`
	Name  string `json:"name"`

	// JSON array of {ingredientId, name, category, qty}; re-resolved against
	// the live catalog on load.
	Ingredients string  `json:"ingredients"`
	Total       float64 `json:"total"`
}

func (SavedBurger) TableName() string { return "saved_burgers" }
