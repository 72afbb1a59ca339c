package entity

import (
	"gorm.io/gorm"
)

type OrderLine struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	Name string `json:"name"`

	// nil for custom burgers
	ProductID *uint    `json:"productId"`
	Product   *Product `json:"-"`

	IsCustom bool    `json:"isCustom"`
	Qty      int     `json:"qty"`
	Total    float64 `json:"total"`

	Ingredients []OrderIngredient `gorm:"foreignKey:OrderLineID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"ingredients"`
}

func (OrderLine) TableName() string { return "order_burgers" }
