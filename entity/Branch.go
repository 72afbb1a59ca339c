package entity

import (
	"gorm.io/gorm"
)

type Branch struct {
	gorm.Model
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	MapLink string `json:"mapLink"`

	Orders []Order `json:"-"`
}
