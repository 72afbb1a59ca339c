package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNo string `json:"orderNo"`

	BranchID *uint   `json:"branchId"`
	Branch   *Branch `json:"-"`

	// 0 and 99 are the phone/takeaway sentinels used by the manual order flow.
	TableNo       int    `json:"tableNo"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Notes         string `json:"notes"`

	Total  float64     `json:"total"`
	Status OrderStatus `gorm:"index" json:"status"`

	PrintedAt  *time.Time `json:"printedAt"`
	PreparedAt *time.Time `json:"preparedAt"`
	ServedAt   *time.Time `json:"servedAt"`
	PaidAt     *time.Time `json:"paidAt"`

	Lines []OrderLine `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lines"`
}

func (Order) TableName() string { return "custom_orders" }
