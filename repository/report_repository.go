package repository

import (
	"time"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"gorm.io/gorm"
)

type ReportRepository struct{ DB *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{DB: db} }

// OrdersBetween returns orders created in [from, to), cancelled excluded.
func (r *ReportRepository) OrdersBetween(from, to time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("created_at >= ? AND created_at < ?", from, to).
		Where("status <> ?", entity.StatusCancelled).
		Find(&out).Error
	return out, err
}

type StatusCount struct {
	Status entity.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

func (r *ReportRepository) StatusCounts() ([]StatusCount, error) {
	var out []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&out).Error
	return out, err
}

type IngredientStat struct {
	IngredientID uint    `json:"ingredientId"`
	Name         string  `json:"name"`
	Qty          int64   `json:"qty"`
	Revenue      float64 `json:"revenue"`
}

// TopIngredients aggregates custom-line ingredient rows for orders in the
// window, ranked by quantity sold.
func (r *ReportRepository) TopIngredients(from, to time.Time, limit int) ([]IngredientStat, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []IngredientStat
	err := r.DB.Table("burger_ingredients AS bi").
		Select("bi.ingredient_id, bi.name, SUM(bi.qty) AS qty, SUM(bi.qty * bi.unit_price) AS revenue").
		Joins("JOIN order_burgers ob ON ob.id = bi.order_line_id").
		Joins("JOIN custom_orders o ON o.id = ob.order_id").
		Where("o.created_at >= ? AND o.created_at < ?", from, to).
		Where("o.status <> ?", entity.StatusCancelled).
		Where("bi.deleted_at IS NULL AND ob.deleted_at IS NULL AND o.deleted_at IS NULL").
		Group("bi.ingredient_id, bi.name").
		Order("qty DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
