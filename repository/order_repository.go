package repository

import (
	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) CreateOrderIngredient(tx *gorm.DB, row *entity.OrderIngredient) error {
	return tx.Create(row).Error
}

func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderDetail(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Lines.Ingredients").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderByNo(orderNo string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("order_no = ?", orderNo).
		Preload("Lines").Preload("Lines.Ingredients").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Board filters: "active" = everything still in the kitchen's hands,
// "paid" = paid only, anything else = all.
func (r *OrderRepository) ListForBoard(filter string) ([]entity.Order, int64, error) {
	q := r.DB.Model(&entity.Order{})
	switch filter {
	case "active":
		q = q.Where("status NOT IN ?", []entity.OrderStatus{entity.StatusPaid, entity.StatusCancelled})
	case "paid":
		q = q.Where("status = ?", entity.StatusPaid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := q.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Lines.Ingredients").
		Order("id DESC").
		Find(&out).Error
	return out, total, err
}

// UpdateStatusGuard flips the status only when it still holds the expected
// value; zero rows affected means another operator got there first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus, stamps map[string]any) (int64, error) {
	updates := map[string]any{"status": to}
	for k, v := range stamps {
		updates[k] = v
	}
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}
