package repository

import (
	"errors"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetBySessionToken loads a cart with its items; unknown tokens return
// gorm.ErrRecordNotFound for the caller to decide.
func (r *CartRepository) GetBySessionToken(token string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_token = ?", token).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Ingredients").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) Create(c *entity.Cart) error {
	return r.DB.Create(c).Error
}

func (r *CartRepository) Save(c *entity.Cart) error {
	return r.DB.Save(c).Error
}

// FindStandardLine looks up an existing non-custom line for the same product
// so quantities merge instead of duplicating rows.
func (r *CartRepository) FindStandardLine(tx *gorm.DB, cartID, productID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ? AND is_custom = ?", cartID, productID, false).
		First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) AddItem(tx *gorm.DB, cartID uint, item *entity.CartItem) error {
	item.CartID = cartID
	return tx.Create(item).Error
}

func (r *CartRepository) SaveItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) GetItem(cartID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("id = ? AND cart_id = ?", itemID, cartID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, itemID uint) error {
	if err := tx.Where("cart_item_id = ?", itemID).Delete(&entity.CartItemIngredient{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	if err := tx.Where("cart_item_id IN (SELECT id FROM cart_items WHERE cart_id = ?)", cartID).
		Delete(&entity.CartItemIngredient{}).Error; err != nil {
		return err
	}
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
