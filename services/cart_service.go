package services

import (
	"errors"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
	"github.com/huozturk-art/dr.burgerweb-sub000/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	Catalog  *repository.CatalogRepository
	IngRepo  *repository.IngredientRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository, ir *repository.IngredientRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, Catalog: cat, IngRepo: ir}
}

type CustomIngredientIn struct {
	IngredientID uint `json:"ingredientId" binding:"required"`
	Qty          int  `json:"qty"`
}

type CustomItemIn struct {
	Name        string               `json:"name"`
	Ingredients []CustomIngredientIn `json:"ingredients" binding:"required,min=1"`
}

type AddItemIn struct {
	ProductID *uint         `json:"productId"`
	Qty       int           `json:"qty"`
	Custom    *CustomItemIn `json:"custom"`
}

type CartOut struct {
	Cart       *entity.Cart `json:"cart"`
	TotalItems int          `json:"totalItems"`
	TotalPrice float64      `json:"totalPrice"`
}

func (s *CartService) Get(token string) (*CartOut, error) {
	c, err := s.CartRepo.GetBySessionToken(token)
	if err != nil {
		return nil, err
	}
	out := &CartOut{Cart: c}
	for _, it := range c.Items {
		out.TotalItems += it.Qty
		out.TotalPrice += it.Total
	}
	return out, nil
}

// Add appends a line to the cart. Standard items merge with an existing line
// for the same product; custom burgers always get their own line, even when
// two builds pick the exact same ingredients.
func (s *CartService) Add(token string, in *AddItemIn) error {
	c, err := s.CartRepo.GetBySessionToken(token)
	if err != nil {
		return err
	}

	if in.Custom != nil {
		line, err := s.buildCustomLine(in.Custom)
		if err != nil {
			return err
		}
		return s.DB.Transaction(func(tx *gorm.DB) error {
			return s.CartRepo.AddItem(tx, c.ID, line)
		})
	}

	if in.ProductID == nil {
		return errors.New("productId or custom is required")
	}
	qty := in.Qty
	if qty <= 0 {
		qty = 1
	}
	p, err := s.Catalog.GetProduct(*in.ProductID)
	if err != nil {
		return errors.New("product not found")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		exist, err := s.CartRepo.FindStandardLine(tx, c.ID, p.ID)
		if err != nil {
			return err
		}
		if exist != nil {
			exist.Qty += qty
			exist.Total = exist.UnitPrice * float64(exist.Qty)
			return s.CartRepo.SaveItem(tx, exist)
		}
		line := &entity.CartItem{
			ProductID: &p.ID,
			Name:      p.Name,
			Qty:       qty,
			UnitPrice: p.Price,
			Total:     p.Price * float64(qty),
		}
		return s.CartRepo.AddItem(tx, c.ID, line)
	})
}

func (s *CartService) buildCustomLine(in *CustomItemIn) (*entity.CartItem, error) {
	ids := make([]uint, 0, len(in.Ingredients))
	qtys := make(map[uint]int, len(in.Ingredients))
	for _, sel := range in.Ingredients {
		q := sel.Qty
		if q <= 0 {
			q = 1
		}
		ids = append(ids, sel.IngredientID)
		qtys[sel.IngredientID] = q
	}

	ings, err := s.IngRepo.GetIngredientsByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(ings) != len(ids) {
		return nil, errors.New("unknown ingredient")
	}

	catNames, err := s.categoryNames(ings)
	if err != nil {
		return nil, err
	}

	name := in.Name
	if name == "" {
		name = "Özel Burger"
	}
	line := &entity.CartItem{IsCustom: true, Name: name, Qty: 1}
	for _, ing := range ings {
		if !ing.IsAvailable {
			return nil, errors.New("ingredient not available")
		}
		q := qtys[ing.ID]
		line.UnitPrice += ing.Price * float64(q)
		line.Ingredients = append(line.Ingredients, entity.CartItemIngredient{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Category:     catNames[ing.IngredientCategoryID],
			Qty:          q,
			UnitPrice:    ing.Price,
		})
	}
	line.Total = line.UnitPrice
	return line, nil
}

func (s *CartService) categoryNames(ings []entity.Ingredient) (map[uint]string, error) {
	ids := make([]uint, 0, len(ings))
	seen := make(map[uint]bool)
	for _, ing := range ings {
		if !seen[ing.IngredientCategoryID] {
			seen[ing.IngredientCategoryID] = true
			ids = append(ids, ing.IngredientCategoryID)
		}
	}
	var cats []entity.IngredientCategory
	if err := s.DB.Where("id IN ?", ids).Find(&cats).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]string, len(cats))
	for _, c := range cats {
		out[c.ID] = c.Name
	}
	return out, nil
}

// UpdateQty adds delta to the line quantity; reaching zero removes the line.
func (s *CartService) UpdateQty(token string, itemID uint, delta int) error {
	c, err := s.CartRepo.GetBySessionToken(token)
	if err != nil {
		return err
	}
	item, err := s.CartRepo.GetItem(c.ID, itemID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		item.Qty += delta
		if item.Qty <= 0 {
			return s.CartRepo.RemoveItem(tx, c.ID, item.ID)
		}
		item.Total = item.UnitPrice * float64(item.Qty)
		return s.CartRepo.SaveItem(tx, item)
	})
}

func (s *CartService) RemoveItem(token string, itemID uint) error {
	c, err := s.CartRepo.GetBySessionToken(token)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, c.ID, itemID)
	})
}

func (s *CartService) Clear(token string) error {
	c, err := s.CartRepo.GetBySessionToken(token)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearItems(tx, c.ID)
	})
}
