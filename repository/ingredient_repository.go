package repository

import (
	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"gorm.io/gorm"
)

type IngredientRepository struct{ DB *gorm.DB }

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

// ListCategories returns categories in display order with their ingredients.
// With onlyAvailable, hidden ingredients are filtered out (customer view);
// admin screens see everything.
func (r *IngredientRepository) ListCategories(onlyAvailable bool) ([]entity.IngredientCategory, error) {
	var cats []entity.IngredientCategory
	q := r.DB.Order("sort_order, id").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			if onlyAvailable {
				db = db.Where("is_available = ?", true)
			}
			return db.Order("sort_order, id")
		})
	err := q.Find(&cats).Error
	return cats, err
}

func (r *IngredientRepository) GetCategory(id uint) (*entity.IngredientCategory, error) {
	var c entity.IngredientCategory
	if err := r.DB.Preload("Ingredients").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *IngredientRepository) CreateCategory(c *entity.IngredientCategory) error {
	return r.DB.Create(c).Error
}

func (r *IngredientRepository) UpdateCategory(c *entity.IngredientCategory) error {
	return r.DB.Save(c).Error
}

func (r *IngredientRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.IngredientCategory{}, id).Error
}

// ---------------- Ingredients ----------------

func (r *IngredientRepository) GetIngredient(id uint) (*entity.Ingredient, error) {
	var i entity.Ingredient
	if err := r.DB.First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *IngredientRepository) GetIngredientsByIDs(ids []uint) ([]entity.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.Ingredient
	err := r.DB.Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *IngredientRepository) CreateIngredient(i *entity.Ingredient) error {
	return r.DB.Create(i).Error
}

func (r *IngredientRepository) UpdateIngredient(i *entity.Ingredient) error {
	return r.DB.Save(i).Error
}

func (r *IngredientRepository) DeleteIngredient(id uint) error {
	return r.DB.Delete(&entity.Ingredient{}, id).Error
}

// Inline admin toggles.
func (r *IngredientRepository) SetAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.Ingredient{}).Where("id = ?", id).
		Update("is_available", available).Error
}

func (r *IngredientRepository) SetPrice(id uint, price float64) error {
	return r.DB.Model(&entity.Ingredient{}).Where("id = ?", id).
		Update("price", price).Error
}
