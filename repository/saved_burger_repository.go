package repository

import (
	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"gorm.io/gorm"
)

type SavedBurgerRepository struct{ DB *gorm.DB }

func NewSavedBurgerRepository(db *gorm.DB) *SavedBurgerRepository {
	return &SavedBurgerRepository{DB: db}
}

func (r *SavedBurgerRepository) Create(b *entity.SavedBurger) error {
	return r.DB.Create(b).Error
}

func (r *SavedBurgerRepository) Get(id uint) (*entity.SavedBurger, error) {
	var b entity.SavedBurger
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByPhone returns every design saved under a phone, newest first.
func (r *SavedBurgerRepository) FindByPhone(phone string) ([]entity.SavedBurger, error) {
	var out []entity.SavedBurger
	err := r.DB.Where("phone = ?", phone).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *SavedBurgerRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.SavedBurger{}, id).Error
}
