package repository

import (
	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ---------------- Products ----------------

func (r *CatalogRepository) ListProducts() ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Order("category, name").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetProduct(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *CatalogRepository) UpdateProduct(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *CatalogRepository) DeleteProduct(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

// ---------------- Branches ----------------

func (r *CatalogRepository) ListBranches() ([]entity.Branch, error) {
	var out []entity.Branch
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetBranch(id uint) (*entity.Branch, error) {
	var b entity.Branch
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *CatalogRepository) CreateBranch(b *entity.Branch) error {
	return r.DB.Create(b).Error
}

func (r *CatalogRepository) UpdateBranch(b *entity.Branch) error {
	return r.DB.Save(b).Error
}

func (r *CatalogRepository) DeleteBranch(id uint) error {
	return r.DB.Delete(&entity.Branch{}, id).Error
}
