package repository

import (
	"errors"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"

	"gorm.io/gorm"
)

type ContentRepository struct{ DB *gorm.DB }

func NewContentRepository(db *gorm.DB) *ContentRepository { return &ContentRepository{DB: db} }

// GetContent returns the singleton row, or nil when it was never seeded.
func (r *ContentRepository) GetContent() (*entity.SiteContent, error) {
	var c entity.SiteContent
	err := r.DB.First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateContent patches only the submitted fields; the admin form relies on
// partial updates.
func (r *ContentRepository) UpdateContent(fields map[string]any) error {
	c, err := r.GetContent()
	if err != nil {
		return err
	}
	if c == nil {
		c = &entity.SiteContent{}
		if err := r.DB.Create(c).Error; err != nil {
			return err
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return r.DB.Model(c).Updates(fields).Error
}

// ---------------- Job applications ----------------

func (r *ContentRepository) CreateApplication(a *entity.Application) error {
	return r.DB.Create(a).Error
}

func (r *ContentRepository) ListApplications() ([]entity.Application, error) {
	var out []entity.Application
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *ContentRepository) DeleteApplication(id uint) error {
	return r.DB.Delete(&entity.Application{}, id).Error
}
