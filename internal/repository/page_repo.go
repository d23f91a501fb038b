package repository

import (
	"context"

	"itemnav/internal/models"

	"gorm.io/gorm"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) Create(ctx context.Context, page *models.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &page, nil
}

func (r *PageRepository) CheckSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Page{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll returns all pages, nested ones included, in menu order.
func (r *PageRepository) FindAll(ctx context.Context) ([]models.Page, error) {
	var pages []models.Page
	err := r.db.WithContext(ctx).
		Select("id, title, slug, parent_id, sort_order").
		Order("sort_order asc, id asc").
		Find(&pages).Error
	return pages, err
}
