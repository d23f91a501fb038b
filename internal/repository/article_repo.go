package repository

import (
	"context"

	"itemnav/internal/models"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &article, nil
}

func (r *ArticleRepository) CheckSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll returns every article whatever its status, newest first. This is
// the order articles are paged through.
func (r *ArticleRepository) FindAll(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Select("id, title, slug, status, published_at").
		Order("published_at desc, id desc").
		Find(&articles).Error
	return articles, err
}
