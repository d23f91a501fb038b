package repository

import (
	"context"

	"itemnav/internal/models"

	"gorm.io/gorm"
)

type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) Create(ctx context.Context, album *models.Album) error {
	return r.db.WithContext(ctx).Create(album).Error
}

func (r *AlbumRepository) FindByName(ctx context.Context, name string) (*models.Album, error) {
	var album models.Album
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&album).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &album, nil
}

func (r *AlbumRepository) FindByID(ctx context.Context, id uint) (*models.Album, error) {
	var album models.Album
	err := r.db.WithContext(ctx).First(&album, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &album, nil
}

func (r *AlbumRepository) CheckNameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Album{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll returns every album of the gallery in display order.
func (r *AlbumRepository) FindAll(ctx context.Context) ([]models.Album, error) {
	var albums []models.Album
	err := r.db.WithContext(ctx).Order("sort_order asc, id asc").Find(&albums).Error
	return albums, err
}
