package repository

import (
	"context"
	"strings"

	"itemnav/internal/models"

	"gorm.io/gorm"
)

// ImageScope selects an ordered set of images: the members of one album, or
// every image whose title contains Match.
type ImageScope struct {
	AlbumID uint
	Match   string
}

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(ctx context.Context, image *models.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *ImageRepository) FindByID(ctx context.Context, id uint) (*models.Image, error) {
	var image models.Image
	err := r.db.WithContext(ctx).First(&image, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &image, nil
}

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// scoped applies the scope filter without ordering.
func (r *ImageRepository) scoped(ctx context.Context, scope ImageScope) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Image{})
	if scope.Match != "" {
		return q.Where(`title LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(scope.Match)+"%")
	}
	return q.Where("album_id = ?", scope.AlbumID)
}

func orderFor(scope ImageScope, desc bool) string {
	dir := "asc"
	if desc {
		dir = "desc"
	}
	if scope.Match != "" {
		return "album_id " + dir + ", sort_order " + dir + ", id " + dir
	}
	return "sort_order " + dir + ", id " + dir
}

func (r *ImageRepository) Count(ctx context.Context, scope ImageScope) (int64, error) {
	var count int64
	err := r.scoped(ctx, scope).Count(&count).Error
	return count, err
}

// IDs returns the ids of the scope in display order.
func (r *ImageRepository) IDs(ctx context.Context, scope ImageScope) ([]uint, error) {
	var ids []uint
	err := r.scoped(ctx, scope).Order(orderFor(scope, false)).Pluck("id", &ids).Error
	return ids, err
}

// FindAt returns the image at the zero-based offset of the scope.
func (r *ImageRepository) FindAt(ctx context.Context, scope ImageScope, offset int) (*models.Image, error) {
	var image models.Image
	err := r.scoped(ctx, scope).Order(orderFor(scope, false)).Offset(offset).Limit(1).Take(&image).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &image, nil
}

// FindPage returns up to limit images of the scope starting at offset.
func (r *ImageRepository) FindPage(ctx context.Context, scope ImageScope, offset, limit int) ([]models.Image, error) {
	var images []models.Image
	err := r.scoped(ctx, scope).Order(orderFor(scope, false)).Offset(offset).Limit(limit).Find(&images).Error
	return images, err
}

// FindFirst and FindLast read the ends of a scope directly, without offsets.
func (r *ImageRepository) FindFirst(ctx context.Context, scope ImageScope) (*models.Image, error) {
	return r.findEnd(ctx, scope, false)
}

func (r *ImageRepository) FindLast(ctx context.Context, scope ImageScope) (*models.Image, error) {
	return r.findEnd(ctx, scope, true)
}

func (r *ImageRepository) findEnd(ctx context.Context, scope ImageScope, desc bool) (*models.Image, error) {
	var image models.Image
	err := r.scoped(ctx, scope).Order(orderFor(scope, desc)).Limit(1).Take(&image).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &image, nil
}
