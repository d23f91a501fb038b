package services

import (
	"context"
	"fmt"
	"time"

	"itemnav/internal/models"
	"itemnav/internal/pagelist"
	"itemnav/internal/repository"
	"itemnav/internal/utils"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ContentService creates and loads articles, pages, albums and images.
type ContentService struct {
	db       *gorm.DB
	articles *repository.ArticleRepository
	pages    *repository.PageRepository
	albums   *repository.AlbumRepository
	images   *repository.ImageRepository
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{
		db:       db,
		articles: repository.NewArticleRepository(db),
		pages:    repository.NewPageRepository(db),
		albums:   repository.NewAlbumRepository(db),
		images:   repository.NewImageRepository(db),
	}
}

// Repositories exposes the repositories the service reads through, so the
// page list service shares them.
func (s *ContentService) Repositories() (*repository.ArticleRepository, *repository.PageRepository,
	*repository.AlbumRepository, *repository.ImageRepository) {
	return s.articles, s.pages, s.albums, s.images
}

func (s *ContentService) CreateArticle(ctx context.Context, title, content, status string, publishedAt time.Time) (*models.Article, error) {
	if title == "" {
		title = "Untitled"
	}
	if status == "" {
		status = models.ArticleDraft
	}
	slugStr, err := s.generateUniqueSlug(title, func(candidate string) (bool, error) {
		return s.articles.CheckSlugExists(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:       title,
		Slug:        slugStr,
		Content:     content,
		Status:      status,
		PublishedAt: publishedAt,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article %q: %w", title, err)
	}
	return article, nil
}

func (s *ContentService) CreatePage(ctx context.Context, title, content string, parent *models.Page, sortOrder int) (*models.Page, error) {
	if title == "" {
		title = "Untitled"
	}
	slugStr, err := s.generateUniqueSlug(title, func(candidate string) (bool, error) {
		return s.pages.CheckSlugExists(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}

	page := &models.Page{Title: title, Slug: slugStr, Content: content, SortOrder: sortOrder}
	if parent != nil {
		page.ParentID = &parent.ID
	}
	if err := s.pages.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("create page %q: %w", title, err)
	}
	return page, nil
}

// CreateAlbum adds an album under parent, or at the gallery root when parent
// is nil. A non-empty query makes the album dynamic.
func (s *ContentService) CreateAlbum(ctx context.Context, title string, parent *models.Album, query string, sortOrder int) (*models.Album, error) {
	name, err := s.generateUniqueSlug(title, func(candidate string) (bool, error) {
		return s.albums.CheckNameExists(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}

	album := &models.Album{
		Name:        name,
		Title:       title,
		SortOrder:   sortOrder,
		Dynamic:     query != "",
		SearchQuery: query,
	}
	if parent != nil {
		album.ParentID = &parent.ID
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return nil, fmt.Errorf("create album %q: %w", title, err)
	}
	return album, nil
}

func (s *ContentService) AddImage(ctx context.Context, album *models.Album, filename, title string, sortOrder int) (*models.Image, error) {
	if album.Dynamic {
		return nil, fmt.Errorf("album %q is dynamic and cannot hold images", album.Name)
	}
	image := &models.Image{AlbumID: album.ID, Filename: filename, Title: title, SortOrder: sortOrder}
	if err := s.images.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("add image %q: %w", filename, err)
	}
	return image, nil
}

func (s *ContentService) GetArticle(ctx context.Context, slugStr string) (*models.Article, *models.RenderedArticle, error) {
	article, err := s.articles.FindBySlug(ctx, slugStr)
	if err != nil {
		return nil, nil, err
	}
	html, err := utils.RenderMarkdown(article.Content)
	if err != nil {
		return nil, nil, fmt.Errorf("render article %q: %w", slugStr, err)
	}
	return article, &models.RenderedArticle{
		Title:       article.Title,
		Slug:        article.Slug,
		Content:     html,
		Status:      article.Status,
		PublishedAt: article.PublishedAt,
	}, nil
}

// ListArticles returns every article in navigation order.
func (s *ContentService) ListArticles(ctx context.Context) ([]models.Article, error) {
	return s.articles.FindAll(ctx)
}

func (s *ContentService) GetPage(ctx context.Context, slugStr string) (*models.Page, error) {
	return s.pages.FindBySlug(ctx, slugStr)
}

func (s *ContentService) GetAlbum(ctx context.Context, name string) (*models.Album, error) {
	return s.albums.FindByName(ctx, name)
}

// GetImage loads an image as shown inside album. Images of a dynamic album
// belong to other albums, so ownership is only enforced for regular albums.
func (s *ContentService) GetImage(ctx context.Context, album *models.Album, id uint) (*models.Image, error) {
	image, err := s.images.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !album.Dynamic && image.AlbumID != album.ID {
		return nil, repository.ErrNotFound
	}
	return image, nil
}

// AlbumImages returns the first limit images of album for its overview page.
func (s *ContentService) AlbumImages(ctx context.Context, album *models.Album, limit int) ([]models.Image, error) {
	return s.images.FindPage(ctx, albumScope(album), 0, limit)
}

// generateUniqueSlug appends a counter to the slug of title until exists
// reports it free.
func (s *ContentService) generateUniqueSlug(title string, exists func(string) (bool, error)) (string, error) {
	baseSlug := slug.Make(title)
	if baseSlug == "" {
		baseSlug = "untitled"
	}
	finalSlug := baseSlug
	for counter := 1; ; counter++ {
		taken, err := exists(finalSlug)
		if err != nil {
			return "", err
		}
		if !taken {
			return finalSlug, nil
		}
		finalSlug = fmt.Sprintf("%s-%d", baseSlug, counter)
	}
}

// Transaction runs fn with a service bound to a single transaction.
func (s *ContentService) Transaction(fn func(tx *ContentService) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewContentService(tx))
	})
}

// SearchImages returns up to limit images whose title contains query, linked
// inside their own albums, and the total number of matches.
func (s *ContentService) SearchImages(ctx context.Context, query string, limit int) ([]pagelist.Link, int, error) {
	set, err := searchImageSet(ctx, s.images, s.albums, query)
	if err != nil {
		return nil, 0, err
	}
	images, err := s.images.FindPage(ctx, set.scope, 0, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("search images %q: %w", query, err)
	}

	links := make([]pagelist.Link, 0, len(images))
	for i := range images {
		l, err := set.link(&images[i])
		if err != nil {
			return nil, 0, err
		}
		links = append(links, l)
	}
	return links, set.Len(), nil
}
