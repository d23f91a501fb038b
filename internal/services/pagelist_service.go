package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"itemnav/internal/constants"
	"itemnav/internal/metrics"
	"itemnav/internal/models"
	"itemnav/internal/pagelist"
	"itemnav/internal/repository"
	"itemnav/internal/utils"
)

// ErrNoActive is returned when the request carries nothing the variant can paginate.
var ErrNoActive = errors.New("no active object for variant")

// Active is the request context a page list is built for. Only the fields the
// chosen variant needs have to be set.
type Active struct {
	Album   *models.Album
	Image   *models.Image
	Article *models.Article
	Page    *models.Page
	// Search is the visitor's active image search, empty when there is none.
	Search string
	// AlbumLinked is set when the image was opened from its album rather than
	// from search results.
	AlbumLinked bool
}

type PagelistService struct {
	articles       *repository.ArticleRepository
	pages          *repository.PageRepository
	albums         *repository.AlbumRepository
	images         *repository.ImageRepository
	settingService *SettingService
}

func NewPagelistService(articles *repository.ArticleRepository, pages *repository.PageRepository,
	albums *repository.AlbumRepository, images *repository.ImageRepository, settingService *SettingService) *PagelistService {
	return &PagelistService{
		articles:       articles,
		pages:          pages,
		albums:         albums,
		images:         images,
		settingService: settingService,
	}
}

// Render builds the page list for the named variant. Unknown variants render
// nothing and are not an error.
func (s *PagelistService) Render(ctx context.Context, variant string, req pagelist.Request, active Active) ([]pagelist.Entry, error) {
	v, ok := pagelist.ParseVariant(variant)
	if !ok {
		return nil, nil
	}

	entries, err := s.render(ctx, v, req, active)
	metrics.RecordPagelist(string(v), len(entries), err)
	if err != nil {
		return nil, fmt.Errorf("%s page list: %w", v, err)
	}
	return entries, nil
}

func (s *PagelistService) render(ctx context.Context, v pagelist.Variant, req pagelist.Request, active Active) ([]pagelist.Entry, error) {
	src, err := s.Source(ctx, v, active)
	if err != nil {
		return nil, err
	}
	return pagelist.Render(req, src)
}

// Source builds the pagelist.Source of variant v for active.
func (s *PagelistService) Source(ctx context.Context, v pagelist.Variant, active Active) (pagelist.Source, error) {
	switch v {
	case pagelist.VariantItem:
		return s.itemSource(ctx, active)
	case pagelist.VariantGroup:
		return s.groupSource(ctx, active)
	case pagelist.VariantArticle:
		return s.articleSource(ctx, active)
	case pagelist.VariantPage:
		return s.pageSource(ctx, active)
	}
	return nil, fmt.Errorf("unknown variant %q", v)
}

func (s *PagelistService) itemSource(ctx context.Context, active Active) (pagelist.Source, error) {
	if active.Album == nil || active.Image == nil {
		return nil, ErrNoActive
	}

	album, err := albumImageSet(ctx, s.images, s.albums, active.Album)
	if err != nil {
		return nil, err
	}
	// The album-linked flag travels in the URL, so links carry it on while
	// a search would otherwise take over.
	album.pinned = active.AlbumLinked && active.Search != ""
	itemCtx := pagelist.ItemContext{
		Album:       album,
		AlbumLinked: active.AlbumLinked,
		Image:       imageKey(active.Image),
	}
	if active.Search != "" {
		search, err := searchImageSet(ctx, s.images, s.albums, active.Search)
		if err != nil {
			return nil, err
		}
		itemCtx.Search = search
	}
	return pagelist.NewItemSource(itemCtx)
}

func (s *PagelistService) groupSource(ctx context.Context, active Active) (pagelist.Source, error) {
	if active.Album == nil {
		return nil, ErrNoActive
	}

	albums, err := s.albums.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load albums: %w", err)
	}
	names := make(map[uint]string, len(albums))
	for _, a := range albums {
		names[a.ID] = a.Name
	}

	nodes := make([]pagelist.Node, len(albums))
	for i, a := range albums {
		nodes[i] = albumNode(a, names)
	}
	return pagelist.NewGroupSource(nodes, albumNode(*active.Album, names)), nil
}

func (s *PagelistService) articleSource(ctx context.Context, active Active) (pagelist.Source, error) {
	if active.Article == nil {
		return nil, ErrNoActive
	}

	articles, err := s.articles.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}
	nodes := make([]pagelist.Node, len(articles))
	for i, a := range articles {
		nodes[i] = pagelist.Node{
			Key:  a.Slug,
			Link: pagelist.Link{URL: utils.ArticleURL(a.Slug), Title: a.Title},
		}
	}

	var index *pagelist.Link
	if s.settingService.GetBool(constants.SettingArticleIndexEntry) {
		index = &pagelist.Link{URL: utils.ArticleIndexURL, Title: "Articles"}
	}
	return pagelist.NewArticleSource(nodes, active.Article.Slug, index), nil
}

func (s *PagelistService) pageSource(ctx context.Context, active Active) (pagelist.Source, error) {
	if active.Page == nil {
		return nil, ErrNoActive
	}

	pages, err := s.pages.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}
	slugs := make(map[uint]string, len(pages))
	for _, p := range pages {
		slugs[p.ID] = p.Slug
	}

	nodes := make([]pagelist.Node, len(pages))
	for i, p := range pages {
		nodes[i] = pageNode(p, slugs)
	}
	return pagelist.NewPageSource(nodes, pageNode(*active.Page, slugs))
}

func albumNode(a models.Album, names map[uint]string) pagelist.Node {
	n := pagelist.Node{
		Key:  a.Name,
		Link: pagelist.Link{URL: utils.AlbumURL(a.Name), Title: a.Title},
	}
	if a.ParentID != nil {
		n.Parent = names[*a.ParentID]
	}
	return n
}

// pageNode keys pages by slug. A parent id that no longer resolves is kept
// as a synthetic key so the orphan is reported instead of promoted to the top level.
func pageNode(p models.Page, slugs map[uint]string) pagelist.Node {
	n := pagelist.Node{
		Key:  p.Slug,
		Link: pagelist.Link{URL: utils.PageURL(p.Slug), Title: p.Title},
	}
	if p.ParentID != nil {
		parent, ok := slugs[*p.ParentID]
		if !ok {
			parent = fmt.Sprintf("#%d", *p.ParentID)
		}
		n.Parent = parent
	}
	return n
}

func imageKey(img *models.Image) string {
	return strconv.FormatUint(uint64(img.ID), 10)
}
