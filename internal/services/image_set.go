package services

import (
	"context"
	"fmt"
	"strconv"

	"itemnav/internal/models"
	"itemnav/internal/pagelist"
	"itemnav/internal/repository"
	"itemnav/internal/utils"
)

// imageSet exposes a repository scope as a pagelist.AlbumImages. Keys are
// image ids in decimal.
type imageSet struct {
	ctx     context.Context
	images  *repository.ImageRepository
	albums  *repository.AlbumRepository
	scope   repository.ImageScope
	album   string // album named in links; empty uses each image's own album
	dynamic bool
	total   int
	names   map[uint]string
	// pinned links keep navigation inside the album while a search is active.
	pinned  bool
}

func newImageSet(ctx context.Context, images *repository.ImageRepository, albums *repository.AlbumRepository,
	scope repository.ImageScope, album string, dynamic bool) (*imageSet, error) {
	count, err := images.Count(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("count images: %w", err)
	}
	return &imageSet{
		ctx:     ctx,
		images:  images,
		albums:  albums,
		scope:   scope,
		album:   album,
		dynamic: dynamic,
		total:   int(count),
		names:   make(map[uint]string),
	}, nil
}

// albumImageSet builds the set an image is paged through inside album.
func albumImageSet(ctx context.Context, images *repository.ImageRepository, albums *repository.AlbumRepository,
	album *models.Album) (*imageSet, error) {
	return newImageSet(ctx, images, albums, albumScope(album), album.Name, album.Dynamic)
}

// albumScope selects the images shown in album: its own, or for a dynamic
// album those matching its query.
func albumScope(album *models.Album) repository.ImageScope {
	if album.Dynamic {
		return repository.ImageScope{AlbumID: album.ID, Match: album.SearchQuery}
	}
	return repository.ImageScope{AlbumID: album.ID}
}

// searchImageSet builds the result set of a title search across the gallery.
func searchImageSet(ctx context.Context, images *repository.ImageRepository, albums *repository.AlbumRepository,
	query string) (*imageSet, error) {
	return newImageSet(ctx, images, albums, repository.ImageScope{Match: query}, "", false)
}

func (s *imageSet) Len() int {
	return s.total
}

func (s *imageSet) IndexOf(key string) (int, bool, error) {
	id, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	ids, err := s.images.IDs(s.ctx, s.scope)
	if err != nil {
		return 0, false, err
	}
	for i, candidate := range ids {
		if uint64(candidate) == id {
			return i + 1, true, nil
		}
	}
	return 0, false, nil
}

func (s *imageSet) At(index int) (pagelist.Link, error) {
	img, err := s.images.FindAt(s.ctx, s.scope, index-1)
	if err != nil {
		return pagelist.Link{}, fmt.Errorf("image %d: %w", index, err)
	}
	return s.link(img)
}

func (s *imageSet) Dynamic() bool {
	return s.dynamic
}

func (s *imageSet) First() (pagelist.Link, error) {
	img, err := s.images.FindFirst(s.ctx, s.scope)
	if err != nil {
		return pagelist.Link{}, fmt.Errorf("first image: %w", err)
	}
	return s.link(img)
}

func (s *imageSet) Last() (pagelist.Link, error) {
	img, err := s.images.FindLast(s.ctx, s.scope)
	if err != nil {
		return pagelist.Link{}, fmt.Errorf("last image: %w", err)
	}
	return s.link(img)
}

func (s *imageSet) link(img *models.Image) (pagelist.Link, error) {
	name := s.album
	if name == "" {
		var ok bool
		if name, ok = s.names[img.AlbumID]; !ok {
			album, err := s.albums.FindByID(s.ctx, img.AlbumID)
			if err != nil {
				return pagelist.Link{}, fmt.Errorf("album of image %d: %w", img.ID, err)
			}
			name = album.Name
			s.names[img.AlbumID] = name
		}
	}
	url := utils.ImageURL(name, img.ID)
	if s.pinned {
		url = utils.AlbumLinkedImageURL(name, img.ID)
	}
	return pagelist.Link{URL: url, Title: imageTitle(img)}, nil
}

func imageTitle(img *models.Image) string {
	if img.Title != "" {
		return img.Title
	}
	return img.Filename
}
