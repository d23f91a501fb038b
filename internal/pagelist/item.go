package pagelist

import "fmt"

// ImageSet is an ordered set of images read one position at a time.
type ImageSet interface {
	Len() int
	// IndexOf returns the 1-based position of the image with the given key.
	IndexOf(key string) (int, bool, error)
	At(index int) (Link, error)
}

// AlbumImages is the image set of an album. Dynamic albums are defined by a
// query rather than by membership and expose their ends through First and Last.
type AlbumImages interface {
	ImageSet
	Dynamic() bool
	First() (Link, error)
	Last() (Link, error)
}

// ItemContext is everything the item variant reads from the request.
type ItemContext struct {
	Album AlbumImages
	// Search is the active search result set, nil when no search is active.
	Search ImageSet
	// AlbumLinked pins navigation to the album even inside a search.
	AlbumLinked bool
	// Image is the key of the image being viewed.
	Image string
}

// ItemSource paginates through the images of an album, or through the active
// search results when the image was reached from a search.
type ItemSource struct {
	album   AlbumImages
	search  ImageSet
	total   int
	current int
}

// NewItemSource locates the current image and fixes which set drives the
// navigation for the rest of the render.
func NewItemSource(ctx ItemContext) (*ItemSource, error) {
	s := &ItemSource{album: ctx.Album}
	if ctx.Search != nil && !ctx.AlbumLinked {
		s.search = ctx.Search
	}

	set := s.set()
	s.total = set.Len()
	idx, ok, err := set.IndexOf(ctx.Image)
	if err != nil {
		return nil, fmt.Errorf("locate image %q: %w", ctx.Image, err)
	}
	if ok {
		s.current = idx
	}
	return s, nil
}

func (s *ItemSource) set() ImageSet {
	if s.search != nil {
		return s.search
	}
	return s.album
}

func (s *ItemSource) Total() int {
	return s.total
}

func (s *ItemSource) Current() (int, bool) {
	return s.current, s.current > 0
}

func (s *ItemSource) Resolve(index int) (Link, error) {
	if err := checkIndex(index, s.total); err != nil {
		return Link{}, err
	}
	if s.search != nil {
		return s.search.At(index)
	}
	if s.album.Dynamic() {
		switch index {
		case 1:
			return s.album.First()
		case s.total:
			return s.album.Last()
		}
	}
	return s.album.At(index)
}

func (s *ItemSource) HasPrevious() bool {
	return s.current > 1
}

func (s *ItemSource) HasNext() bool {
	return s.current > 0 && s.current < s.total
}

func (s *ItemSource) Previous() (Link, error) {
	if !s.HasPrevious() {
		return Link{}, fmt.Errorf("no previous image")
	}
	return s.Resolve(s.current - 1)
}

func (s *ItemSource) Next() (Link, error) {
	if !s.HasNext() {
		return Link{}, fmt.Errorf("no next image")
	}
	return s.Resolve(s.current + 1)
}
