// Package pagelist builds numbered prev/next navigation for single items
// (images, albums, articles and pages) within their enclosing collection.
package pagelist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a position outside 1..Total() is resolved.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrOrphanPage is returned when a page references a parent that does not exist.
	ErrOrphanPage = errors.New("page parent not found")
)

// Link is a resolved navigation target.
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Source supplies a collection to the renderer. Positions are 1-indexed.
type Source interface {
	Total() int
	// Current returns the position of the item being viewed. ok is false when
	// the item could not be found in its collection.
	Current() (index int, ok bool)
	Resolve(index int) (Link, error)
	HasPrevious() bool
	HasNext() bool
	Previous() (Link, error)
	Next() (Link, error)
}

// Node is one member of a list-backed collection.
type Node struct {
	// Key identifies the member: an album name or an article/page slug.
	Key string
	// Parent is the Key of the enclosing member, empty at the top level.
	Parent string
	Link   Link
}

func checkIndex(index, total int) error {
	if index < 1 || index > total {
		return fmt.Errorf("%w: %d not in 1..%d", ErrIndexOutOfRange, index, total)
	}
	return nil
}

// listSource is a Source over a slice that is already in display order.
type listSource struct {
	nodes   []Node
	current int
}

func newListSource(nodes []Node, key string) listSource {
	return listSource{nodes: nodes, current: indexOf(nodes, key)}
}

// indexOf returns the 1-based position of key in nodes, or 0 when absent.
func indexOf(nodes []Node, key string) int {
	for i, n := range nodes {
		if n.Key == key {
			return i + 1
		}
	}
	return 0
}

func (s *listSource) Total() int {
	return len(s.nodes)
}

func (s *listSource) Current() (int, bool) {
	return s.current, s.current > 0
}

func (s *listSource) Resolve(index int) (Link, error) {
	if err := checkIndex(index, len(s.nodes)); err != nil {
		return Link{}, err
	}
	return s.nodes[index-1].Link, nil
}

func (s *listSource) HasPrevious() bool {
	return s.current > 1
}

func (s *listSource) HasNext() bool {
	return s.current > 0 && s.current < len(s.nodes)
}

func (s *listSource) Previous() (Link, error) {
	return s.adjacent(s.current - 1)
}

func (s *listSource) Next() (Link, error) {
	return s.adjacent(s.current + 1)
}

// adjacent reads the neighbour straight from the list, bypassing any
// per-variant override of Resolve.
func (s *listSource) adjacent(index int) (Link, error) {
	if s.current == 0 {
		return Link{}, fmt.Errorf("no adjacent entry: current item not in collection")
	}
	if err := checkIndex(index, len(s.nodes)); err != nil {
		return Link{}, err
	}
	return s.nodes[index-1].Link, nil
}
