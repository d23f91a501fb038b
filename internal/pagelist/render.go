package pagelist

import (
	"fmt"
	"strconv"
)

// Ellipsis is the label of a collapse marker hiding more than one page.
const Ellipsis = "..."

// Kind tells the markup layer what an Entry stands for.
type Kind string

const (
	KindPrev     Kind = "prev"
	KindNext     Kind = "next"
	KindFirst    Kind = "first"
	KindLast     Kind = "last"
	KindNumber   Kind = "number"
	KindEllipsis Kind = "ellipsis"
)

// Request carries the display options of one page list.
type Request struct {
	PrevLabel     string `json:"prev_label"`
	NextLabel     string `json:"next_label"`
	ShowPrevNext  bool   `json:"show_prev_next"`
	Class         string `json:"class"`
	ShowFirstLast bool   `json:"show_first_last"`
	// Length is the number of entries to aim for, 0 for all of them.
	Length int `json:"length"`
}

// DefaultRequest returns the options used when a theme does not override them.
func DefaultRequest() Request {
	return Request{
		PrevLabel:     "prev",
		NextLabel:     "next",
		ShowPrevNext:  true,
		Class:         "pagelist",
		ShowFirstLast: true,
		Length:        7,
	}
}

// Entry is one element of a rendered page list.
type Entry struct {
	Kind  Kind   `json:"kind"`
	Label string `json:"label"`
	// URL is empty for the current entry and for disabled prev/next entries.
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
	// Page is the position the entry refers to, 0 for prev/next.
	Page     int  `json:"page,omitempty"`
	Current  bool `json:"current,omitempty"`
	Disabled bool `json:"disabled,omitempty"`
}

// Render produces the page list for src. Collections of fewer than two items
// yield no entries. When the current item is not part of src the list is laid
// out from the first page and no entry is marked current.
func Render(req Request, src Source) ([]Entry, error) {
	total := src.Total()
	if total <= 1 {
		return nil, nil
	}

	current, found := src.Current()
	pos := current
	if !found {
		current, pos = 0, 1
	}
	w := ComputeWindow(total, pos, req.Length, req.ShowFirstLast)

	b := builder{src: src, current: current}

	if req.ShowPrevNext {
		b.adjacent(KindPrev, req.PrevLabel, src.HasPrevious(), src.Previous)
	}

	if req.ShowFirstLast {
		b.page(KindFirst, 1)
		if w.Start > 2 {
			b.collapse(w.LeftAnchor, w.Start-1 > 2)
		}
	}

	for i := w.Start; i <= w.End; i++ {
		b.page(KindNumber, i)
	}

	after := w.End + 1
	if after < total {
		b.collapse(w.RightAnchor, total-after > 1)
	}
	if req.ShowFirstLast && after <= total {
		b.page(KindLast, total)
	}

	if req.ShowPrevNext {
		b.adjacent(KindNext, req.NextLabel, src.HasNext(), src.Next)
	}

	if b.err != nil {
		return nil, b.err
	}
	return b.entries, nil
}

// builder accumulates entries and keeps the first resolution error.
type builder struct {
	src     Source
	current int
	entries []Entry
	err     error
}

func (b *builder) page(kind Kind, index int) {
	e := Entry{Kind: kind, Label: strconv.Itoa(index), Page: index}
	if index == b.current {
		e.Current = true
		b.entries = append(b.entries, e)
		return
	}
	b.link(&e, index)
	b.entries = append(b.entries, e)
}

// collapse adds a marker for the pages hidden between the window and a list end.
// It reads as an ellipsis only when it stands for more than one page.
func (b *builder) collapse(anchor int, hidesMany bool) {
	e := Entry{Kind: KindNumber, Label: strconv.Itoa(anchor), Page: anchor}
	if hidesMany {
		e.Kind, e.Label = KindEllipsis, Ellipsis
	}
	b.link(&e, anchor)
	b.entries = append(b.entries, e)
}

func (b *builder) adjacent(kind Kind, label string, ok bool, target func() (Link, error)) {
	e := Entry{Kind: kind, Label: label, Disabled: !ok}
	if ok && b.err == nil {
		l, err := target()
		if err != nil {
			b.err = fmt.Errorf("resolve %s link: %w", kind, err)
			return
		}
		e.URL, e.Title = l.URL, l.Title
	}
	b.entries = append(b.entries, e)
}

func (b *builder) link(e *Entry, index int) {
	if b.err != nil {
		return
	}
	l, err := b.src.Resolve(index)
	if err != nil {
		b.err = fmt.Errorf("resolve page %d: %w", index, err)
		return
	}
	e.URL, e.Title = l.URL, l.Title
}
