package pagelist

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articles returns n articles keyed a1..an linking to /article/a1.. .
func articles(n int) []Node {
	nodes := make([]Node, n)
	for i := range nodes {
		key := fmt.Sprintf("a%d", i+1)
		nodes[i] = Node{Key: key, Link: Link{URL: "/article/" + key, Title: fmt.Sprintf("Article %d", i+1)}}
	}
	return nodes
}

func articleAt(total, current int) *ArticleSource {
	return NewArticleSource(articles(total), fmt.Sprintf("a%d", current), nil)
}

// labels flattens entries to their labels, marking the current one with *.
func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
		if e.Current {
			out[i] += "*"
		}
	}
	return out
}

func TestRenderMiddleOfLongList(t *testing.T) {
	entries, err := Render(DefaultRequest(), articleAt(20, 10))
	require.NoError(t, err)

	assert.Equal(t, []string{"prev", "1", "...", "9", "10*", "11", "...", "20", "next"}, labels(entries))

	assert.Equal(t, KindFirst, entries[1].Kind)
	assert.Equal(t, "/article/a1", entries[1].URL)
	assert.Equal(t, KindEllipsis, entries[2].Kind)
	assert.Equal(t, 5, entries[2].Page)
	assert.Equal(t, "/article/a5", entries[2].URL)
	assert.Empty(t, entries[4].URL)
	assert.Equal(t, KindEllipsis, entries[6].Kind)
	assert.Equal(t, "/article/a15", entries[6].URL)
	assert.Equal(t, KindLast, entries[7].Kind)
	assert.Equal(t, "/article/a20", entries[7].URL)
	assert.Equal(t, "/article/a9", entries[0].URL)
	assert.Equal(t, "/article/a11", entries[8].URL)
}

func TestRenderShortListDoesNotCollapse(t *testing.T) {
	entries, err := Render(DefaultRequest(), articleAt(3, 2))
	require.NoError(t, err)

	assert.Equal(t, []string{"prev", "1", "2*", "3", "next"}, labels(entries))
	assert.False(t, entries[0].Disabled)
	assert.False(t, entries[4].Disabled)
	for _, e := range entries {
		assert.NotEqual(t, KindEllipsis, e.Kind)
	}
}

func TestRenderSingleItem(t *testing.T) {
	for _, req := range []Request{DefaultRequest(), {}, {ShowFirstLast: true, Length: 0}} {
		entries, err := Render(req, articleAt(1, 1))
		require.NoError(t, err)
		assert.Empty(t, entries)
	}

	entries, err := Render(DefaultRequest(), NewArticleSource(nil, "a1", nil))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenderFirstPage(t *testing.T) {
	entries, err := Render(DefaultRequest(), articleAt(20, 1))
	require.NoError(t, err)

	assert.Equal(t, []string{"prev", "1*", "2", "3", "4", "5", "...", "20", "next"}, labels(entries))
	assert.True(t, entries[0].Disabled)
	assert.Empty(t, entries[0].URL)
	assert.Equal(t, 12, entries[6].Page)
	assert.Equal(t, "/article/a20", entries[7].URL)
	assert.False(t, entries[8].Disabled)
}

func TestRenderLastPage(t *testing.T) {
	entries, err := Render(DefaultRequest(), articleAt(20, 20))
	require.NoError(t, err)

	assert.Equal(t, []string{"prev", "1", "...", "16", "17", "18", "19", "20*", "next"}, labels(entries))
	assert.False(t, entries[0].Disabled)
	assert.True(t, entries[8].Disabled)
}

func TestRenderLiteralCollapseMarkers(t *testing.T) {
	// A single hidden page is shown by number rather than behind an ellipsis.
	entries, err := Render(DefaultRequest(), articleAt(7, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"prev", "1*", "2", "3", "4", "5", "6", "7", "next"}, labels(entries))
	assert.Equal(t, KindNumber, entries[6].Kind)
	assert.Equal(t, "/article/a6", entries[6].URL)

	entries, err = Render(DefaultRequest(), articleAt(7, 7))
	require.NoError(t, err)
	assert.Equal(t, []string{"prev", "1", "2", "3", "4", "5", "6", "7*", "next"}, labels(entries))
	assert.Equal(t, KindNumber, entries[2].Kind)
	assert.Equal(t, "/article/a2", entries[2].URL)
}

func TestRenderWithoutOptionalLinks(t *testing.T) {
	req := Request{Length: 7}
	entries, err := Render(req, articleAt(20, 10))
	require.NoError(t, err)

	assert.Equal(t, []string{"7", "8", "9", "10*", "11", "12", "..."}, labels(entries))
	assert.Equal(t, "/article/a16", entries[6].URL)
}

func TestRenderFullRange(t *testing.T) {
	req := DefaultRequest()
	req.Length = 0
	entries, err := Render(req, articleAt(10, 5))
	require.NoError(t, err)

	assert.Equal(t, []string{"prev", "1", "2", "3", "4", "5*", "6", "7", "8", "9", "10", "next"}, labels(entries))
}

func TestRenderCustomLabels(t *testing.T) {
	req := DefaultRequest()
	req.PrevLabel, req.NextLabel = "«", "»"
	entries, err := Render(req, articleAt(3, 1))
	require.NoError(t, err)

	assert.Equal(t, "«", entries[0].Label)
	assert.Equal(t, KindPrev, entries[0].Kind)
	assert.Equal(t, "»", entries[len(entries)-1].Label)
	assert.Equal(t, KindNext, entries[len(entries)-1].Kind)
}

func TestRenderUnresolvedCurrent(t *testing.T) {
	src := NewArticleSource(articles(20), "deleted", nil)
	_, ok := src.Current()
	require.False(t, ok)

	entries, err := Render(DefaultRequest(), src)
	require.NoError(t, err)

	assert.Equal(t, []string{"prev", "1", "2", "3", "4", "5", "...", "20", "next"}, labels(entries))
	assert.True(t, entries[0].Disabled)
	assert.True(t, entries[len(entries)-1].Disabled)
	for _, e := range entries {
		assert.False(t, e.Current)
	}
	assert.Equal(t, "/article/a1", entries[1].URL)
}

func TestRenderIsIdempotent(t *testing.T) {
	src := articleAt(33, 17)
	first, err := Render(DefaultRequest(), src)
	require.NoError(t, err)
	second, err := Render(DefaultRequest(), src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderBoundaryPrevNext(t *testing.T) {
	for total := 2; total <= 25; total++ {
		entries, err := Render(DefaultRequest(), articleAt(total, 1))
		require.NoError(t, err)
		assert.True(t, entries[0].Disabled, "total=%d", total)
		assert.False(t, entries[len(entries)-1].Disabled, "total=%d", total)

		entries, err = Render(DefaultRequest(), articleAt(total, total))
		require.NoError(t, err)
		assert.False(t, entries[0].Disabled, "total=%d", total)
		assert.True(t, entries[len(entries)-1].Disabled, "total=%d", total)
	}
}

func TestRenderPagesStrictlyIncrease(t *testing.T) {
	for _, firstLast := range []bool{true, false} {
		for _, length := range []int{0, 5, 7, 10} {
			for total := 2; total <= 30; total++ {
				for current := 1; current <= total; current++ {
					req := Request{ShowFirstLast: firstLast, Length: length}
					entries, err := Render(req, articleAt(total, current))
					require.NoError(t, err)

					last, currents := 0, 0
					for _, e := range entries {
						if e.Kind == KindPrev || e.Kind == KindNext {
							continue
						}
						if e.Page <= last {
							t.Fatalf("firstLast=%v length=%d total=%d current=%d: %v",
								firstLast, length, total, current, labels(entries))
						}
						last = e.Page
						if e.Current {
							currents++
							assert.Equal(t, current, e.Page)
						}
					}
					assert.Equal(t, 1, currents)
				}
			}
		}
	}
}

func TestRenderEllipsisCountNeverShrinks(t *testing.T) {
	count := func(entries []Entry) int {
		n := 0
		for _, e := range entries {
			if e.Kind == KindEllipsis {
				n++
			}
		}
		return n
	}

	for _, firstLast := range []bool{true, false} {
		for _, length := range []int{0, 5, 7, 9} {
			for current := 1; current <= 12; current++ {
				prev := 0
				for total := max(current, 2); total <= 60; total++ {
					req := Request{ShowFirstLast: firstLast, Length: length}
					entries, err := Render(req, articleAt(total, current))
					require.NoError(t, err)
					n := count(entries)
					if n < prev {
						t.Fatalf("firstLast=%v length=%d current=%d: ellipses dropped from %d to %d at total=%d",
							firstLast, length, current, prev, n, total)
					}
					prev = n
				}
			}
		}
	}
}

// overcounted claims more entries than it can resolve.
type overcounted struct {
	*ArticleSource
	total int
}

func (s overcounted) Total() int { return s.total }

func TestRenderSurfacesResolveErrors(t *testing.T) {
	src := overcounted{ArticleSource: articleAt(5, 2), total: 20}
	entries, err := Render(DefaultRequest(), src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Nil(t, entries)
}
