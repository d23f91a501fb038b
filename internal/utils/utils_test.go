package utils

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	assert.Equal(t, "/article/hello-world", ArticleURL("hello-world"))
	assert.Equal(t, "/page/a%20b", PageURL("a b"))
	assert.Equal(t, "/album/travel", AlbumURL("travel"))
	assert.Equal(t, "/album/travel/42", ImageURL("travel", 42))
	assert.Equal(t, "/album/travel/42?al=1", AlbumLinkedImageURL("travel", 42))
}

func TestExcerpt(t *testing.T) {
	md := "# Title\n\nSome **bold** text with a [link](http://example.com).\n\n> quoted"
	assert.Equal(t, "Title Some bold text with a link. quoted", Excerpt(md, 100))
	assert.Equal(t, "Title...", Excerpt(md, 5))
}

func TestMinifyHTML(t *testing.T) {
	in := []byte("<ul class=\"pagelist\">\n    <li class=\"number\">\n        <a href=\"/a\">1</a>\n    </li>\n</ul>\n")
	out, err := MinifyHTML(in)
	require.NoError(t, err)
	assert.Less(t, len(out), len(in))
	assert.Contains(t, string(out), `class="pagelist"`)
	assert.Contains(t, string(out), "</li>")
	assert.False(t, strings.Contains(string(out), "\n    "))
}

func TestInitDatabase(t *testing.T) {
	db, err := InitDatabase(filepath.Join(t.TempDir(), "nav.db"))
	require.NoError(t, err)
	for _, table := range []string{"articles", "pages", "albums", "images", "settings"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
