package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"itemnav/internal/models"
	"itemnav/internal/repository"
	"itemnav/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateArticleUniqueSlug(t *testing.T) {
	s := newTestSite(t)
	ctx := context.Background()

	first, err := s.content.CreateArticle(ctx, "Hello World", "", "", time.Now())
	require.NoError(t, err)
	second, err := s.content.CreateArticle(ctx, "Hello World", "", "", time.Now())
	require.NoError(t, err)
	untitled, err := s.content.CreateArticle(ctx, "", "", "", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "hello-world", first.Slug)
	assert.Equal(t, "hello-world-1", second.Slug)
	assert.Equal(t, models.ArticleDraft, first.Status)
	assert.Equal(t, "untitled", untitled.Slug)
}

func TestGetArticleRendersMarkdown(t *testing.T) {
	s := newTestSite(t)
	ctx := context.Background()

	created, err := s.content.CreateArticle(ctx, "Markdown", "# Heading\n\n*emphasis*", models.ArticlePublished, time.Now())
	require.NoError(t, err)

	article, rendered, err := s.content.GetArticle(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, article.ID)
	assert.Contains(t, string(rendered.Content), ">Heading</h1>")
	assert.Contains(t, string(rendered.Content), "<em>emphasis</em>")

	_, _, err = s.content.GetArticle(ctx, "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestAddImageToDynamicAlbum(t *testing.T) {
	s := newTestSite(t)
	g := newGallery(t, s)

	_, err := s.content.AddImage(context.Background(), g.sunsets, "x.jpg", "x", 1)
	assert.Error(t, err)
}

func TestGetImageChecksAlbum(t *testing.T) {
	s := newTestSite(t)
	g := newGallery(t, s)
	ctx := context.Background()

	img, err := s.content.GetImage(ctx, g.italy, g.italyImages[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Italy 1", img.Title)

	_, err = s.content.GetImage(ctx, g.spain, g.italyImages[0].ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = s.content.GetImage(ctx, g.sunsets, g.spainImages[1].ID)
	assert.NoError(t, err, "dynamic albums show images they do not own")
}

func TestAlbumImages(t *testing.T) {
	s := newTestSite(t)
	g := newGallery(t, s)
	ctx := context.Background()

	images, err := s.content.AlbumImages(ctx, g.italy, 4)
	require.NoError(t, err)
	require.Len(t, images, 4)
	assert.Equal(t, g.italyImages[0].ID, images[0].ID)

	images, err = s.content.AlbumImages(ctx, g.sunsets, 10)
	require.NoError(t, err)
	assert.Len(t, images, 3)
}

func TestSearchImages(t *testing.T) {
	s := newTestSite(t)
	g := newGallery(t, s)

	links, total, err := s.content.SearchImages(context.Background(), "sunset", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, links, 2)
	assert.Equal(t, utils.ImageURL("italy", g.italyImages[4].ID), links[0].URL)
	assert.Equal(t, "Italy 5 sunset", links[0].Title)

	links, total, err = s.content.SearchImages(context.Background(), "nothing like this", 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, links)
}

func TestSearchImagesMatchesWildcardsLiterally(t *testing.T) {
	s := newTestSite(t)
	g := newGallery(t, s)
	ctx := context.Background()

	for _, q := range []string{"_", "%", `\`} {
		_, total, err := s.content.SearchImages(ctx, q, 10)
		require.NoError(t, err)
		assert.Zero(t, total, "query %q", q)
	}

	_, err := s.content.AddImage(ctx, g.spain, "sale.jpg", "50% off_season", 4)
	require.NoError(t, err)
	for _, q := range []string{"_", "%", "0% o"} {
		links, total, err := s.content.SearchImages(ctx, q, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, total, "query %q", q)
		require.Len(t, links, 1)
		assert.Equal(t, "50% off_season", links[0].Title)
	}
}

func TestTransactionRollsBack(t *testing.T) {
	s := newTestSite(t)
	ctx := context.Background()

	err := s.content.Transaction(func(tx *ContentService) error {
		if _, err := tx.CreatePage(ctx, "Temporary", "", nil, 1); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = s.content.GetPage(ctx, "temporary")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
