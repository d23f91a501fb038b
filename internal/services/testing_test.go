package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"itemnav/internal/models"
	"itemnav/internal/repository"
	"itemnav/internal/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := utils.InitDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// testSite wires the services over a fresh database.
type testSite struct {
	db       *gorm.DB
	content  *ContentService
	settings *SettingService
	pagelist *PagelistService
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()
	db := newTestDB(t)
	settings := NewSettingService(repository.NewSettingRepository(db))
	require.NoError(t, settings.EnsureDefaults())
	content := NewContentService(db)
	articles, pages, albums, images := content.Repositories()
	return &testSite{
		db:       db,
		content:  content,
		settings: settings,
		pagelist: NewPagelistService(articles, pages, albums, images, settings),
	}
}

// gallery is the album tree used by the item and group tests:
//
//	travel
//	  italy   10 images, 5 and 10 mention sunset
//	  spain   3 images, 2 mentions sunset
//	pets
//	sunsets   dynamic, query "sunset"
type gallery struct {
	travel, italy, spain, pets, sunsets *models.Album
	italyImages, spainImages            []*models.Image
}

func newGallery(t *testing.T, s *testSite) *gallery {
	t.Helper()
	ctx := context.Background()
	g := &gallery{}
	var err error

	g.travel, err = s.content.CreateAlbum(ctx, "Travel", nil, "", 1)
	require.NoError(t, err)
	g.italy, err = s.content.CreateAlbum(ctx, "Italy", g.travel, "", 1)
	require.NoError(t, err)
	g.spain, err = s.content.CreateAlbum(ctx, "Spain", g.travel, "", 2)
	require.NoError(t, err)
	g.pets, err = s.content.CreateAlbum(ctx, "Pets", nil, "", 2)
	require.NoError(t, err)
	g.sunsets, err = s.content.CreateAlbum(ctx, "Sunsets", nil, "sunset", 3)
	require.NoError(t, err)

	for n := 1; n <= 10; n++ {
		title := fmt.Sprintf("Italy %d", n)
		if n%5 == 0 {
			title += " sunset"
		}
		img, err := s.content.AddImage(ctx, g.italy, fmt.Sprintf("italy-%02d.jpg", n), title, n)
		require.NoError(t, err)
		g.italyImages = append(g.italyImages, img)
	}
	for n := 1; n <= 3; n++ {
		title := fmt.Sprintf("Spain %d", n)
		if n == 2 {
			title += " sunset"
		}
		img, err := s.content.AddImage(ctx, g.spain, fmt.Sprintf("spain-%02d.jpg", n), title, n)
		require.NoError(t, err)
		g.spainImages = append(g.spainImages, img)
	}
	return g
}

// createArticles adds n articles published an hour apart; the last one is newest.
func createArticles(t *testing.T, s *testSite, n int) []*models.Article {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var out []*models.Article
	for i := 1; i <= n; i++ {
		a, err := s.content.CreateArticle(context.Background(), fmt.Sprintf("Article %d", i), "body",
			models.ArticlePublished, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		out = append(out, a)
	}
	return out
}
