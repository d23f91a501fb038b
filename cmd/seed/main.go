package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"itemnav/internal/config"
	"itemnav/internal/models"
	"itemnav/internal/repository"
	"itemnav/internal/services"
	"itemnav/internal/utils"
)

const articleBody = `
This article was generated by the seed command so the article navigation has
something to page through.

## Sample section

- one
- two
- three

> Navigation collapses once there are more articles than fit in the window.
`

func main() {
	totalArticles := flag.Int("articles", 40, "number of articles to create")
	imagesPerAlbum := flag.Int("images", 25, "number of images per album")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	log.Println("connecting to database...")
	db, err := utils.InitDatabase(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if err := services.NewSettingService(repository.NewSettingRepository(db)).EnsureDefaults(); err != nil {
		log.Fatalf("failed to seed settings: %v", err)
	}

	ctx := context.Background()
	content := services.NewContentService(db)
	err = content.Transaction(func(tx *services.ContentService) error {
		if err := seedArticles(ctx, tx, *totalArticles); err != nil {
			return err
		}
		if err := seedPages(ctx, tx); err != nil {
			return err
		}
		return seedGallery(ctx, tx, *imagesPerAlbum)
	})
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("seed complete.")
}

func seedArticles(ctx context.Context, content *services.ContentService, total int) error {
	published := time.Now().Add(-time.Duration(total) * time.Hour)
	for i := 1; i <= total; i++ {
		title := fmt.Sprintf("Sample article %d", i)
		body := fmt.Sprintf("# %s\n%s", title, articleBody)
		if _, err := content.CreateArticle(ctx, title, body, models.ArticlePublished, published.Add(time.Duration(i)*time.Hour)); err != nil {
			return err
		}
		if i%10 == 0 {
			log.Printf("created %d/%d articles...", i, total)
		}
	}
	return nil
}

func seedPages(ctx context.Context, content *services.ContentService) error {
	about, err := content.CreatePage(ctx, "About", "About this site.", nil, 1)
	if err != nil {
		return err
	}
	for i, title := range []string{"Team", "History", "Press", "Jobs"} {
		if _, err := content.CreatePage(ctx, title, title+" of the site.", about, i+1); err != nil {
			return err
		}
	}
	for i, title := range []string{"Contact", "Imprint"} {
		if _, err := content.CreatePage(ctx, title, title+".", nil, i+2); err != nil {
			return err
		}
	}
	log.Println("created pages.")
	return nil
}

func seedGallery(ctx context.Context, content *services.ContentService, perAlbum int) error {
	travel, err := content.CreateAlbum(ctx, "Travel", nil, "", 1)
	if err != nil {
		return err
	}
	for i, title := range []string{"Italy", "Spain", "France"} {
		album, err := content.CreateAlbum(ctx, title, travel, "", i+1)
		if err != nil {
			return err
		}
		for n := 1; n <= perAlbum; n++ {
			filename := fmt.Sprintf("%s-%03d.jpg", album.Name, n)
			imageTitle := fmt.Sprintf("%s %d", title, n)
			if n%5 == 0 {
				imageTitle += " sunset"
			}
			if _, err := content.AddImage(ctx, album, filename, imageTitle, n); err != nil {
				return err
			}
		}
	}
	if _, err := content.CreateAlbum(ctx, "Sunsets", nil, "sunset", 2); err != nil {
		return err
	}
	log.Println("created gallery.")
	return nil
}
