package models

import (
	"html/template"
	"time"

	"gorm.io/gorm"
)

// Article statuses. Navigation treats every status alike.
const (
	ArticleDraft     = "draft"
	ArticlePublished = "published"
	ArticleScheduled = "scheduled"
)

type Article struct {
	gorm.Model
	Title       string    `gorm:"not null" json:"title" form:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content     string    `gorm:"type:text;not null" json:"content" form:"content"`
	Status      string    `gorm:"default:draft" json:"status" form:"status"`
	PublishedAt time.Time `json:"published_at"`
}

// RenderedArticle is a view model for displaying an article with rendered HTML content.
type RenderedArticle struct {
	Title       string
	Slug        string
	Content     template.HTML // Use template.HTML to prevent escaping
	Status      string
	PublishedAt time.Time
}
