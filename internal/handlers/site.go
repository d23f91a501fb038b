package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"itemnav/internal/pagelist"
	"itemnav/internal/repository"
	"itemnav/internal/services"
	"itemnav/internal/utils"

	"github.com/gin-gonic/gin"
)

const albumPreviewSize = 50

type SiteHandler struct {
	contentService  *services.ContentService
	pagelistService *services.PagelistService
	settingService  *services.SettingService
}

func NewSiteHandler(contentService *services.ContentService, pagelistService *services.PagelistService,
	settingService *services.SettingService) *SiteHandler {
	return &SiteHandler{
		contentService:  contentService,
		pagelistService: pagelistService,
		settingService:  settingService,
	}
}

type articleSummary struct {
	Title   string
	URL     string
	Status  string
	Excerpt string
}

func (h *SiteHandler) ArticleIndex(c *gin.Context) {
	articles, err := h.contentService.ListArticles(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	summaries := make([]articleSummary, len(articles))
	for i, a := range articles {
		summaries[i] = articleSummary{
			Title:   a.Title,
			URL:     utils.ArticleURL(a.Slug),
			Status:  a.Status,
			Excerpt: utils.Excerpt(a.Content, 150),
		}
	}
	render(c, http.StatusOK, "articles.html", gin.H{"articles": summaries})
}

func (h *SiteHandler) ShowArticle(c *gin.Context) {
	ctx := c.Request.Context()
	article, rendered, err := h.contentService.GetArticle(ctx, c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}

	nav, ok := h.pagelist(c, pagelist.VariantArticle, services.Active{Article: article})
	if !ok {
		return
	}
	render(c, http.StatusOK, "article.html", gin.H{
		"article":  rendered,
		"Pagelist": nav,
	})
}

func (h *SiteHandler) ShowPage(c *gin.Context) {
	ctx := c.Request.Context()
	page, err := h.contentService.GetPage(ctx, c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	body, err := utils.RenderMarkdown(page.Content)
	if err != nil {
		h.fail(c, err)
		return
	}

	nav, ok := h.pagelist(c, pagelist.VariantPage, services.Active{Page: page})
	if !ok {
		return
	}
	render(c, http.StatusOK, "page.html", gin.H{
		"page":     page,
		"body":     body,
		"Pagelist": nav,
	})
}

func (h *SiteHandler) ShowAlbum(c *gin.Context) {
	ctx := c.Request.Context()
	album, err := h.contentService.GetAlbum(ctx, c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	images, err := h.contentService.AlbumImages(ctx, album, albumPreviewSize)
	if err != nil {
		h.fail(c, err)
		return
	}

	thumbs := make([]pagelist.Link, len(images))
	for i := range images {
		thumbs[i] = pagelist.Link{URL: utils.AlbumLinkedImageURL(album.Name, images[i].ID), Title: images[i].Title}
	}

	nav, ok := h.pagelist(c, pagelist.VariantGroup, services.Active{Album: album})
	if !ok {
		return
	}
	render(c, http.StatusOK, "album.html", gin.H{
		"album":    album,
		"images":   thumbs,
		"Pagelist": nav,
	})
}

func (h *SiteHandler) ShowImage(c *gin.Context) {
	ctx := c.Request.Context()
	album, err := h.contentService.GetAlbum(ctx, c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	image, err := h.contentService.GetImage(ctx, album, uint(id))
	if err != nil {
		h.fail(c, err)
		return
	}

	active := services.Active{
		Album:       album,
		Image:       image,
		Search:      activeSearch(c),
		AlbumLinked: c.Query("al") == "1",
	}
	nav, ok := h.pagelist(c, pagelist.VariantItem, active)
	if !ok {
		return
	}
	render(c, http.StatusOK, "image.html", gin.H{
		"album":    album,
		"image":    image,
		"Pagelist": nav,
	})
}

func (h *SiteHandler) NotFound(c *gin.Context) {
	notFound(c)
}

// pagelist renders the navigation for the current view. On failure the
// response has already been written and ok is false.
func (h *SiteHandler) pagelist(c *gin.Context, v pagelist.Variant, active services.Active) (PagelistView, bool) {
	req := pagelistRequest(c, h.settingService)
	entries, err := h.pagelistService.Render(c.Request.Context(), string(v), req, active)
	if err != nil {
		h.fail(c, err)
		return PagelistView{}, false
	}
	return PagelistView{Class: req.Class, Entries: entries}, true
}

func (h *SiteHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c)
		return
	}
	log.Printf("request %s failed: %v", c.Request.URL.Path, err)
	render(c, http.StatusInternalServerError, "error.html", gin.H{"error": "Something went wrong"})
}
