package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"itemnav/internal/pagelist"
	"itemnav/internal/repository"
	"itemnav/internal/services"
	"itemnav/internal/utils"

	"github.com/gin-gonic/gin"
)

// APIHandler serves page lists outside of a full page view: as JSON, or as a
// minified HTML fragment for clients that swap navigation in place.
type APIHandler struct {
	contentService  *services.ContentService
	pagelistService *services.PagelistService
	settingService  *services.SettingService
	fragment        *template.Template
}

// NewAPIHandler takes the parsed _pagelist.html partial, which must define "pagelist".
func NewAPIHandler(contentService *services.ContentService, pagelistService *services.PagelistService,
	settingService *services.SettingService, fragment *template.Template) *APIHandler {
	return &APIHandler{
		contentService:  contentService,
		pagelistService: pagelistService,
		settingService:  settingService,
		fragment:        fragment,
	}
}

// Pagelist handles GET /api/v1/pagelist/:variant.
func (h *APIHandler) Pagelist(c *gin.Context) {
	view, status, err := h.build(c)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"variant": c.Param("variant"),
		"class":   view.Class,
		"entries": view.Entries,
	})
}

// Fragment handles GET /fragment/pagelist/:variant.
func (h *APIHandler) Fragment(c *gin.Context) {
	view, status, err := h.build(c)
	if err != nil {
		c.String(status, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.fragment.ExecuteTemplate(&buf, "pagelist", view); err != nil {
		log.Printf("render page list fragment: %v", err)
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	out, err := utils.MinifyHTML(buf.Bytes())
	if err != nil {
		log.Printf("minify page list fragment: %v", err)
		out = buf.Bytes()
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", out)
}

func (h *APIHandler) build(c *gin.Context) (PagelistView, int, error) {
	active, err := h.active(c)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return PagelistView{}, http.StatusNotFound, err
		}
		return PagelistView{}, http.StatusBadRequest, err
	}

	req := pagelistRequest(c, h.settingService)
	entries, err := h.pagelistService.Render(c.Request.Context(), c.Param("variant"), req, active)
	if err != nil {
		if errors.Is(err, services.ErrNoActive) {
			return PagelistView{}, http.StatusBadRequest, err
		}
		log.Printf("page list %s: %v", c.Param("variant"), err)
		return PagelistView{}, http.StatusInternalServerError, err
	}
	if entries == nil {
		entries = []pagelist.Entry{}
	}
	return PagelistView{Class: req.Class, Entries: entries}, http.StatusOK, nil
}

// active loads the objects named by the article, page, album and image
// query parameters. The search comes from the visitor's session.
func (h *APIHandler) active(c *gin.Context) (services.Active, error) {
	ctx := c.Request.Context()
	active := services.Active{
		Search:      activeSearch(c),
		AlbumLinked: c.Query("al") == "1",
	}

	var err error
	if slug := c.Query("article"); slug != "" {
		if active.Article, _, err = h.contentService.GetArticle(ctx, slug); err != nil {
			return active, err
		}
	}
	if slug := c.Query("page"); slug != "" {
		if active.Page, err = h.contentService.GetPage(ctx, slug); err != nil {
			return active, err
		}
	}
	if name := c.Query("album"); name != "" {
		if active.Album, err = h.contentService.GetAlbum(ctx, name); err != nil {
			return active, err
		}
	}
	if raw := c.Query("image"); raw != "" {
		if active.Album == nil {
			return active, errors.New("image requires album")
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return active, errors.New("invalid image id")
		}
		if active.Image, err = h.contentService.GetImage(ctx, active.Album, uint(id)); err != nil {
			return active, err
		}
	}
	return active, nil
}
