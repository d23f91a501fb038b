package handlers

import (
	"log"
	"net/http"
	"strings"

	"itemnav/internal/constants"
	"itemnav/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const searchResultLimit = 100

type SearchHandler struct {
	contentService *services.ContentService
}

func NewSearchHandler(contentService *services.ContentService) *SearchHandler {
	return &SearchHandler{contentService: contentService}
}

// Search lists the images matching q and remembers q for the visitor, so
// images opened from the results page through the matches.
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		query = activeSearch(c)
	}
	if query == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeySearch, query)
	if err := session.Save(); err != nil {
		log.Printf("failed to save search session: %v", err)
	}

	images, total, err := h.contentService.SearchImages(c.Request.Context(), query, searchResultLimit)
	if err != nil {
		log.Printf("search %q failed: %v", query, err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{"error": "Search failed"})
		return
	}

	render(c, http.StatusOK, "search.html", gin.H{
		"query":  query,
		"images": images,
		"total":  total,
	})
}

// ClearSearch forgets the visitor's search so images page through their albums again.
func (h *SearchHandler) ClearSearch(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(constants.SessionKeySearch)
	if err := session.Save(); err != nil {
		log.Printf("failed to save search session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}
