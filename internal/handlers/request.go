package handlers

import (
	"strconv"

	"itemnav/internal/constants"
	"itemnav/internal/pagelist"
	"itemnav/internal/services"

	"github.com/gin-gonic/gin"
)

// pagelistRequest reads the display options from the query string, falling
// back to the defaults and the site's configured list length.
func pagelistRequest(c *gin.Context, settingService *services.SettingService) pagelist.Request {
	req := pagelist.DefaultRequest()
	req.Length = settingService.GetInt(constants.SettingPagelistLength, req.Length)

	if v := c.Query("prev"); v != "" {
		req.PrevLabel = v
	}
	if v := c.Query("next"); v != "" {
		req.NextLabel = v
	}
	if v := c.Query("class"); v != "" {
		req.Class = v
	}
	if v, err := strconv.ParseBool(c.Query("prevnext")); err == nil {
		req.ShowPrevNext = v
	}
	if v, err := strconv.ParseBool(c.Query("firstlast")); err == nil {
		req.ShowFirstLast = v
	}
	if v, err := strconv.Atoi(c.Query("navlen")); err == nil && v >= 0 {
		req.Length = v
	}
	return req
}

// PagelistView is what the _pagelist.html partial renders.
type PagelistView struct {
	Class   string
	Entries []pagelist.Entry
}
