package handlers

import (
	"net/http"
	"strconv"
	"time"

	"itemnav/internal/constants"
	"itemnav/internal/metrics"
	"itemnav/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SettingsMiddleware adds the cached site settings to the context.
func SettingsMiddleware(settingService *services.SettingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeySettings, settingService.GetAllSettings())
		c.Next()
	}
}

// MetricsMiddleware records request counts and latency per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		// Route templates keep label cardinality bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// activeSearch returns the visitor's stored image search, if any.
func activeSearch(c *gin.Context) string {
	session := sessions.Default(c)
	if q, ok := session.Get(constants.SessionKeySearch).(string); ok {
		return q
	}
	return ""
}

// render is a helper function to render templates with common data.
func render(c *gin.Context, status int, templateName string, data gin.H) {
	if settings, exists := c.Get(constants.ContextKeySettings); exists {
		for key, value := range settings.(map[string]string) {
			if _, ok := data[key]; !ok { // Don't overwrite existing data
				data[key] = value
			}
		}
	}
	data["Search"] = activeSearch(c)

	c.HTML(status, templateName, data)
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{})
}
