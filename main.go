package main

import (
	"flag"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"itemnav/internal/config"
	"itemnav/internal/handlers"
	"itemnav/internal/repository"
	"itemnav/internal/services"
	"itemnav/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global filesystems that will be populated by either assets_dev.go or assets_prod.go at startup.
var templatesFS fs.FS
var staticFS fs.FS

func createRenderer() multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	add := func(name string, files ...string) {
		tpl, err := template.ParseFS(templatesFS, files...)
		if err != nil {
			log.Fatalf("failed to parse template %s: %v", name, err)
		}
		r.Add(name, tpl)
	}

	add("articles.html", "base.html", "articles.html")
	add("article.html", "base.html", "article.html", "_pagelist.html")
	add("page.html", "base.html", "page.html", "_pagelist.html")
	add("album.html", "base.html", "album.html", "_pagelist.html")
	add("image.html", "base.html", "image.html", "_pagelist.html")
	add("search.html", "base.html", "search.html")
	add("404.html", "base.html", "404.html")
	add("error.html", "base.html", "error.html")

	return r
}

func main() {
	unsafe := flag.Bool("unsafe", false, "allow insecure cookies")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := utils.InitDatabase(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to initialize database: ", err)
	}

	settingService := services.NewSettingService(repository.NewSettingRepository(db))
	if err := settingService.EnsureDefaults(); err != nil {
		log.Fatal("failed to seed settings: ", err)
	}
	contentService := services.NewContentService(db)
	articles, pages, albums, images := contentService.Repositories()
	pagelistService := services.NewPagelistService(articles, pages, albums, images, settingService)

	fragment, err := template.ParseFS(templatesFS, "_pagelist.html")
	if err != nil {
		log.Fatal("failed to parse page list fragment: ", err)
	}

	siteHandler := handlers.NewSiteHandler(contentService, pagelistService, settingService)
	searchHandler := handlers.NewSearchHandler(contentService)
	apiHandler := handlers.NewAPIHandler(contentService, pagelistService, settingService, fragment)

	r := gin.Default()
	r.HTMLRender = createRenderer()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   !*unsafe,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("itemnav_session", store))
	r.Use(handlers.SettingsMiddleware(settingService))
	if cfg.MetricsEnabled {
		r.Use(handlers.MetricsMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.StaticFS("/static", http.FS(staticFS))

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/articles") })
	r.GET("/articles", siteHandler.ArticleIndex)
	r.GET("/article/:slug", siteHandler.ShowArticle)
	r.GET("/page/:slug", siteHandler.ShowPage)
	r.GET("/album/:name", siteHandler.ShowAlbum)
	r.GET("/album/:name/:id", siteHandler.ShowImage)
	r.GET("/search", searchHandler.Search)
	r.GET("/search/clear", searchHandler.ClearSearch)

	api := r.Group("/api/v1")
	{
		api.GET("/pagelist/:variant", apiHandler.Pagelist)
	}
	r.GET("/fragment/pagelist/:variant", apiHandler.Fragment)

	r.NoRoute(siteHandler.NotFound)

	log.Println("server listening on", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
