// Package server assembles the Gin engine: middleware, templates, and the
// route table.
package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Harry-45/Weatherify/internal/config"
	"github.com/Harry-45/Weatherify/internal/search"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionMaxAge = 86400 * 30

// New builds the application engine with all routes registered.
func New(cfg *config.Config, db *gorm.DB, ws search.WeatherService, cs search.CatalogService, logger *log.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(RequestLogger(logger))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	engine.Use(sessions.Sessions("weatherify_session", store))

	engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	registerRoutes(engine, db, ws, cs)
	return engine
}
