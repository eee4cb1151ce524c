package server

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Harry-45/Weatherify/internal/admin"
	"github.com/Harry-45/Weatherify/internal/auth"
	"github.com/Harry-45/Weatherify/internal/health"
	"github.com/Harry-45/Weatherify/internal/playlist"
	"github.com/Harry-45/Weatherify/internal/search"
)

func registerRoutes(engine *gin.Engine, db *gorm.DB, ws search.WeatherService, cs search.CatalogService) {
	engine.GET("/health", health.Handler)

	engine.GET("/signup", auth.ShowSignup)
	engine.POST("/signup", auth.HandleSignup(db))
	engine.GET("/login", auth.ShowLogin)
	engine.POST("/login", auth.HandleLogin(db))
	engine.GET("/logout", auth.HandleLogout)
	engine.GET("/admin/login", auth.ShowAdminLogin)
	engine.POST("/admin/login", auth.HandleAdminLogin(db))

	authed := engine.Group("/", auth.RequireAuth(db))
	authed.GET("", search.ShowIndex)
	authed.POST("search_city", search.HandleSearchCity(db, playlist.NewResolver(db), ws, cs))

	dashboard := engine.Group("/admin", auth.RequireAdmin(db))
	dashboard.GET("", admin.ShowDashboard(db))
	dashboard.POST("", admin.HandleSaveMapping(db))
}
