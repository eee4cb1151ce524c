// Package search implements the primary flow: weather lookup, condition
// normalization, playlist resolution, search logging, and result rendering.
package search

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Harry-45/Weatherify/internal/auth"
	"github.com/Harry-45/Weatherify/internal/catalog"
	"github.com/Harry-45/Weatherify/internal/flash"
	"github.com/Harry-45/Weatherify/internal/models"
	"github.com/Harry-45/Weatherify/internal/playlist"
	"github.com/Harry-45/Weatherify/internal/weather"
)

// WeatherService provides current conditions for a city.
type WeatherService interface {
	CurrentByCity(ctx context.Context, city string) (*weather.Current, error)
}

// CatalogService fetches playlist metadata by identifier.
type CatalogService interface {
	Playlist(ctx context.Context, playlistID string) (*catalog.Playlist, error)
}

// ShowIndex renders the search form.
func ShowIndex(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"user":    user,
		"flashes": flash.Take(c),
	})
}

// HandleSearchCity runs the search flow. A failed weather lookup flashes
// and redirects without writing a log row; once the lookup succeeds a row
// is always written, whether or not a playlist was resolved.
func HandleSearchCity(db *gorm.DB, resolver *playlist.Resolver, ws WeatherService, cs CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		city := c.PostForm("city")
		language := c.DefaultPostForm("language", "English")

		if city == "" {
			flash.Add(c, "error", "Enter a city name")
			c.Redirect(http.StatusFound, "/")
			return
		}

		cur, err := ws.CurrentByCity(c.Request.Context(), city)
		if err != nil {
			if !errors.Is(err, weather.ErrCityNotFound) {
				log.Error("weather lookup failed", "city", city, "err", err)
			}
			flash.Add(c, "error", "City not found")
			c.Redirect(http.StatusFound, "/")
			return
		}

		condition := weather.Normalize(cur.Condition)

		playlistID, err := resolver.Resolve(condition, language)
		if err != nil {
			log.Error("playlist resolution failed", "condition", condition, "language", language, "err", err)
			c.HTML(http.StatusInternalServerError, "error.html", nil)
			return
		}

		user, _ := auth.CurrentUser(c)
		entry := models.SearchLog{UserID: user.ID, City: city, Weather: condition}
		if playlistID != "" {
			entry.PlaylistID = &playlistID
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Error("failed to record search", "err", err)
			c.HTML(http.StatusInternalServerError, "error.html", nil)
			return
		}

		view := gin.H{
			"user": user,
			"weather": gin.H{
				"city":        cur.City,
				"temperature": cur.Temperature,
				"condition":   condition,
				"icon":        cur.Icon,
			},
		}

		if playlistID != "" {
			pl, err := cs.Playlist(c.Request.Context(), playlistID)
			if err != nil {
				// Degrade to the weather-only view; the log row stands.
				log.Error("catalog fetch failed", "playlist_id", playlistID, "err", err)
				flash.Add(c, "error", "Playlist is unavailable right now")
			} else {
				view["playlist"] = pl
			}
		}

		view["flashes"] = flash.Take(c)
		c.HTML(http.StatusOK, "playlist.html", view)
	}
}
