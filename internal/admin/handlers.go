// Package admin serves the dashboard and playlist-mapping management.
package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Harry-45/Weatherify/internal/auth"
	"github.com/Harry-45/Weatherify/internal/flash"
	"github.com/Harry-45/Weatherify/internal/models"
)

// dashboardLogLimit caps how many recent searches the dashboard shows.
const dashboardLogLimit = 200

// ShowDashboard renders current mappings, the most recent searches
// newest-first, all users ordered by ID, and each user's latest search
// time (nil when they have never searched).
func ShowDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var mappings []models.PlaylistMapping
		if err := db.Find(&mappings).Error; err != nil {
			renderError(c, "failed to load mappings", err)
			return
		}

		var logs []models.SearchLog
		if err := db.Order("timestamp DESC").Limit(dashboardLogLimit).Find(&logs).Error; err != nil {
			renderError(c, "failed to load search logs", err)
			return
		}

		var users []models.User
		if err := db.Order("id ASC").Find(&users).Error; err != nil {
			renderError(c, "failed to load users", err)
			return
		}

		lastActivity := make(map[uint]*time.Time, len(users))
		for _, u := range users {
			var last models.SearchLog
			err := db.Where("user_id = ?", u.ID).Order("timestamp DESC").First(&last).Error
			switch {
			case err == nil:
				t := last.Timestamp
				lastActivity[u.ID] = &t
			case errors.Is(err, gorm.ErrRecordNotFound):
				lastActivity[u.ID] = nil
			default:
				renderError(c, "failed to load user activity", err)
				return
			}
		}

		user, _ := auth.CurrentUser(c)
		c.HTML(http.StatusOK, "admin.html", gin.H{
			"user":         user,
			"mappings":     mappings,
			"logs":         logs,
			"users":        users,
			"lastActivity": lastActivity,
			"flashes":      flash.Take(c),
		})
	}
}

// HandleSaveMapping upserts a playlist mapping: update when a row for the
// (weather, language) pair exists, insert otherwise. The check-then-write
// is not guarded against concurrent submissions for the same pair;
// last-writer-wins is accepted behavior.
func HandleSaveMapping(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		weatherLabel := c.PostForm("weather")
		language := c.PostForm("language")
		playlistID := c.PostForm("playlist_id")

		var mapping models.PlaylistMapping
		err := db.Where("weather = ? AND language = ?", weatherLabel, language).First(&mapping).Error
		switch {
		case err == nil:
			if err := db.Model(&mapping).Update("playlist_id", playlistID).Error; err != nil {
				renderError(c, "failed to update mapping", err)
				return
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := models.PlaylistMapping{Weather: weatherLabel, Language: language, PlaylistID: playlistID}
			if err := db.Create(&created).Error; err != nil {
				renderError(c, "failed to create mapping", err)
				return
			}
		default:
			renderError(c, "failed to look up mapping", err)
			return
		}

		flash.Add(c, "success", "Mapping saved")
		c.Redirect(http.StatusFound, "/admin")
	}
}

func renderError(c *gin.Context, msg string, err error) {
	log.Error(msg, "err", err)
	c.HTML(http.StatusInternalServerError, "error.html", nil)
}
