package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Harry-45/Weatherify/internal/flash"
	"github.com/Harry-45/Weatherify/internal/models"
)

const userKey = "user"

// CurrentUser returns the request's authenticated user, set by the
// RequireAuth or RequireAdmin middleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// RequireAuth is a middleware that ensures the session resolves to an
// existing user; anyone else is sent to the login page.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			// Stale session referencing an account that no longer resolves.
			session.Delete("user_id")
			_ = session.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(userKey, &user)
		c.Next()
	}
}

// RequireAdmin gates admin routes. Unauthorized requests are flashed and
// sent to the home page rather than the login page: the distinction
// separates "logged in but not allowed" from "not logged in".
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if userID := session.Get("user_id"); userID != nil {
			var user models.User
			if err := db.First(&user, userID).Error; err == nil && user.IsAdmin {
				c.Set(userKey, &user)
				c.Next()
				return
			}
		}

		flash.Add(c, "error", "Admin access required")
		c.Redirect(http.StatusFound, "/")
		c.Abort()
	}
}
