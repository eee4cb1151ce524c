package auth

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Harry-45/Weatherify/internal/flash"
	"github.com/Harry-45/Weatherify/internal/models"
)

// ShowSignup renders the signup form
func ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"flashes": flash.Take(c)})
}

// ShowLogin renders the login form
func ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"flashes": flash.Take(c)})
}

// ShowAdminLogin renders the admin login form
func ShowAdminLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{"flashes": flash.Take(c)})
}

// HandleSignup creates an account and logs the new user straight in.
// A duplicate email is rejected without touching the existing account.
func HandleSignup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		email := c.PostForm("email")
		password := c.PostForm("password")

		var existing models.User
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			flash.Add(c, "error", "Email already exists")
			c.Redirect(http.StatusFound, "/signup")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("signup lookup failed", "err", err)
			renderError(c)
			return
		}

		hash, err := HashPassword(password)
		if err != nil {
			flash.Add(c, "error", "Enter a password")
			c.Redirect(http.StatusFound, "/signup")
			return
		}

		user := models.User{Name: name, Email: email, PasswordHash: hash}
		if err := db.Create(&user).Error; err != nil {
			log.Error("failed to create user", "err", err)
			renderError(c)
			return
		}

		if err := establishSession(c, user.ID); err != nil {
			log.Error("session save failed", "err", err)
			renderError(c)
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// HandleLogin verifies credentials and establishes a session. The failure
// message never distinguishes an unknown email from a wrong password.
func HandleLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		var user models.User
		err := db.Where("email = ?", email).First(&user).Error
		if err != nil || !CheckPassword(user.PasswordHash, password) {
			flash.Add(c, "error", "Invalid login")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		if err := establishSession(c, user.ID); err != nil {
			log.Error("session save failed", "err", err)
			renderError(c)
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// HandleAdminLogin is HandleLogin with an additional admin-flag check. A
// valid non-admin login fails with the same uniform message as a bad
// password, so the response never reveals which check failed.
func HandleAdminLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		var user models.User
		err := db.Where("email = ?", email).First(&user).Error
		if err != nil || !user.IsAdmin || !CheckPassword(user.PasswordHash, password) {
			flash.Add(c, "error", "Invalid admin credentials")
			c.Redirect(http.StatusFound, "/admin/login")
			return
		}

		if err := establishSession(c, user.ID); err != nil {
			log.Error("session save failed", "err", err)
			renderError(c)
			return
		}
		c.Redirect(http.StatusFound, "/admin")
	}
}

// HandleLogout clears the session's user reference and redirects to the
// login page. Idempotent: logging out twice is harmless.
func HandleLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete("user_id")
	if err := session.Save(); err != nil {
		log.Error("session clear failed", "err", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

func establishSession(c *gin.Context, userID uint) error {
	session := sessions.Default(c)
	session.Set("user_id", userID)
	return session.Save()
}

func renderError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", nil)
}
