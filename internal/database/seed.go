package database

import (
	"errors"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/Harry-45/Weatherify/internal/auth"
	"github.com/Harry-45/Weatherify/internal/models"
)

// Bootstrap admin credentials. A known-credential seed that a real
// deployment must rotate.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
)

// EnsureAdmin creates the bootstrap admin account if no user with the
// given email exists. Idempotent: an existing account is left untouched.
func EnsureAdmin(db *gorm.DB, email, password string) error {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("Seeded bootstrap admin account", "email", email)
	return nil
}
