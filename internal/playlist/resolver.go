// Package playlist maps a (condition, language) pair to a curated
// playlist identifier.
package playlist

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Harry-45/Weatherify/internal/models"
)

// fallback covers the five canonical conditions for English and Hindi.
// Consulted only when no admin override row exists.
var fallback = map[string]map[string]string{
	"Clear":        {"English": "2RTmyxpcu6aOyd9AqukEYe", "Hindi": "34BxF3uTnSVeW89tswPLpV"},
	"Clouds":       {"English": "2NWk4Ekf61NpAhgXWx5Koc", "Hindi": "3qQ1PC3avJttJAqlCbHimO"},
	"Rain":         {"English": "5WbhszXYAvS1BC2s0LAaKm", "Hindi": "2bK0LgUFYs8pdItSUzILAa"},
	"Snow":         {"English": "5LKwsGYskR7UUHwsBB1dCx", "Hindi": "1EkI0bKfR6rOXmQlaOxjw8"},
	"Thunderstorm": {"English": "7BzRcrEaDLIylIEgZGONTC", "Hindi": "4nlCJPktVI9R3VTezTOR8K"},
}

// Resolver picks a playlist for a (condition, language) pair, preferring
// admin-configured overrides over the static fallback table.
type Resolver struct {
	db *gorm.DB
}

// NewResolver creates a resolver backed by the given database.
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve returns the playlist ID for the pair, or "" when neither an
// override nor a fallback entry exists. Absence is not an error; callers
// render a weather-only view.
func (r *Resolver) Resolve(weather, language string) (string, error) {
	var mapping models.PlaylistMapping
	err := r.db.Where("weather = ? AND language = ?", weather, language).First(&mapping).Error
	if err == nil {
		return mapping.PlaylistID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	return fallback[weather][language], nil
}
