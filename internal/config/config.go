package config

import (
	"os"

	"github.com/charmbracelet/log"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port          string
	Env           string
	SessionSecret string

	// DatabaseURL selects Postgres when set; otherwise the embedded
	// SQLite database at SQLitePath is used.
	DatabaseURL string
	SQLitePath  string

	WeatherAPIKey  string
	WeatherBaseURL string

	SpotifyClientID     string
	SpotifyClientSecret string
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port:                getEnvWithDefault("PORT", "8080"),
		Env:                 getEnvWithDefault("ENV", "development"),
		SessionSecret:       os.Getenv("SESSION_SECRET"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		SQLitePath:          getEnvWithDefault("SQLITE_PATH", "weatherify.db"),
		WeatherAPIKey:       os.Getenv("WEATHER_API_KEY"),
		WeatherBaseURL:      getEnvWithDefault("WEATHER_BASE_URL", "http://api.openweathermap.org/data/2.5/weather"),
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
	}

	// Warn if using default session secret (insecure for production)
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-secret-change-in-production-use-openssl-rand-hex-32"
		log.Warn("Using default SESSION_SECRET. Generate a secure secret with: openssl rand -hex 32")
	}

	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
