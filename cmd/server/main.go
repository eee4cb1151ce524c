package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Harry-45/Weatherify/internal/catalog"
	"github.com/Harry-45/Weatherify/internal/config"
	"github.com/Harry-45/Weatherify/internal/database"
	"github.com/Harry-45/Weatherify/internal/server"
	"github.com/Harry-45/Weatherify/internal/weather"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg := config.Load()

	db, err := database.Init(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Fatal("failed to open database", "err", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", "err", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to ensure schema", "err", err)
	}
	if err := database.EnsureAdmin(db, database.DefaultAdminEmail, database.DefaultAdminPassword); err != nil {
		logger.Fatal("failed to seed admin account", "err", err)
	}

	weatherClient := weather.NewClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey)
	catalogClient := catalog.NewClient(context.Background(), cfg.SpotifyClientID, cfg.SpotifyClientSecret)

	engine := server.New(cfg, db, weatherClient, catalogClient, logger)

	logger.Info("starting server", "port", cfg.Port)
	if err := engine.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", "err", err)
	}
}
