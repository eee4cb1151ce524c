package playlist

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/Harry-45/Weatherify/internal/database"
	"github.com/Harry-45/Weatherify/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init("", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestResolve(t *testing.T) {
	db := newTestDB(t)
	resolver := NewResolver(db)

	t.Run("Override Preferred Over Fallback", func(t *testing.T) {
		override := models.PlaylistMapping{Weather: "Rain", Language: "English", PlaylistID: "override123"}
		if err := db.Create(&override).Error; err != nil {
			t.Fatalf("failed to create override: %v", err)
		}

		got, err := resolver.Resolve("Rain", "English")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "override123" {
			t.Errorf("expected override123, got %s", got)
		}

		// Removing the override falls back to the static table.
		if err := db.Delete(&override).Error; err != nil {
			t.Fatalf("failed to delete override: %v", err)
		}
		got, err = resolver.Resolve("Rain", "English")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "5WbhszXYAvS1BC2s0LAaKm" {
			t.Errorf("expected static fallback 5WbhszXYAvS1BC2s0LAaKm, got %s", got)
		}
	})

	t.Run("Fallback Covers All Conditions", func(t *testing.T) {
		for _, condition := range []string{"Clear", "Clouds", "Rain", "Snow", "Thunderstorm"} {
			for _, language := range []string{"English", "Hindi"} {
				got, err := resolver.Resolve(condition, language)
				if err != nil {
					t.Fatalf("Resolve(%s, %s): %v", condition, language, err)
				}
				if got == "" {
					t.Errorf("expected a fallback entry for (%s, %s)", condition, language)
				}
			}
		}
	})

	t.Run("Absent Pair Is Not An Error", func(t *testing.T) {
		got, err := resolver.Resolve("Clear", "French")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "" {
			t.Errorf("expected no playlist, got %s", got)
		}
	})
}
