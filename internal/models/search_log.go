package models

import "time"

// SearchLog is an append-only record of a successful weather lookup.
// PlaylistID is nil when neither an override nor the fallback table had
// an entry for the resolved (condition, language) pair.
type SearchLog struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index"`
	City       string    `gorm:"size:200"`
	Timestamp  time.Time `gorm:"autoCreateTime"`
	Weather    string    `gorm:"size:200"`
	PlaylistID *string   `gorm:"size:200"`
}
