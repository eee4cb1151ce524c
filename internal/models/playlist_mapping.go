package models

// PlaylistMapping is an admin-configured override binding a canonical
// weather condition and a language to a catalog playlist. At most one row
// exists per (weather, language) pair; the save handler enforces this with
// an update-or-insert, there is no database constraint.
type PlaylistMapping struct {
	ID         uint   `gorm:"primaryKey"`
	Weather    string `gorm:"size:64;not null"`
	Language   string `gorm:"size:32;not null"`
	PlaylistID string `gorm:"size:200;not null"`
}
