package models

// User represents an application account. IsAdmin gates the dashboard;
// no handler toggles it, but the schema allows it.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:150"`
	Email        string `gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:300;not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
}
