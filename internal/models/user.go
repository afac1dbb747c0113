// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// AgeUnknown is the sentinel value for a user who never declared an age.
const AgeUnknown = "unknown"

// User represents a registered account in the Fritter application.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	// Verified, Name and Age are the durable projection of the latest
	// verification declaration (see Verification).
	Verified  bool           `gorm:"not null;default:false" json:"verified"`
	Name      string         `json:"name"`
	Age       string         `gorm:"not null;default:'unknown'" json:"age"`
	CreatedAt time.Time      `json:"date_joined"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
