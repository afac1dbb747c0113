package models

import (
	"time"
)

// Verification is an audit record of a self-declared identity attestation. The declared values are also projected onto the User row,
// which is what the visibility policy reads.
type Verification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Verified  bool      `gorm:"not null" json:"verified"`
	Name      string    `json:"name"`
	Age       string    `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}
