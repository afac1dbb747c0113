package models

import (
	"time"
)

// Reaction records a single like or dislike by a user on a freet. The
// composite unique index guarantees at most one reaction per (user, freet)
// pair even under concurrent requests.
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reactions_user_freet" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FreetID   uint      `gorm:"not null;uniqueIndex:idx_reactions_user_freet;index" json:"freet_id"`
	Freet     Freet     `gorm:"foreignKey:FreetID" json:"freet,omitempty"`
	Liked     bool      `gorm:"not null" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
}
