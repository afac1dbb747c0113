package models

import (
	"time"
)

// Follow is a directed follower -> following edge between two users. The
// composite unique index keeps the edge set free of duplicates; self-edges
// are rejected at the validation layer.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"follower_id"`
	Follower    User      `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_pair;index" json:"following_id"`
	Following   User      `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
