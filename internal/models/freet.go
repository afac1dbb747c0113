package models

import (
	"time"
)

// Freet represents a short post authored by a user.
type Freet struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	Content  string `gorm:"type:text;not null" json:"content"`
	// AgeRestrictedViewing is a one-way moderation flag: once set it is
	// never cleared.
	AgeRestrictedViewing bool `gorm:"not null;default:false" json:"age_restricted_viewing"`
	Likes                int  `gorm:"not null;default:0" json:"likes"`
	Dislikes             int  `gorm:"not null;default:0" json:"dislikes"`
	// ConsensusFiltered is recomputed from the counters on every reaction
	// mutation; it is never written outside that path.
	ConsensusFiltered bool      `gorm:"not null;default:false" json:"consensus_filtered"`
	CreatedAt         time.Time `json:"date_created"`
	UpdatedAt         time.Time `json:"date_modified"`
}
