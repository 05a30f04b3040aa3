package models

import (
	"time"

	"github.com/google/uuid"
)

type Podcast struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PodcasterID uuid.UUID `gorm:"type:uuid;not null;index" json:"podcaster_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CoverArt    string    `gorm:"type:text" json:"cover_art"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Podcaster User            `gorm:"foreignKey:PodcasterID" json:"-"`
	Episodes  []Episode       `gorm:"foreignKey:PodcastID" json:"episodes,omitempty"`
	Ratings   []PodcastRating `gorm:"foreignKey:PodcastID" json:"ratings,omitempty"`
}
