package models

import (
	"time"

	"github.com/google/uuid"
)

type Episode struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PodcastID   uuid.UUID `gorm:"type:uuid;not null;index" json:"podcast_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	AudioURL    string    `gorm:"type:text" json:"audio_url"`
	DurationSec int       `json:"duration_sec"` // Tổng thời lượng tập (giây)
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Podcast      Podcast                  `gorm:"foreignKey:PodcastID" json:"-"`
	Comments     []Comment                `gorm:"foreignKey:EpisodeID" json:"comments,omitempty"`
	Likes        []EpisodeLike            `gorm:"foreignKey:EpisodeID" json:"likes,omitempty"`
	Interactions []UserEpisodeInteraction `gorm:"foreignKey:EpisodeID" json:"interactions,omitempty"`
}
