package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating uint = 1
	MaxRating uint = 5
)

// Đánh giá + review của một user cho một podcast, gộp chung một dòng.
// Rating = 0 nghĩa là chỉ có review; Review = "" nghĩa là chỉ có rating.
// Không bao giờ giữ dòng mà cả hai đều rỗng.
type PodcastRating struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PodcastID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_podcast_user_rating" json:"podcast_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_podcast_user_rating" json:"user_id"`
	Rating    uint      `gorm:"default:0" json:"rating"`
	Review    string    `gorm:"type:text;default:''" json:"review"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Podcast Podcast `gorm:"foreignKey:PodcastID" json:"-"`
}
