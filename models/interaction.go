package models

import (
	"time"

	"github.com/google/uuid"
)

// Telemetry nghe của một user trên một tập podcast.
// Mỗi cặp (user, episode) chỉ có một dòng, khác với like xã hội (EpisodeLike).
type UserEpisodeInteraction struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	EpisodeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"episode_id"`

	HasListened        bool      `gorm:"default:false" json:"has_listened"`
	HasLiked           bool      `gorm:"default:false" json:"has_liked"`
	Clicks             int       `gorm:"default:0" json:"clicks"`
	TotalListenTime    int64     `gorm:"default:0" json:"total_listen_time"`    // Tổng thời gian nghe (giây)
	LastListenPosition int       `gorm:"default:0" json:"last_listen_position"` // Vị trí nghe cuối (giây)
	DateListened       time.Time `json:"date_listened"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Episode Episode `gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE" json:"-"`
}
