package models

import (
	"time"

	"github.com/google/uuid"
)

// Like trên một tập podcast
type EpisodeLike struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	EpisodeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"episode_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Episode Episode `gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE" json:"-"`
}

// Like trên một bình luận gốc
type CommentLike struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CommentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"comment_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comment Comment `gorm:"foreignKey:CommentID" json:"-"`
}

// Like trên một trả lời bình luận
type CommentReplyLike struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CommentReplyID uuid.UUID `gorm:"type:uuid;primaryKey" json:"comment_reply_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User         User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CommentReply CommentReply `gorm:"foreignKey:CommentReplyID" json:"-"`
}
