package models

import (
	"time"

	"github.com/google/uuid"
)

// Bình luận gốc trên một tập podcast
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EpisodeID uuid.UUID `gorm:"type:uuid;not null;index" json:"episode_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User    User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Replies []CommentReply `gorm:"foreignKey:ReplyToCommentID" json:"replies,omitempty"`
	Likes   []CommentLike  `gorm:"foreignKey:CommentID" json:"likes,omitempty"`
}

// Trả lời cho một bình luận gốc. Reply không lồng thêm cấp nữa.
type CommentReply struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReplyToCommentID uuid.UUID `gorm:"type:uuid;not null;index" json:"reply_to_comment_id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Text             string    `gorm:"type:text;not null" json:"text"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User  User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Likes []CommentReplyLike `gorm:"foreignKey:CommentReplyID" json:"likes,omitempty"`
}
