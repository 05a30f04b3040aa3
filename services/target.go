package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/podcast-social-backend/models"
)

// Loại đối tượng mà một like/comment trỏ tới.
type TargetKind int

const (
	TargetEpisode TargetKind = iota
	TargetComment
	TargetReply
)

// Target đã được phân giải thành {kind, id} rõ ràng, caller switch theo Kind.
type Target struct {
	Kind TargetKind
	ID   uuid.UUID
}

// resolveTarget dò ID theo thứ tự Episode -> Comment -> CommentReply,
// khớp đầu tiên thắng.
func resolveTarget(db *gorm.DB, id uuid.UUID) (Target, error) {
	var n int64

	if err := db.Model(&models.Episode{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return Target{}, err
	}
	if n > 0 {
		return Target{Kind: TargetEpisode, ID: id}, nil
	}

	if err := db.Model(&models.Comment{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return Target{}, err
	}
	if n > 0 {
		return Target{Kind: TargetComment, ID: id}, nil
	}

	if err := db.Model(&models.CommentReply{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return Target{}, err
	}
	if n > 0 {
		return Target{Kind: TargetReply, ID: id}, nil
	}

	return Target{}, ErrNotFound
}
