package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/podcast-social-backend/models"
)

// SocialService quản lý like, bình luận, trả lời và rating/review.
type SocialService struct {
	db *gorm.DB
}

func NewSocialService(db *gorm.DB) *SocialService {
	return &SocialService{db: db}
}

// AddLike thêm like cho episode, comment hoặc reply tùy theo ID phân giải được.
func (s *SocialService) AddLike(targetID uuid.UUID, user *models.User) error {
	target, err := resolveTarget(s.db, targetID)
	if err != nil {
		return err
	}

	now := time.Now()

	switch target.Kind {
	case TargetEpisode:
		var n int64
		if err := s.db.Model(&models.EpisodeLike{}).
			Where("user_id = ? AND episode_id = ?", user.ID, target.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyExists
		}
		return s.db.Create(&models.EpisodeLike{
			UserID:    user.ID,
			EpisodeID: target.ID,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error

	case TargetComment:
		var n int64
		if err := s.db.Model(&models.CommentLike{}).
			Where("user_id = ? AND comment_id = ?", user.ID, target.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyExists
		}
		return s.db.Create(&models.CommentLike{
			UserID:    user.ID,
			CommentID: target.ID,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error

	default:
		var n int64
		if err := s.db.Model(&models.CommentReplyLike{}).
			Where("user_id = ? AND comment_reply_id = ?", user.ID, target.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyExists
		}
		return s.db.Create(&models.CommentReplyLike{
			UserID:         user.ID,
			CommentReplyID: target.ID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}).Error
	}
}

// RemoveLike gỡ like của chính user trên target, thứ tự dò giống AddLike.
func (s *SocialService) RemoveLike(targetID uuid.UUID, user *models.User) error {
	result := s.db.Where("user_id = ? AND episode_id = ?", user.ID, targetID).
		Delete(&models.EpisodeLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	result = s.db.Where("user_id = ? AND comment_id = ?", user.ID, targetID).
		Delete(&models.CommentLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	result = s.db.Where("user_id = ? AND comment_reply_id = ?", user.ID, targetID).
		Delete(&models.CommentReplyLike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	return ErrNotFound
}

// IsLiked kiểm tra user đã like target chưa.
func (s *SocialService) IsLiked(targetID uuid.UUID, user *models.User) (bool, error) {
	var n int64
	if err := s.db.Model(&models.EpisodeLike{}).
		Where("user_id = ? AND episode_id = ?", user.ID, targetID).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := s.db.Model(&models.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", user.ID, targetID).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := s.db.Model(&models.CommentReplyLike{}).
		Where("user_id = ? AND comment_reply_id = ?", user.ID, targetID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddComment thêm bình luận gốc (target là episode) hoặc trả lời (target là comment).
// Reply không thể là target của một comment khác.
func (s *SocialService) AddComment(targetID uuid.UUID, user *models.User, text string) error {
	target, err := resolveTarget(s.db, targetID)
	if err != nil {
		return err
	}

	switch target.Kind {
	case TargetEpisode:
		return s.db.Create(&models.Comment{
			ID:        uuid.New(),
			EpisodeID: target.ID,
			UserID:    user.ID,
			Text:      text,
		}).Error

	case TargetComment:
		return s.db.Create(&models.CommentReply{
			ID:               uuid.New(),
			ReplyToCommentID: target.ID,
			UserID:           user.ID,
			Text:             text,
		}).Error

	default:
		return ErrNotFound
	}
}

// RemoveComment xóa bình luận (kèm toàn bộ reply và like con, con trước cha)
// hoặc xóa một reply (kèm like của nó). Tất cả trong một transaction.
func (s *SocialService) RemoveComment(commentID uuid.UUID, user *models.User) error {
	var comment models.Comment
	err := s.db.Preload("Replies").First(&comment, "id = ?", commentID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Không phải comment gốc, thử reply
		var reply models.CommentReply
		if err := s.db.First(&reply, "id = ?", commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if reply.UserID != user.ID {
			return ErrForbidden
		}

		return s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("comment_reply_id = ?", reply.ID).
				Delete(&models.CommentReplyLike{}).Error; err != nil {
				return err
			}
			return tx.Delete(&reply).Error
		})
	}
	if err != nil {
		return err
	}

	if comment.UserID != user.ID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Like của từng reply trước
		for _, reply := range comment.Replies {
			if err := tx.Where("comment_reply_id = ?", reply.ID).
				Delete(&models.CommentReplyLike{}).Error; err != nil {
				return err
			}
		}
		// Rồi đến các reply
		if err := tx.Where("reply_to_comment_id = ?", comment.ID).
			Delete(&models.CommentReply{}).Error; err != nil {
			return err
		}
		// Like của chính comment
		if err := tx.Where("comment_id = ?", comment.ID).
			Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		// Comment gốc xóa sau cùng
		return tx.Delete(&comment).Error
	})
}

// GetEpisodeComments trả về cây bình luận của một tập (reply kèm số like).
func (s *SocialService) GetEpisodeComments(episodeID uuid.UUID) ([]CommentResponse, error) {
	var n int64
	if err := s.db.Model(&models.Episode{}).Where("id = ?", episodeID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	var comments []models.Comment
	if err := s.db.
		Preload("User").
		Preload("Likes").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Replies.User").
		Preload("Replies.Likes").
		Where("episode_id = ?", episodeID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, NewCommentResponse(c))
	}
	return responses, nil
}

// AddRating tạo mới hoặc cập nhật điểm rating của user cho podcast,
// giữ nguyên review nếu đã có.
func (s *SocialService) AddRating(podcastID uuid.UUID, user *models.User, rating uint) error {
	var n int64
	if err := s.db.Model(&models.Podcast{}).Where("id = ?", podcastID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	if rating < models.MinRating || rating > models.MaxRating {
		return ErrInvalidArgument
	}

	var existing models.PodcastRating
	err := s.db.First(&existing, "podcast_id = ? AND user_id = ?", podcastID, user.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&models.PodcastRating{
			ID:        uuid.New(),
			PodcastID: podcastID,
			UserID:    user.ID,
			Rating:    rating,
		}).Error
	}
	if err != nil {
		return err
	}

	existing.Rating = rating
	return s.db.Save(&existing).Error
}

// RemoveRating gỡ điểm rating: còn review thì giữ dòng với rating = 0,
// không thì xóa hẳn dòng.
func (s *SocialService) RemoveRating(podcastID uuid.UUID, user *models.User) error {
	var rating models.PodcastRating
	if err := s.db.First(&rating, "podcast_id = ? AND user_id = ?", podcastID, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if rating.Review != "" {
		rating.Rating = 0
		return s.db.Save(&rating).Error
	}
	return s.db.Delete(&rating).Error
}

// AddReview tạo mới hoặc cập nhật review, giữ nguyên rating nếu đã có.
func (s *SocialService) AddReview(podcastID uuid.UUID, user *models.User, review string) error {
	var n int64
	if err := s.db.Model(&models.Podcast{}).Where("id = ?", podcastID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	var existing models.PodcastRating
	err := s.db.First(&existing, "podcast_id = ? AND user_id = ?", podcastID, user.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&models.PodcastRating{
			ID:        uuid.New(),
			PodcastID: podcastID,
			UserID:    user.ID,
			Review:    review,
		}).Error
	}
	if err != nil {
		return err
	}

	existing.Review = review
	return s.db.Save(&existing).Error
}

// RemoveReview gỡ review: còn rating thì giữ dòng với review rỗng,
// không thì xóa hẳn dòng.
func (s *SocialService) RemoveReview(podcastID uuid.UUID, user *models.User) error {
	var rating models.PodcastRating
	if err := s.db.First(&rating, "podcast_id = ? AND user_id = ?", podcastID, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if rating.Rating != 0 {
		rating.Review = ""
		return s.db.Save(&rating).Error
	}
	return s.db.Delete(&rating).Error
}

// GetPodcastRatings trả về toàn bộ rating/review của một podcast.
func (s *SocialService) GetPodcastRatings(podcastID uuid.UUID) ([]models.PodcastRating, error) {
	var n int64
	if err := s.db.Model(&models.Podcast{}).Where("id = ?", podcastID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	var ratings []models.PodcastRating
	if err := s.db.Preload("User").
		Where("podcast_id = ?", podcastID).
		Order("updated_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetUserRating trả về rating/review của chính user cho podcast.
func (s *SocialService) GetUserRating(podcastID uuid.UUID, user *models.User) (*models.PodcastRating, error) {
	var rating models.PodcastRating
	if err := s.db.First(&rating, "podcast_id = ? AND user_id = ?", podcastID, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}
