package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/podcast-social-backend/services"
)

// AddLike thêm like cho episode/comment/reply theo ID
// POST /api/social/:id/like
func AddLike(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := services.NewSocialService(db).AddLike(targetID, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã thích"})
}

// RemoveLike gỡ like của user trên target
// DELETE /api/social/:id/like
func RemoveLike(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := services.NewSocialService(db).RemoveLike(targetID, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã bỏ thích"})
}

// IsLiked kiểm tra user đã like target chưa
// GET /api/social/:id/liked
func IsLiked(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	liked, err := services.NewSocialService(db).IsLiked(targetID, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_liked": liked})
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddComment bình luận lên episode hoặc trả lời một comment
// POST /api/social/:id/comment
func AddComment(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewSocialService(db).AddComment(targetID, user, req.Text); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bình luận thành công"})
}

// RemoveComment xóa bình luận hoặc trả lời của chính user
// DELETE /api/social/comment/:id
func RemoveComment(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := services.NewSocialService(db).RemoveComment(commentID, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa bình luận"})
}

// GetEpisodeComments lấy cây bình luận của một tập
// GET /api/social/episode/:id/comments
func GetEpisodeComments(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	episodeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := services.NewSocialService(db).GetEpisodeComments(episodeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

type AddRatingRequest struct {
	Rating uint `json:"rating" binding:"required"`
}

// AddRating chấm điểm podcast (tạo mới hoặc cập nhật)
// POST /api/social/rating/:podcast_id
func AddRating(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	podcastID, ok := parseIDParam(c, "podcast_id")
	if !ok {
		return
	}

	var req AddRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewSocialService(db).AddRating(podcastID, user, req.Rating); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã chấm điểm podcast"})
}

// RemoveRating gỡ điểm rating của user
// DELETE /api/social/rating/:podcast_id
func RemoveRating(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	podcastID, ok := parseIDParam(c, "podcast_id")
	if !ok {
		return
	}

	if err := services.NewSocialService(db).RemoveRating(podcastID, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã gỡ điểm"})
}

type AddReviewRequest struct {
	Review string `json:"review" binding:"required"`
}

// AddReview viết review cho podcast (tạo mới hoặc cập nhật)
// POST /api/social/review/:podcast_id
func AddReview(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	podcastID, ok := parseIDParam(c, "podcast_id")
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewSocialService(db).AddReview(podcastID, user, req.Review); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã viết review"})
}

// RemoveReview gỡ review của user
// DELETE /api/social/review/:podcast_id
func RemoveReview(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	podcastID, ok := parseIDParam(c, "podcast_id")
	if !ok {
		return
	}

	if err := services.NewSocialService(db).RemoveReview(podcastID, user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã gỡ review"})
}

// GetPodcastRatings lấy toàn bộ rating/review của một podcast
// GET /api/social/rating/:podcast_id
func GetPodcastRatings(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	podcastID, ok := parseIDParam(c, "podcast_id")
	if !ok {
		return
	}

	ratings, err := services.NewSocialService(db).GetPodcastRatings(podcastID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// GetMyRating lấy rating/review của chính user cho podcast
// GET /api/social/rating/:podcast_id/me
func GetMyRating(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	podcastID, ok := parseIDParam(c, "podcast_id")
	if !ok {
		return
	}

	rating, err := services.NewSocialService(db).GetUserRating(podcastID, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}
