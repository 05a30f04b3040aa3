package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/podcast-social-backend/models"
)

// Request body cho việc ghi nhận một phiên nghe
type SaveEpisodeListenRequest struct {
	LastPosition    int   `json:"last_position" binding:"min=0"`
	SecondsListened int   `json:"seconds_listened" binding:"required,min=1"` // thời gian nghe trong phiên này
	HasLiked        *bool `json:"has_liked,omitempty"`
}

// SaveEpisodeListen lưu hoặc cập nhật telemetry nghe của user trên một tập.
// Mỗi lần gọi tính là một click; thời gian nghe được cộng dồn.
// POST /api/episodes/:id/listen
func SaveEpisodeListen(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	episodeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SaveEpisodeListenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Kiểm tra episode tồn tại
	var episode models.Episode
	if err := db.First(&episode, "id = ?", episodeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tập podcast"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy vấn tập podcast"})
		return
	}

	now := time.Now()

	var interaction models.UserEpisodeInteraction
	result := db.Where("user_id = ? AND episode_id = ?", user.ID, episodeID).First(&interaction)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Tạo mới
		interaction = models.UserEpisodeInteraction{
			UserID:             user.ID,
			EpisodeID:          episodeID,
			HasListened:        true,
			Clicks:             1,
			TotalListenTime:    int64(req.SecondsListened),
			LastListenPosition: req.LastPosition,
			DateListened:       now,
		}
		if req.HasLiked != nil {
			interaction.HasLiked = *req.HasLiked
		}
		if err := db.Create(&interaction).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu lịch sử nghe"})
			return
		}
	} else if result.Error == nil {
		// Cập nhật
		interaction.HasListened = true
		interaction.Clicks++
		interaction.TotalListenTime += int64(req.SecondsListened)
		interaction.LastListenPosition = req.LastPosition
		interaction.DateListened = now
		if req.HasLiked != nil {
			interaction.HasLiked = *req.HasLiked
		}
		if err := db.Save(&interaction).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật lịch sử nghe"})
			return
		}
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã lưu lịch sử nghe",
		"data":    interaction,
	})
}

// GetListenHistory lấy telemetry nghe của chính user
// GET /api/episodes/listen-history
func GetListenHistory(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}

	var interactions []models.UserEpisodeInteraction
	if err := db.Where("user_id = ?", user.ID).
		Order("date_listened DESC").
		Find(&interactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy lịch sử nghe"})
		return
	}
	c.JSON(http.StatusOK, interactions)
}
