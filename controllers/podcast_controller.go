package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/podcast-social-backend/models"
	"github.com/vnkhanh/podcast-social-backend/services"
)

type CreatePodcastRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CoverArt    string `json:"cover_art"`
}

// CreatePodcast tạo podcast mới, user hiện tại là podcaster
// POST /api/podcasts
func CreatePodcast(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}

	var req CreatePodcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	podcast := models.Podcast{
		ID:          uuid.New(),
		PodcasterID: user.ID,
		Name:        req.Name,
		Description: req.Description,
		CoverArt:    req.CoverArt,
	}
	if err := db.Create(&podcast).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo podcast"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo podcast thành công",
		"data":    podcast,
	})
}

type CreateEpisodeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	AudioURL    string `json:"audio_url"`
	DurationSec int    `json:"duration_sec" binding:"min=0"`
}

// CreateEpisode thêm tập mới vào podcast của chính user
// POST /api/podcasts/:podcast_id/episodes
func CreateEpisode(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	podcastID, ok := parseIDParam(c, "podcast_id")
	if !ok {
		return
	}

	var podcast models.Podcast
	if err := db.First(&podcast, "id = ?", podcastID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy podcast"})
		return
	}
	if podcast.PodcasterID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không phải chủ podcast này"})
		return
	}

	var req CreateEpisodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	episode := models.Episode{
		ID:          uuid.New(),
		PodcastID:   podcastID,
		Name:        req.Name,
		Description: req.Description,
		AudioURL:    req.AudioURL,
		DurationSec: req.DurationSec,
	}
	if err := db.Create(&episode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo tập podcast"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo tập podcast thành công",
		"data":    episode,
	})
}

// GetMyPodcasts lấy danh sách podcast của chính user
// GET /api/podcasts/mine
func GetMyPodcasts(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}

	var podcasts []models.Podcast
	if err := db.Preload("Episodes").
		Where("podcaster_id = ?", user.ID).
		Order("created_at DESC").
		Find(&podcasts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách podcast"})
		return
	}

	responses := make([]services.PodcastResponse, 0, len(podcasts))
	for _, p := range podcasts {
		responses = append(responses, services.NewPodcastResponse(p, domainURL(c)))
	}
	c.JSON(http.StatusOK, responses)
}

// GetPodcast lấy chi tiết một podcast kèm các tập
// GET /api/podcasts/:podcast_id
func GetPodcast(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	podcastID, ok := parseIDParam(c, "podcast_id")
	if !ok {
		return
	}

	var podcast models.Podcast
	if err := db.Preload("Episodes").First(&podcast, "id = ?", podcastID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy podcast"})
		return
	}

	episodes := make([]services.EpisodeResponse, 0, len(podcast.Episodes))
	for _, e := range podcast.Episodes {
		episodes = append(episodes, services.NewEpisodeResponse(e, domainURL(c)))
	}

	c.JSON(http.StatusOK, gin.H{
		"podcast":  services.NewPodcastResponse(podcast, domainURL(c)),
		"episodes": episodes,
	})
}
