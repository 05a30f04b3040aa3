package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/podcast-social-backend/models"
	"github.com/vnkhanh/podcast-social-backend/services"
)

// Helper parse query uint, trả về defaultVal nếu thiếu
func queryUint(c *gin.Context, name string, defaultVal uint) uint {
	s := c.Query(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return defaultVal
	}
	return uint(v)
}

func queryInt(c *gin.Context, name string, defaultVal int) int {
	s := c.Query(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func queryBool(c *gin.Context, name string, defaultVal bool) bool {
	s := c.Query(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// ===================== Tuổi thính giả =====================

// GET /api/analytic/:id/average-age
func GetAverageAudienceAge(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	avgAge, err := services.NewAnalyticService(db).GetAverageAudienceAge(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"average_age": avgAge})
}

// GET /api/analytic/:id/age-range?min=&max=
func GetAgeRangeInfo(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	min := queryUint(c, "min", 0)
	max := queryUint(c, "max", 0)

	info, err := services.NewAnalyticService(db).GetAgeRangeInfo(id, min, max, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GET /api/analytic/:id/age-distribution?interval=
func GetAgeRangeDistributionInfo(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	interval := queryUint(c, "interval", 0)

	distribution, err := services.NewAnalyticService(db).GetAgeRangeDistributionInfo(id, interval, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, distribution)
}

// ===================== Thời gian nghe =====================

// GET /api/analytic/:id/average-watch-time
func GetAverageWatchTime(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	avg, err := services.NewAnalyticService(db).GetAverageWatchTime(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"average_watch_time_seconds": avg.Seconds()})
}

// GET /api/analytic/:id/total-watch-time
func GetTotalWatchTime(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	total, err := services.NewAnalyticService(db).GetTotalWatchTime(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_watch_time_seconds": total.Seconds()})
}

// GET /api/analytic/:id/watch-time-range?min=&max= (giây)
func GetWatchTimeRangeInfo(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	minTime := time.Duration(queryUint(c, "min", 0)) * time.Second
	maxTime := time.Duration(queryUint(c, "max", 0)) * time.Second

	info, err := services.NewAnalyticService(db).GetWatchTimeRangeInfo(id, user, minTime, maxTime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GET /api/analytic/:id/watch-time-distribution?interval=&in_minutes=
func GetWatchTimeDistributionInfo(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	interval := queryUint(c, "interval", 1)
	inMinutes := queryBool(c, "in_minutes", true)

	distribution, err := services.NewAnalyticService(db).GetWatchTimeDistributionInfo(id, user, interval, inMinutes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, distribution)
}

// ===================== Mức độ tương tác =====================

// GET /api/analytic/:id/engagement
func GetUserEngagementMetrics(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	metrics, err := services.NewAnalyticService(db).GetUserEngagementMetrics(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// ===================== Top podcast/episode =====================

// Các endpoint top-N dùng chung query: ?count=&least=
type podcastRanker func(count int, least bool, user *models.User, domainURL string) ([]services.PodcastResponse, error)

func handleTopPodcasts(c *gin.Context, rank podcastRanker) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}

	count := queryInt(c, "count", 10)
	least := queryBool(c, "least", false)

	podcasts, err := rank(count, least, user, domainURL(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, podcasts)
}

type episodeRanker func(podcastID uuid.UUID, count int, least bool, user *models.User, domainURL string) ([]services.EpisodeResponse, error)

func handleTopEpisodes(c *gin.Context, rank episodeRanker) {
	db := c.MustGet("db").(*gorm.DB)

	user, ok := currentUser(c, db)
	if !ok {
		return
	}
	podcastID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	count := queryInt(c, "count", 10)
	least := queryBool(c, "least", false)

	episodes, err := rank(podcastID, count, least, user, domainURL(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, episodes)
}

// GET /api/analytic/podcasts/top-commented
func GetTopCommentedPodcasts(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	handleTopPodcasts(c, services.NewAnalyticService(db).GetTopCommentedPodcasts)
}

// GET /api/analytic/podcasts/top-liked
func GetTopLikedPodcasts(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	handleTopPodcasts(c, services.NewAnalyticService(db).GetTopLikedPodcasts)
}

// GET /api/analytic/podcasts/top-clicked
func GetTopClickedPodcasts(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	handleTopPodcasts(c, services.NewAnalyticService(db).GetTopClickedPodcasts)
}

// GET /api/analytic/podcasts/top-watched
func GetTopWatchedPodcasts(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	handleTopPodcasts(c, services.NewAnalyticService(db).GetTopWatchedPodcasts)
}

// GET /api/analytic/:id/episodes/top-commented
func GetTopCommentedEpisodes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	handleTopEpisodes(c, services.NewAnalyticService(db).GetTopCommentedEpisodes)
}

// GET /api/analytic/:id/episodes/top-liked
func GetTopLikedEpisodes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	handleTopEpisodes(c, services.NewAnalyticService(db).GetTopLikedEpisodes)
}

// GET /api/analytic/:id/episodes/top-clicked
func GetTopClickedEpisodes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	handleTopEpisodes(c, services.NewAnalyticService(db).GetTopClickedEpisodes)
}

// GET /api/analytic/:id/episodes/top-watched
func GetTopWatchedEpisodes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	handleTopEpisodes(c, services.NewAnalyticService(db).GetTopWatchedEpisodes)
}
