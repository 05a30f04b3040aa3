package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/podcast-social-backend/controllers"
	"github.com/vnkhanh/podcast-social-backend/middleware"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Quản lý podcast (chỉ podcaster/admin)
	podcasts := api.Group("/podcasts")
	{
		podcasts.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		podcasts.GET("/mine", controllers.GetMyPodcasts)
		podcasts.GET("/:podcast_id", controllers.GetPodcast)
		podcasts.POST("", middleware.RequireRoles("podcaster", "admin"), controllers.CreatePodcast)
		podcasts.POST("/:podcast_id/episodes", middleware.RequireRoles("podcaster", "admin"), controllers.CreateEpisode)
	}

	// Telemetry nghe
	episodes := api.Group("/episodes")
	{
		episodes.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		episodes.POST("/:id/listen", controllers.SaveEpisodeListen)
		episodes.GET("/listen-history", controllers.GetListenHistory)
	}

	// Like, bình luận, rating/review
	social := api.Group("/social")
	{
		social.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		social.POST("/:id/like", controllers.AddLike)
		social.DELETE("/:id/like", controllers.RemoveLike)
		social.GET("/:id/liked", controllers.IsLiked)
		social.POST("/:id/comment", controllers.AddComment)
		social.DELETE("/comment/:id", controllers.RemoveComment)
		social.GET("/episode/:id/comments", controllers.GetEpisodeComments)
		social.POST("/rating/:podcast_id", controllers.AddRating)
		social.DELETE("/rating/:podcast_id", controllers.RemoveRating)
		social.GET("/rating/:podcast_id", controllers.GetPodcastRatings)
		social.GET("/rating/:podcast_id/me", controllers.GetMyRating)
		social.POST("/review/:podcast_id", controllers.AddReview)
		social.DELETE("/review/:podcast_id", controllers.RemoveReview)
	}

	// Thống kê cho chủ podcast
	analytic := api.Group("/analytic")
	{
		analytic.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))
		analytic.GET("/podcasts/top-commented", controllers.GetTopCommentedPodcasts)
		analytic.GET("/podcasts/top-liked", controllers.GetTopLikedPodcasts)
		analytic.GET("/podcasts/top-clicked", controllers.GetTopClickedPodcasts)
		analytic.GET("/podcasts/top-watched", controllers.GetTopWatchedPodcasts)
		analytic.GET("/:id/average-age", controllers.GetAverageAudienceAge)
		analytic.GET("/:id/age-range", controllers.GetAgeRangeInfo)
		analytic.GET("/:id/age-distribution", controllers.GetAgeRangeDistributionInfo)
		analytic.GET("/:id/average-watch-time", controllers.GetAverageWatchTime)
		analytic.GET("/:id/total-watch-time", controllers.GetTotalWatchTime)
		analytic.GET("/:id/watch-time-range", controllers.GetWatchTimeRangeInfo)
		analytic.GET("/:id/watch-time-distribution", controllers.GetWatchTimeDistributionInfo)
		analytic.GET("/:id/engagement", controllers.GetUserEngagementMetrics)
		analytic.GET("/:id/episodes/top-commented", controllers.GetTopCommentedEpisodes)
		analytic.GET("/:id/episodes/top-liked", controllers.GetTopLikedEpisodes)
		analytic.GET("/:id/episodes/top-clicked", controllers.GetTopClickedEpisodes)
		analytic.GET("/:id/episodes/top-watched", controllers.GetTopWatchedEpisodes)
	}

	return r
}
