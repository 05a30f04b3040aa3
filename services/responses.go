package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vnkhanh/podcast-social-backend/models"
)

// Tóm tắt podcast trả về cho client, URL media dựng từ domainURL của request.
type PodcastResponse struct {
	ID           uuid.UUID `json:"id"`
	PodcasterID  uuid.UUID `json:"podcaster_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CoverArtURL  string    `json:"cover_art_url"`
	EpisodeCount int       `json:"episode_count"`
}

func NewPodcastResponse(p models.Podcast, domainURL string) PodcastResponse {
	return PodcastResponse{
		ID:           p.ID,
		PodcasterID:  p.PodcasterID,
		Name:         p.Name,
		Description:  p.Description,
		CoverArtURL:  fmt.Sprintf("%spodcasts/%s/cover", domainURL, p.ID),
		EpisodeCount: len(p.Episodes),
	}
}

type EpisodeResponse struct {
	ID          uuid.UUID `json:"id"`
	PodcastID   uuid.UUID `json:"podcast_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AudioURL    string    `json:"audio_url"`
	DurationSec int       `json:"duration_sec"`
}

func NewEpisodeResponse(e models.Episode, domainURL string) EpisodeResponse {
	return EpisodeResponse{
		ID:          e.ID,
		PodcastID:   e.PodcastID,
		Name:        e.Name,
		Description: e.Description,
		AudioURL:    fmt.Sprintf("%sepisodes/%s/audio", domainURL, e.ID),
		DurationSec: e.DurationSec,
	}
}

// Một nhóm tuổi của thính giả: khoảng tuổi quan sát được, số lượng và tỷ lệ
// trên tổng số interaction của scope.
type AgeRangeResponse struct {
	MinAge     uint    `json:"min_age"`
	MaxAge     uint    `json:"max_age"`
	Count      uint    `json:"count"`
	TotalCount uint    `json:"total_count"`
	Percentage float64 `json:"percentage"`
	AverageAge float64 `json:"average_age"`
}

func NewAgeRangeResponse(ages []uint, totalCount uint) AgeRangeResponse {
	resp := AgeRangeResponse{
		Count:      uint(len(ages)),
		TotalCount: totalCount,
	}
	if len(ages) == 0 {
		return resp
	}

	resp.MinAge = ages[0]
	resp.MaxAge = ages[0]
	var sum uint
	for _, age := range ages {
		if age < resp.MinAge {
			resp.MinAge = age
		}
		if age > resp.MaxAge {
			resp.MaxAge = age
		}
		sum += age
	}
	resp.AverageAge = float64(sum) / float64(len(ages))
	if totalCount > 0 {
		resp.Percentage = float64(len(ages)) / float64(totalCount) * 100
	}
	return resp
}

// Một nhóm thời gian nghe: thống kê trên tập interaction lọc được,
// tỷ lệ tính trên tổng watch time / tổng click của scope.
type WatchTimeRangeResponse struct {
	MinWatchTime        time.Duration `json:"min_watch_time"`
	MaxWatchTime        time.Duration `json:"max_watch_time"`
	AverageWatchTime    time.Duration `json:"average_watch_time"`
	TotalWatchTime      time.Duration `json:"total_watch_time"`
	Count               uint          `json:"count"`
	TotalClicks         int           `json:"total_clicks"`
	AverageClicks       float64       `json:"average_clicks"`
	WatchTimePercentage float64       `json:"watch_time_percentage"`
	ClicksPercentage    float64       `json:"clicks_percentage"`
}

func NewWatchTimeRangeResponse(interactions []models.UserEpisodeInteraction, totalClicks int, totalWatchTime time.Duration) WatchTimeRangeResponse {
	resp := WatchTimeRangeResponse{
		Count: uint(len(interactions)),
	}
	if len(interactions) == 0 {
		return resp
	}

	var watchSeconds, clicks int64
	minSec := interactions[0].TotalListenTime
	maxSec := interactions[0].TotalListenTime
	for _, uei := range interactions {
		if uei.TotalListenTime < minSec {
			minSec = uei.TotalListenTime
		}
		if uei.TotalListenTime > maxSec {
			maxSec = uei.TotalListenTime
		}
		watchSeconds += uei.TotalListenTime
		clicks += int64(uei.Clicks)
	}

	resp.MinWatchTime = time.Duration(minSec) * time.Second
	resp.MaxWatchTime = time.Duration(maxSec) * time.Second
	resp.TotalWatchTime = time.Duration(watchSeconds) * time.Second
	resp.AverageWatchTime = time.Duration(watchSeconds/int64(len(interactions))) * time.Second
	resp.AverageClicks = float64(clicks) / float64(len(interactions))
	if totalWatchTime > 0 {
		resp.WatchTimePercentage = float64(resp.TotalWatchTime) / float64(totalWatchTime) * 100
	}
	if totalClicks > 0 {
		resp.ClicksPercentage = float64(clicks) / float64(totalClicks) * 100
	}
	return resp
}

// Tổng hợp mức độ tương tác của một scope. Khi không có interaction nào,
// chỉ có TotalComments/TotalLikes khác 0.
type UserEngagementMetricsResponse struct {
	TotalComments    int64         `json:"total_comments"`
	TotalLikes       int64         `json:"total_likes"`
	TotalListeners   int64         `json:"total_listeners"`
	TotalClicks      int64         `json:"total_clicks"`
	TotalWatchTime   time.Duration `json:"total_watch_time"`
	AverageClicks    float64       `json:"average_clicks"`
	AverageWatchTime time.Duration `json:"average_watch_time"`
}

func NewUserEngagementMetricsResponse(interactions []models.UserEpisodeInteraction, commentsCount, likesCount int64) UserEngagementMetricsResponse {
	resp := UserEngagementMetricsResponse{
		TotalComments:  commentsCount,
		TotalLikes:     likesCount,
		TotalListeners: int64(len(interactions)),
	}
	if len(interactions) == 0 {
		return resp
	}

	var watchSeconds int64
	for _, uei := range interactions {
		resp.TotalClicks += int64(uei.Clicks)
		watchSeconds += uei.TotalListenTime
	}
	resp.TotalWatchTime = time.Duration(watchSeconds) * time.Second
	resp.AverageClicks = float64(resp.TotalClicks) / float64(len(interactions))
	resp.AverageWatchTime = time.Duration(watchSeconds/int64(len(interactions))) * time.Second
	return resp
}

// Một node trong cây bình luận của một tập.
type CommentResponse struct {
	ID        uuid.UUID              `json:"id"`
	EpisodeID uuid.UUID              `json:"episode_id"`
	UserID    uuid.UUID              `json:"user_id"`
	UserName  string                 `json:"user_name"`
	Text      string                 `json:"text"`
	LikeCount int                    `json:"like_count"`
	CreatedAt string                 `json:"created_at"`
	Replies   []CommentReplyResponse `json:"replies"`
}

type CommentReplyResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	LikeCount int       `json:"like_count"`
	CreatedAt string    `json:"created_at"`
}

func NewCommentResponse(c models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		EpisodeID: c.EpisodeID,
		UserID:    c.UserID,
		UserName:  c.User.FullName,
		Text:      c.Text,
		LikeCount: len(c.Likes),
		CreatedAt: c.CreatedAt.Format("02/01/2006 15:04"),
		Replies:   []CommentReplyResponse{},
	}
	for _, r := range c.Replies {
		resp.Replies = append(resp.Replies, CommentReplyResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			UserName:  r.User.FullName,
			Text:      r.Text,
			LikeCount: len(r.Likes),
			CreatedAt: r.CreatedAt.Format("02/01/2006 15:04"),
		})
	}
	return resp
}
