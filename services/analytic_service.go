package services

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/podcast-social-backend/models"
)

// AnalyticService tính các thống kê thính giả cho chủ podcast.
// Mọi query đều chạy trên scope đã xác minh quyền sở hữu.
type AnalyticService struct {
	db *gorm.DB
}

func NewAnalyticService(db *gorm.DB) *AnalyticService {
	return &AnalyticService{db: db}
}

// resolveScope nhận ID podcast hoặc episode và trả về danh sách episode ID
// thuộc scope. Ưu tiên podcast; nếu không phải podcast thì thử episode và
// kiểm tra podcast cha có thuộc user không. Không phân biệt "không tồn tại"
// với "không phải chủ sở hữu", cả hai đều là ErrNotFound.
func (s *AnalyticService) resolveScope(podcastOrEpisodeID uuid.UUID, user *models.User) ([]uuid.UUID, error) {
	var podcast models.Podcast
	err := s.db.First(&podcast, "id = ? AND podcaster_id = ?", podcastOrEpisodeID, user.ID).Error
	if err == nil {
		var episodeIDs []uuid.UUID
		if err := s.db.Model(&models.Episode{}).
			Where("podcast_id = ?", podcast.ID).
			Pluck("id", &episodeIDs).Error; err != nil {
			return nil, err
		}
		return episodeIDs, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var episode models.Episode
	if err := s.db.First(&episode, "id = ?", podcastOrEpisodeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.db.First(&podcast, "id = ? AND podcaster_id = ?", episode.PodcastID, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []uuid.UUID{episode.ID}, nil
}

func (s *AnalyticService) scopeInteractions(episodeIDs []uuid.UUID, withUser bool) ([]models.UserEpisodeInteraction, error) {
	if len(episodeIDs) == 0 {
		return nil, nil
	}
	query := s.db.Where("episode_id IN ?", episodeIDs)
	if withUser {
		query = query.Preload("User")
	}
	var interactions []models.UserEpisodeInteraction
	if err := query.Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

// Tuổi xấp xỉ theo năm, không tính tới ngày sinh trong năm.
func audienceAge(u models.User) uint {
	age := time.Now().Year() - u.DateOfBirth.Year()
	if age < 0 {
		return 0
	}
	return uint(age)
}

// GetAverageAudienceAge trả về tuổi trung bình của thính giả; mỗi interaction
// là một mẫu (user nghe 3 tập đóng góp 3 mẫu).
func (s *AnalyticService) GetAverageAudienceAge(podcastOrEpisodeID uuid.UUID, user *models.User) (uint, error) {
	episodeIDs, err := s.resolveScope(podcastOrEpisodeID, user)
	if err != nil {
		return 0, err
	}
	interactions, err := s.scopeInteractions(episodeIDs, true)
	if err != nil {
		return 0, err
	}
	if len(interactions) == 0 {
		return 0, ErrNoData
	}

	var sum uint
	for _, uei := range interactions {
		sum += audienceAge(uei.User)
	}
	return sum / uint(len(interactions)), nil
}

// GetAgeRangeInfo trả về số thính giả trong khoảng tuổi [min, max].
func (s *AnalyticService) GetAgeRangeInfo(podcastOrEpisodeID uuid.UUID, min, max uint, user *models.User) (AgeRangeResponse, error) {
	if min > max {
		return AgeRangeResponse{}, ErrInvalidArgument
	}

	episodeIDs, err := s.resolveScope(podcastOrEpisodeID, user)
	if err != nil {
		return AgeRangeResponse{}, err
	}
	interactions, err := s.scopeInteractions(episodeIDs, true)
	if err != nil {
		return AgeRangeResponse{}, err
	}
	if len(interactions) == 0 {
		return AgeRangeResponse{}, ErrNoData
	}

	var ages []uint
	for _, uei := range interactions {
		if age := audienceAge(uei.User); age >= min && age <= max {
			ages = append(ages, age)
		}
	}
	return NewAgeRangeResponse(ages, uint(len(interactions))), nil
}

// GetAgeRangeDistributionInfo chia thính giả vào các bucket tuổi có độ rộng
// ageInterval, trả về theo thứ tự bucket tăng dần.
func (s *AnalyticService) GetAgeRangeDistributionInfo(podcastOrEpisodeID uuid.UUID, ageInterval uint, user *models.User) ([]AgeRangeResponse, error) {
	if ageInterval == 0 {
		return nil, ErrInvalidArgument
	}

	episodeIDs, err := s.resolveScope(podcastOrEpisodeID, user)
	if err != nil {
		return nil, err
	}
	interactions, err := s.scopeInteractions(episodeIDs, true)
	if err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return nil, ErrNoData
	}

	buckets := make(map[uint][]uint)
	for _, uei := range interactions {
		age := audienceAge(uei.User)
		buckets[age/ageInterval] = append(buckets[age/ageInterval], age)
	}

	keys := make([]uint, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	responses := make([]AgeRangeResponse, 0, len(keys))
	for _, k := range keys {
		responses = append(responses, NewAgeRangeResponse(buckets[k], uint(len(interactions))))
	}
	return responses, nil
}

// GetAverageWatchTime chia tổng thời gian nghe cho tổng lượt click.
// Tổng click bằng 0 trả về ErrDivisionByZero thay vì giá trị không xác định.
func (s *AnalyticService) GetAverageWatchTime(podcastOrEpisodeID uuid.UUID, user *models.User) (time.Duration, error) {
	episodeIDs, err := s.resolveScope(podcastOrEpisodeID, user)
	if err != nil {
		return 0, err
	}
	interactions, err := s.scopeInteractions(episodeIDs, false)
	if err != nil {
		return 0, err
	}
	if len(interactions) == 0 {
		return 0, ErrNoData
	}

	var watchSeconds, clicks int64
	for _, uei := range interactions {
		watchSeconds += uei.TotalListenTime
		clicks += int64(uei.Clicks)
	}
	if clicks == 0 {
		return 0, ErrDivisionByZero
	}
	return time.Duration(float64(watchSeconds)/float64(clicks)*float64(time.Second)), nil
}

// GetTotalWatchTime trả về tổng thời gian nghe của scope.
func (s *AnalyticService) GetTotalWatchTime(podcastOrEpisodeID uuid.UUID, user *models.User) (time.Duration, error) {
	episodeIDs, err := s.resolveScope(podcastOrEpisodeID, user)
	if err != nil {
		return 0, err
	}
	interactions, err := s.scopeInteractions(episodeIDs, false)
	if err != nil {
		return 0, err
	}
	if len(interactions) == 0 {
		return 0, ErrNoData
	}

	var watchSeconds int64
	for _, uei := range interactions {
		watchSeconds += uei.TotalListenTime
	}
	return time.Duration(watchSeconds) * time.Second, nil
}

// GetWatchTimeRangeInfo trả về thống kê các interaction có thời gian nghe
// trong khoảng [minTime, maxTime].
func (s *AnalyticService) GetWatchTimeRangeInfo(podcastOrEpisodeID uuid.UUID, user *models.User, minTime, maxTime time.Duration) (WatchTimeRangeResponse, error) {
	if minTime > maxTime {
		return WatchTimeRangeResponse{}, ErrInvalidArgument
	}

	episodeIDs, err := s.resolveScope(podcastOrEpisodeID, user)
	if err != nil {
		return WatchTimeRangeResponse{}, err
	}
	interactions, err := s.scopeInteractions(episodeIDs, false)
	if err != nil {
		return WatchTimeRangeResponse{}, err
	}
	if len(interactions) == 0 {
		return WatchTimeRangeResponse{}, ErrNoData
	}

	var totalClicks int64
	var totalWatchSeconds int64
	var filtered []models.UserEpisodeInteraction
	for _, uei := range interactions {
		totalClicks += int64(uei.Clicks)
		totalWatchSeconds += uei.TotalListenTime
		watch := time.Duration(uei.TotalListenTime) * time.Second
		if watch >= minTime && watch <= maxTime {
			filtered = append(filtered, uei)
		}
	}
	return NewWatchTimeRangeResponse(filtered, int(totalClicks), time.Duration(totalWatchSeconds)*time.Second), nil
}

// GetWatchTimeDistributionInfo chia interaction vào các bucket thời gian nghe
// có độ rộng timeInterval (phút nếu intervalInMinutes), thứ tự bucket tăng dần.
func (s *AnalyticService) GetWatchTimeDistributionInfo(podcastOrEpisodeID uuid.UUID, user *models.User, timeInterval uint, intervalInMinutes bool) ([]WatchTimeRangeResponse, error) {
	if timeInterval == 0 {
		return nil, ErrInvalidArgument
	}
	if intervalInMinutes {
		timeInterval *= 60
	}

	episodeIDs, err := s.resolveScope(podcastOrEpisodeID, user)
	if err != nil {
		return nil, err
	}
	interactions, err := s.scopeInteractions(episodeIDs, false)
	if err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return nil, ErrNoData
	}

	var totalClicks int64
	var totalWatchSeconds int64
	buckets := make(map[int64][]models.UserEpisodeInteraction)
	for _, uei := range interactions {
		totalClicks += int64(uei.Clicks)
		totalWatchSeconds += uei.TotalListenTime
		key := uei.TotalListenTime / int64(timeInterval)
		buckets[key] = append(buckets[key], uei)
	}

	keys := make([]int64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	totalWatchTime := time.Duration(totalWatchSeconds) * time.Second
	responses := make([]WatchTimeRangeResponse, 0, len(keys))
	for _, k := range keys {
		responses = append(responses, NewWatchTimeRangeResponse(buckets[k], int(totalClicks), totalWatchTime))
	}
	return responses, nil
}

// GetUserEngagementMetrics tổng hợp comment, like và telemetry nghe của scope.
// Scope chưa có interaction nào vẫn trả về số comment/like.
func (s *AnalyticService) GetUserEngagementMetrics(podcastOrEpisodeID uuid.UUID, user *models.User) (UserEngagementMetricsResponse, error) {
	episodeIDs, err := s.resolveScope(podcastOrEpisodeID, user)
	if err != nil {
		return UserEngagementMetricsResponse{}, err
	}

	commentsCount, err := s.episodesMetric(metricComments, episodeIDs)
	if err != nil {
		return UserEngagementMetricsResponse{}, err
	}
	likesCount, err := s.episodesMetric(metricLikes, episodeIDs)
	if err != nil {
		return UserEngagementMetricsResponse{}, err
	}
	interactions, err := s.scopeInteractions(episodeIDs, false)
	if err != nil {
		return UserEngagementMetricsResponse{}, err
	}
	return NewUserEngagementMetricsResponse(interactions, commentsCount, likesCount), nil
}

// Metric xếp hạng cho top-N.
type rankMetric int

const (
	metricComments rankMetric = iota
	metricLikes
	metricClicks
	metricWatchTime
)

// episodesMetric tính tổng metric trên một tập episode.
func (s *AnalyticService) episodesMetric(m rankMetric, episodeIDs []uuid.UUID) (int64, error) {
	if len(episodeIDs) == 0 {
		return 0, nil
	}

	var n int64
	switch m {
	case metricComments:
		err := s.db.Model(&models.Comment{}).
			Where("episode_id IN ?", episodeIDs).
			Count(&n).Error
		return n, err
	case metricLikes:
		err := s.db.Model(&models.EpisodeLike{}).
			Where("episode_id IN ?", episodeIDs).
			Count(&n).Error
		return n, err
	case metricClicks:
		err := s.db.Model(&models.UserEpisodeInteraction{}).
			Where("episode_id IN ?", episodeIDs).
			Select("COALESCE(SUM(clicks), 0)").
			Scan(&n).Error
		return n, err
	default:
		err := s.db.Model(&models.UserEpisodeInteraction{}).
			Where("episode_id IN ?", episodeIDs).
			Select("COALESCE(SUM(total_listen_time), 0)").
			Scan(&n).Error
		return n, err
	}
}

// topPodcasts xếp hạng podcast của user theo metric, giảm dần (hoặc tăng dần
// cho biến thể "least"). Metric bằng nhau thì so ID để kết quả ổn định.
func (s *AnalyticService) topPodcasts(m rankMetric, count int, least bool, user *models.User, domainURL string) ([]PodcastResponse, error) {
	if count <= 0 {
		return nil, ErrInvalidArgument
	}

	var podcasts []models.Podcast
	if err := s.db.Preload("Episodes").
		Where("podcaster_id = ?", user.ID).
		Find(&podcasts).Error; err != nil {
		return nil, err
	}

	type ranked struct {
		podcast models.Podcast
		value   int64
	}
	entries := make([]ranked, 0, len(podcasts))
	for _, p := range podcasts {
		episodeIDs := make([]uuid.UUID, 0, len(p.Episodes))
		for _, e := range p.Episodes {
			episodeIDs = append(episodeIDs, e.ID)
		}
		value, err := s.episodesMetric(m, episodeIDs)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ranked{podcast: p, value: value})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			if least {
				return entries[i].value < entries[j].value
			}
			return entries[i].value > entries[j].value
		}
		return entries[i].podcast.ID.String() < entries[j].podcast.ID.String()
	})

	if count > len(entries) {
		count = len(entries)
	}
	responses := make([]PodcastResponse, 0, count)
	for _, entry := range entries[:count] {
		responses = append(responses, NewPodcastResponse(entry.podcast, domainURL))
	}
	return responses, nil
}

// topEpisodes xếp hạng các tập của một podcast thuộc user.
func (s *AnalyticService) topEpisodes(m rankMetric, podcastID uuid.UUID, count int, least bool, user *models.User, domainURL string) ([]EpisodeResponse, error) {
	if count <= 0 {
		return nil, ErrInvalidArgument
	}

	var n int64
	if err := s.db.Model(&models.Podcast{}).
		Where("id = ? AND podcaster_id = ?", podcastID, user.ID).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	var episodes []models.Episode
	if err := s.db.Where("podcast_id = ?", podcastID).Find(&episodes).Error; err != nil {
		return nil, err
	}

	type ranked struct {
		episode models.Episode
		value   int64
	}
	entries := make([]ranked, 0, len(episodes))
	for _, e := range episodes {
		value, err := s.episodesMetric(m, []uuid.UUID{e.ID})
		if err != nil {
			return nil, err
		}
		entries = append(entries, ranked{episode: e, value: value})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			if least {
				return entries[i].value < entries[j].value
			}
			return entries[i].value > entries[j].value
		}
		return entries[i].episode.ID.String() < entries[j].episode.ID.String()
	})

	if count > len(entries) {
		count = len(entries)
	}
	responses := make([]EpisodeResponse, 0, count)
	for _, entry := range entries[:count] {
		responses = append(responses, NewEpisodeResponse(entry.episode, domainURL))
	}
	return responses, nil
}

func (s *AnalyticService) GetTopCommentedPodcasts(count int, getLeastCommented bool, user *models.User, domainURL string) ([]PodcastResponse, error) {
	return s.topPodcasts(metricComments, count, getLeastCommented, user, domainURL)
}

func (s *AnalyticService) GetTopCommentedEpisodes(podcastID uuid.UUID, count int, getLeastCommented bool, user *models.User, domainURL string) ([]EpisodeResponse, error) {
	return s.topEpisodes(metricComments, podcastID, count, getLeastCommented, user, domainURL)
}

func (s *AnalyticService) GetTopLikedPodcasts(count int, getLeastLiked bool, user *models.User, domainURL string) ([]PodcastResponse, error) {
	return s.topPodcasts(metricLikes, count, getLeastLiked, user, domainURL)
}

func (s *AnalyticService) GetTopLikedEpisodes(podcastID uuid.UUID, count int, getLeastLiked bool, user *models.User, domainURL string) ([]EpisodeResponse, error) {
	return s.topEpisodes(metricLikes, podcastID, count, getLeastLiked, user, domainURL)
}

func (s *AnalyticService) GetTopClickedPodcasts(count int, getLeastClicked bool, user *models.User, domainURL string) ([]PodcastResponse, error) {
	return s.topPodcasts(metricClicks, count, getLeastClicked, user, domainURL)
}

func (s *AnalyticService) GetTopClickedEpisodes(podcastID uuid.UUID, count int, getLeastClicked bool, user *models.User, domainURL string) ([]EpisodeResponse, error) {
	return s.topEpisodes(metricClicks, podcastID, count, getLeastClicked, user, domainURL)
}

func (s *AnalyticService) GetTopWatchedPodcasts(count int, getLeastWatched bool, user *models.User, domainURL string) ([]PodcastResponse, error) {
	return s.topPodcasts(metricWatchTime, count, getLeastWatched, user, domainURL)
}

func (s *AnalyticService) GetTopWatchedEpisodes(podcastID uuid.UUID, count int, getLeastWatched bool, user *models.User, domainURL string) ([]EpisodeResponse, error) {
	return s.topEpisodes(metricWatchTime, podcastID, count, getLeastWatched, user, domainURL)
}
