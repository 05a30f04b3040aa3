package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/podcast-social-backend/models"
)

func TestAddLikeEpisode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	episode := createEpisode(t, db, podcast, "Tập 1")
	listener := createUser(t, db, "listener", 25)

	require.NoError(t, svc.AddLike(episode.ID, listener))

	liked, err := svc.IsLiked(episode.ID, listener)
	require.NoError(t, err)
	assert.True(t, liked)

	// Like lần hai trên cùng target phải bị chặn
	err = svc.AddLike(episode.ID, listener)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, int64(1), countRows(t, db, &models.EpisodeLike{}))
}

func TestAddLikeResolvesCommentAndReply(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	episode := createEpisode(t, db, podcast, "Tập 1")
	listener := createUser(t, db, "listener", 25)

	require.NoError(t, svc.AddComment(episode.ID, listener, "hay quá"))
	var comment models.Comment
	require.NoError(t, db.First(&comment).Error)

	require.NoError(t, svc.AddComment(comment.ID, listener, "đồng ý"))
	var reply models.CommentReply
	require.NoError(t, db.First(&reply).Error)

	require.NoError(t, svc.AddLike(comment.ID, listener))
	require.NoError(t, svc.AddLike(reply.ID, listener))

	assert.Equal(t, int64(1), countRows(t, db, &models.CommentLike{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.CommentReplyLike{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.EpisodeLike{}))
}

func TestAddLikeUnknownTarget(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	listener := createUser(t, db, "listener", 25)

	err := svc.AddLike(uuid.New(), listener)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveLike(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	episode := createEpisode(t, db, podcast, "Tập 1")
	listener := createUser(t, db, "listener", 25)

	require.NoError(t, svc.AddLike(episode.ID, listener))
	require.NoError(t, svc.RemoveLike(episode.ID, listener))

	liked, err := svc.IsLiked(episode.ID, listener)
	require.NoError(t, err)
	assert.False(t, liked)

	// Gỡ like không tồn tại
	err = svc.RemoveLike(episode.ID, listener)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentOnReplyRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	episode := createEpisode(t, db, podcast, "Tập 1")
	listener := createUser(t, db, "listener", 25)

	require.NoError(t, svc.AddComment(episode.ID, listener, "bình luận gốc"))
	var comment models.Comment
	require.NoError(t, db.First(&comment).Error)

	require.NoError(t, svc.AddComment(comment.ID, listener, "trả lời"))
	var reply models.CommentReply
	require.NoError(t, db.First(&reply).Error)

	// Reply không thể là cha của một bình luận khác
	err := svc.AddComment(reply.ID, listener, "trả lời của trả lời")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(1), countRows(t, db, &models.CommentReply{}))
}

func TestRemoveCommentCascade(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	episode := createEpisode(t, db, podcast, "Tập 1")
	author := createUser(t, db, "author", 25)
	other := createUser(t, db, "other", 30)

	require.NoError(t, svc.AddComment(episode.ID, author, "bình luận gốc"))
	var comment models.Comment
	require.NoError(t, db.First(&comment).Error)

	require.NoError(t, svc.AddComment(comment.ID, author, "trả lời 1"))
	require.NoError(t, svc.AddComment(comment.ID, other, "trả lời 2"))

	var replies []models.CommentReply
	require.NoError(t, db.Find(&replies).Error)
	require.Len(t, replies, 2)

	// Like rải trên cả comment lẫn reply
	require.NoError(t, svc.AddLike(comment.ID, other))
	require.NoError(t, svc.AddLike(replies[0].ID, other))
	require.NoError(t, svc.AddLike(replies[1].ID, author))

	// Người khác không được xóa
	err := svc.RemoveComment(comment.ID, other)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.RemoveComment(comment.ID, author))

	// Không còn dòng mồ côi nào
	assert.Equal(t, int64(0), countRows(t, db, &models.Comment{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.CommentReply{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.CommentLike{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.CommentReplyLike{}))
}

func TestRemoveReplyOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	episode := createEpisode(t, db, podcast, "Tập 1")
	author := createUser(t, db, "author", 25)
	other := createUser(t, db, "other", 30)

	require.NoError(t, svc.AddComment(episode.ID, author, "bình luận gốc"))
	var comment models.Comment
	require.NoError(t, db.First(&comment).Error)

	require.NoError(t, svc.AddComment(comment.ID, other, "trả lời"))
	var reply models.CommentReply
	require.NoError(t, db.First(&reply).Error)
	require.NoError(t, svc.AddLike(reply.ID, author))

	require.NoError(t, svc.RemoveComment(reply.ID, other))

	// Comment gốc giữ nguyên, reply và like của nó biến mất
	assert.Equal(t, int64(1), countRows(t, db, &models.Comment{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.CommentReply{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.CommentReplyLike{}))
}

func TestGetEpisodeComments(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	episode := createEpisode(t, db, podcast, "Tập 1")
	author := createUser(t, db, "author", 25)
	other := createUser(t, db, "other", 30)

	require.NoError(t, svc.AddComment(episode.ID, author, "bình luận gốc"))
	var comment models.Comment
	require.NoError(t, db.First(&comment).Error)
	require.NoError(t, svc.AddComment(comment.ID, other, "trả lời"))
	require.NoError(t, svc.AddLike(comment.ID, other))

	comments, err := svc.GetEpisodeComments(episode.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "bình luận gốc", comments[0].Text)
	assert.Equal(t, "author", comments[0].UserName)
	assert.Equal(t, 1, comments[0].LikeCount)
	require.Len(t, comments[0].Replies, 1)
	assert.Equal(t, "trả lời", comments[0].Replies[0].Text)

	_, err = svc.GetEpisodeComments(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddRatingBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	listener := createUser(t, db, "listener", 25)

	assert.ErrorIs(t, svc.AddRating(podcast.ID, listener, 0), ErrInvalidArgument)
	assert.ErrorIs(t, svc.AddRating(podcast.ID, listener, 6), ErrInvalidArgument)
	assert.ErrorIs(t, svc.AddRating(uuid.New(), listener, 3), ErrNotFound)

	require.NoError(t, svc.AddRating(podcast.ID, listener, 3))

	// Rating lần hai ghi đè, không tạo thêm dòng
	require.NoError(t, svc.AddRating(podcast.ID, listener, 5))
	assert.Equal(t, int64(1), countRows(t, db, &models.PodcastRating{}))

	rating, err := svc.GetUserRating(podcast.ID, listener)
	require.NoError(t, err)
	assert.Equal(t, uint(5), rating.Rating)
}

func TestRatingReviewLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	listener := createUser(t, db, "listener", 25)

	require.NoError(t, svc.AddRating(podcast.ID, listener, 5))
	require.NoError(t, svc.AddReview(podcast.ID, listener, "rất hay"))

	rating, err := svc.GetUserRating(podcast.ID, listener)
	require.NoError(t, err)
	assert.Equal(t, uint(5), rating.Rating)
	assert.Equal(t, "rất hay", rating.Review)
	assert.Equal(t, int64(1), countRows(t, db, &models.PodcastRating{}))

	// Gỡ rating khi còn review: giữ dòng với rating = 0
	require.NoError(t, svc.RemoveRating(podcast.ID, listener))
	rating, err = svc.GetUserRating(podcast.ID, listener)
	require.NoError(t, err)
	assert.Equal(t, uint(0), rating.Rating)
	assert.Equal(t, "rất hay", rating.Review)

	// Gỡ nốt review: dòng biến mất
	require.NoError(t, svc.RemoveReview(podcast.ID, listener))
	_, err = svc.GetUserRating(podcast.ID, listener)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), countRows(t, db, &models.PodcastRating{}))
}

func TestRemoveRatingWithoutReviewDeletesRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	listener := createUser(t, db, "listener", 25)

	require.NoError(t, svc.AddRating(podcast.ID, listener, 4))
	require.NoError(t, svc.RemoveRating(podcast.ID, listener))

	assert.Equal(t, int64(0), countRows(t, db, &models.PodcastRating{}))
	assert.ErrorIs(t, svc.RemoveRating(podcast.ID, listener), ErrNotFound)
}

func TestRemoveReviewWithoutRatingDeletesRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	listener := createUser(t, db, "listener", 25)

	require.NoError(t, svc.AddReview(podcast.ID, listener, "tạm được"))
	require.NoError(t, svc.RemoveReview(podcast.ID, listener))

	assert.Equal(t, int64(0), countRows(t, db, &models.PodcastRating{}))
}

func TestGetPodcastRatings(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSocialService(db)

	owner := createPodcaster(t, db, "owner")
	podcast := createPodcast(t, db, owner, "Podcast A")
	a := createUser(t, db, "a", 25)
	b := createUser(t, db, "b", 30)

	require.NoError(t, svc.AddRating(podcast.ID, a, 5))
	require.NoError(t, svc.AddReview(podcast.ID, b, "ổn"))

	ratings, err := svc.GetPodcastRatings(podcast.ID)
	require.NoError(t, err)
	assert.Len(t, ratings, 2)

	_, err = svc.GetPodcastRatings(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
