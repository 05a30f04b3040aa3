package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/podcast-social-backend/models"
)

// setupTestDB tạo database sqlite in-memory với đầy đủ schema cho test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Podcast{},
		&models.Episode{},
		&models.UserEpisodeInteraction{},
		&models.Comment{},
		&models.CommentReply{},
		&models.EpisodeLike{},
		&models.CommentLike{},
		&models.CommentReplyLike{},
		&models.PodcastRating{},
	)
	require.NoError(t, err)

	return db
}

// createUser tạo user với tuổi cho trước (tính theo năm sinh).
func createUser(t *testing.T, db *gorm.DB, name string, age uint) *models.User {
	t.Helper()

	user := &models.User{
		ID:          uuid.New(),
		FullName:    name,
		Email:       name + "-" + uuid.NewString() + "@test.local",
		Password:    "hashed",
		Role:        models.RoleUser,
		DateOfBirth: time.Now().AddDate(-int(age), 0, 0),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createPodcaster(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := createUser(t, db, name, 35)
	user.Role = models.RolePodcaster
	require.NoError(t, db.Save(user).Error)
	return user
}

func createPodcast(t *testing.T, db *gorm.DB, owner *models.User, name string) models.Podcast {
	t.Helper()

	podcast := models.Podcast{
		ID:          uuid.New(),
		PodcasterID: owner.ID,
		Name:        name,
	}
	require.NoError(t, db.Create(&podcast).Error)
	return podcast
}

func createEpisode(t *testing.T, db *gorm.DB, podcast models.Podcast, name string) models.Episode {
	t.Helper()

	episode := models.Episode{
		ID:        uuid.New(),
		PodcastID: podcast.ID,
		Name:      name,
	}
	require.NoError(t, db.Create(&episode).Error)
	return episode
}

// createInteraction ghi một dòng telemetry nghe của user trên episode.
func createInteraction(t *testing.T, db *gorm.DB, user *models.User, episode models.Episode, clicks int, listenSeconds int64) {
	t.Helper()

	interaction := models.UserEpisodeInteraction{
		UserID:          user.ID,
		EpisodeID:       episode.ID,
		HasListened:     true,
		Clicks:          clicks,
		TotalListenTime: listenSeconds,
		DateListened:    time.Now(),
	}
	require.NoError(t, db.Create(&interaction).Error)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
