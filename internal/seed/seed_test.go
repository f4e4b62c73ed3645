package seed

import (
	"testing"

	"gamerforum/internal/database"
	"gamerforum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestSeeder_PopulatesAllLevels(t *testing.T) {
	db := testDB(t)
	s := NewSeeder(db, 1)

	users, err := s.SeedUsers(5)
	require.NoError(t, err)
	assert.Len(t, users, 6) // 5 members plus the admin

	games, err := s.SeedCatalog(8)
	require.NoError(t, err)
	assert.Len(t, games, 8)

	require.NoError(t, s.SeedDiscussions(users, games, 10))

	var posts int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.EqualValues(t, 10, posts)

	// Every vote must reference a live comment and user.
	var orphans int64
	require.NoError(t, db.Model(&models.Vote{}).
		Joins("LEFT JOIN comments ON comments.id = votes.comment_id").
		Where("comments.id IS NULL").
		Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestSeeder_ClearAll(t *testing.T) {
	db := testDB(t)
	s := NewSeeder(db, 1)

	users, err := s.SeedUsers(2)
	require.NoError(t, err)
	games, err := s.SeedCatalog(2)
	require.NoError(t, err)
	require.NoError(t, s.SeedDiscussions(users, games, 3))

	require.NoError(t, s.ClearAll())

	for _, m := range []any{
		&models.Vote{}, &models.Comment{}, &models.Post{},
		&models.Game{}, &models.Category{}, &models.User{},
	} {
		var n int64
		require.NoError(t, db.Unscoped().Model(m).Count(&n).Error)
		assert.Zero(t, n, "%T", m)
	}
}
