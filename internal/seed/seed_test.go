package seed

import (
	"testing"

	"blogly/internal/database"
	"blogly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRun_CreatesRequestedCounts(t *testing.T) {
	db := setupTestDB(t)
	opts := Options{Users: 3, PostsPerUser: 2, Tags: 4, MaxDays: 30}
	require.NoError(t, Run(db, opts))

	var users, posts, tags int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(6), posts)
	assert.Equal(t, int64(4), tags)
}

func TestRun_PostsBelongToUsers(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Run(db, Options{Users: 2, PostsPerUser: 1, Tags: 2, MaxDays: 7}))

	var posts []models.Post
	require.NoError(t, db.Preload("User").Find(&posts).Error)
	for _, p := range posts {
		assert.NotZero(t, p.UserID)
		assert.NotEmpty(t, p.User.FirstName)
		assert.NotEmpty(t, p.Title)
	}
}

func TestFactory_UniqueTagNames(t *testing.T) {
	db := setupTestDB(t)
	f := NewFactory(db)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		tag, err := f.CreateTag()
		require.NoError(t, err)
		assert.False(t, seen[tag.Name])
		assert.LessOrEqual(t, len(tag.Name), 50)
		seen[tag.Name] = true
	}
}

func TestRun_ZeroOptionsIsNoop(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Run(db, Options{}))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}
