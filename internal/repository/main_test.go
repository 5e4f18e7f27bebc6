package repository

import (
	"testing"
	"time"

	"blogly/internal/database"
	"blogly/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, first, last string) *models.User {
	t.Helper()
	user := &models.User{FirstName: first, LastName: last, ImageURL: models.DefaultImageURL}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func createPost(t *testing.T, db *gorm.DB, user *models.User, title string, createdAt time.Time, tags ...models.Tag) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:     title,
		Content:   "content of " + title,
		UserID:    user.ID,
		CreatedAt: createdAt,
		Tags:      tags,
	}
	require.NoError(t, db.Omit("Tags.*").Create(post).Error)
	return post
}

func countJoinRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.PostTag{}).Count(&count).Error)
	return count
}
