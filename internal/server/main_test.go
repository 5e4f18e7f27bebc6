package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/flash"
	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp builds the full application against an in-memory SQLite
// database, with the flash store in its in-process fallback mode.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:          "8080",
		SessionSecret: "test-session-secret",
		Env:           "development",
	}
	return New(cfg, db, nil).App(), db
}

func get(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func flashCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == flash.CookieName {
			return c
		}
	}
	return nil
}

func mustCreateUser(t *testing.T, db *gorm.DB, first, last string) *models.User {
	t.Helper()
	user := &models.User{FirstName: first, LastName: last, ImageURL: models.DefaultImageURL}
	require.NoError(t, db.Create(user).Error)
	return user
}

func mustCreateTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func mustCreatePost(t *testing.T, db *gorm.DB, user *models.User, title string, createdAt time.Time, tags ...models.Tag) *models.Post {
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
