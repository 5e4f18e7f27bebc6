package server

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostsCreate_DropsUnknownTagIDs(t *testing.T) {
	app, db := newTestApp(t)
	user := mustCreateUser(t, db, "Ada", "Lovelace")
	t1 := mustCreateTag(t, db, "go")
	t2 := mustCreateTag(t, db, "web")

	resp := postForm(t, app, fmt.Sprintf("/users/%d/posts/new", user.ID), url.Values{
		"title":   {"Hello"},
		"content": {"World"},
		"tags":    {fmt.Sprint(t1.ID), fmt.Sprint(t2.ID), "999"},
	})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/users/%d", user.ID), resp.Header.Get("Location"))

	var post models.Post
	require.NoError(t, db.Preload("Tags").First(&post).Error)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, user.ID, post.UserID)
	assert.Len(t, post.Tags, 2)
}

func TestPostsCreate_UserNotFound(t *testing.T) {
	app, _ := newTestApp(t)
	resp := postForm(t, app, "/users/999/posts/new", url.Values{
		"title":   {"orphan"},
		"content": {"no owner"},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostsNewForm_ListsTags(t *testing.T) {
	app, db := newTestApp(t)
	user := mustCreateUser(t, db, "Ada", "Lovelace")
	mustCreateTag(t, db, "golang")

	page := body(t, get(t, app, fmt.Sprintf("/users/%d/posts/new", user.ID)))
	assert.Contains(t, page, "golang")
	assert.Contains(t, page, "Ada Lovelace")
}

func TestPostsShow_RendersOwnerAndTags(t *testing.T) {
	app, db := newTestApp(t)
	user := mustCreateUser(t, db, "Ada", "Lovelace")
	tag := mustCreateTag(t, db, "history")
	post := mustCreatePost(t, db, user, "Analytical Engines", time.Now(), *tag)

	page := body(t, get(t, app, fmt.Sprintf("/posts/%d", post.ID)))
	assert.Contains(t, page, "Analytical Engines")
	assert.Contains(t, page, "Ada Lovelace")
	assert.Contains(t, page, "history")
	assert.Contains(t, page, post.FriendlyDate())
}

func TestPostsShow_NotFound(t *testing.T) {
	app, _ := newTestApp(t)
	resp := get(t, app, "/posts/42")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostsEditForm_MarksCurrentTags(t *testing.T) {
	app, db := newTestApp(t)
	user := mustCreateUser(t, db, "Ada", "Lovelace")
	current := mustCreateTag(t, db, "current")
	mustCreateTag(t, db, "other")
	post := mustCreatePost(t, db, user, "draft", time.Now(), *current)

	page := body(t, get(t, app, fmt.Sprintf("/posts/%d/edit", post.ID)))
	assert.Contains(t, page, "current")
	assert.Contains(t, page, "other")
	assert.Contains(t, page, "selected")
}

func TestPostsUpdate_ReplacesTagSet(t *testing.T) {
	app, db := newTestApp(t)
	user := mustCreateUser(t, db, "Ada", "Lovelace")
	old := mustCreateTag(t, db, "old")
	next := mustCreateTag(t, db, "next")
	post := mustCreatePost(t, db, user, "draft", time.Now(), *old)

	resp := postForm(t, app, fmt.Sprintf("/posts/%d/edit", post.ID), url.Values{
		"title":   {"final"},
		"content": {"updated"},
		"tags":    {fmt.Sprint(next.ID)},
	})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/users/%d", user.ID), resp.Header.Get("Location"))

	var got models.Post
	require.NoError(t, db.Preload("Tags").First(&got, post.ID).Error)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "updated", got.Content)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "next", got.Tags[0].Name)
}

func TestPostsUpdate_NoTagsClearsSet(t *testing.T) {
	app, db := newTestApp(t)
	user := mustCreateUser(t, db, "Ada", "Lovelace")
	tag := mustCreateTag(t, db, "gone")
	post := mustCreatePost(t, db, user, "draft", time.Now(), *tag)

	postForm(t, app, fmt.Sprintf("/posts/%d/edit", post.ID), url.Values{
		"title":   {"draft"},
		"content": {"same"},
	})

	var joins int64
	require.NoError(t, db.Model(&models.PostTag{}).Count(&joins).Error)
	assert.Zero(t, joins)
}

func TestPostsDelete_RedirectsToOwner(t *testing.T) {
	app, db := newTestApp(t)
	user := mustCreateUser(t, db, "Ada", "Lovelace")
	tag := mustCreateTag(t, db, "keep")
	post := mustCreatePost(t, db, user, "doomed", time.Now(), *tag)

	resp := postForm(t, app, fmt.Sprintf("/posts/%d/delete", post.ID), url.Values{})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/users/%d", user.ID), resp.Header.Get("Location"))

	var posts, tags int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	assert.Zero(t, posts)
	assert.Equal(t, int64(1), tags)
}
