package server

import (
	"fmt"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// PostsNewForm handles GET /users/:id/posts/new.
func (s *Server) PostsNewForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	tags, err := s.tags.List(c.Context())
	if err != nil {
		return err
	}
	return s.render(c, "posts/new", fiber.Map{"User": user, "Tags": tags})
}

// PostsCreate handles POST /users/:id/posts/new. Submitted tag ids that do
// not exist are dropped, not treated as an error.
func (s *Server) PostsCreate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	tags, err := s.tags.GetByIDs(c.Context(), formIDs(c, "tags"))
	if err != nil {
		return err
	}

	post := &models.Post{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		UserID:  user.ID,
		Tags:    tags,
	}
	if err := s.posts.Create(c.Context(), post); err != nil {
		return err
	}

	s.flash.Add(c, fmt.Sprintf("Post '%s' added.", post.Title))
	return c.Redirect(fmt.Sprintf("/users/%d", user.ID), fiber.StatusFound)
}

// PostsShow handles GET /posts/:id.
func (s *Server) PostsShow(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	post, err := s.posts.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return s.render(c, "posts/show", fiber.Map{"Post": post})
}

// PostsEditForm handles GET /posts/:id/edit. The full tag list is passed to
// the template so existing selections can be adjusted.
func (s *Server) PostsEditForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	post, err := s.posts.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	tags, err := s.tags.List(c.Context())
	if err != nil {
		return err
	}
	return s.render(c, "posts/edit", fiber.Map{"Post": post, "Tags": tags})
}

// PostsUpdate handles POST /posts/:id/edit. Title and content are
// overwritten and the tag set is replaced in full.
func (s *Server) PostsUpdate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	post, err := s.posts.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	tags, err := s.tags.GetByIDs(c.Context(), formIDs(c, "tags"))
	if err != nil {
		return err
	}

	post.Title = c.FormValue("title")
	post.Content = c.FormValue("content")
	if err := s.posts.UpdateWithTags(c.Context(), post, tags); err != nil {
		return err
	}

	s.flash.Add(c, fmt.Sprintf("Post '%s' edited.", post.Title))
	return c.Redirect(fmt.Sprintf("/users/%d", post.UserID), fiber.StatusFound)
}

// PostsDelete handles POST /posts/:id/delete. Only the post and its join
// rows are removed; the owner and tags stay.
func (s *Server) PostsDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	post, err := s.posts.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(c.Context(), post); err != nil {
		return err
	}

	s.flash.Add(c, fmt.Sprintf("Post '%s' deleted.", post.Title))
	return c.Redirect(fmt.Sprintf("/users/%d", post.UserID), fiber.StatusFound)
}
