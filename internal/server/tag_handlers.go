package server

import (
	"fmt"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// TagsIndex handles GET /tags.
func (s *Server) TagsIndex(c *fiber.Ctx) error {
	tags, err := s.tags.List(c.Context())
	if err != nil {
		return err
	}
	return s.render(c, "tags/index", fiber.Map{"Tags": tags})
}

// TagsNewForm handles GET /tags/new.
func (s *Server) TagsNewForm(c *fiber.Ctx) error {
	posts, err := s.posts.ListAll(c.Context())
	if err != nil {
		return err
	}
	return s.render(c, "tags/new", fiber.Map{"Posts": posts})
}

// TagsCreate handles POST /tags/new. The tag may be pre-associated with a
// selection of existing posts; unknown post ids are dropped.
func (s *Server) TagsCreate(c *fiber.Ctx) error {
	posts, err := s.resolvePosts(c)
	if err != nil {
		return err
	}

	tag := &models.Tag{
		Name:  c.FormValue("name"),
		Posts: posts,
	}
	if err := s.tags.Create(c.Context(), tag); err != nil {
		return err
	}

	s.flash.Add(c, fmt.Sprintf("Tag '%s' added.", tag.Name))
	return c.Redirect("/tags", fiber.StatusFound)
}

// TagsShow handles GET /tags/:id.
func (s *Server) TagsShow(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	tag, err := s.tags.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return s.render(c, "tags/show", fiber.Map{"Tag": tag})
}

// TagsEditForm handles GET /tags/:id/edit.
func (s *Server) TagsEditForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	tag, err := s.tags.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	posts, err := s.posts.ListAll(c.Context())
	if err != nil {
		return err
	}
	return s.render(c, "tags/edit", fiber.Map{"Tag": tag, "Posts": posts})
}

// TagsUpdate handles POST /tags/:id/edit. The name is overwritten and the
// post set is replaced in full.
func (s *Server) TagsUpdate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	tag, err := s.tags.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	posts, err := s.resolvePosts(c)
	if err != nil {
		return err
	}

	tag.Name = c.FormValue("name")
	if err := s.tags.UpdateWithPosts(c.Context(), tag, posts); err != nil {
		return err
	}

	s.flash.Add(c, fmt.Sprintf("Tag '%s' edited.", tag.Name))
	return c.Redirect("/tags", fiber.StatusFound)
}

// TagsDelete handles POST /tags/:id/delete. Only the tag and its join rows
// are removed; posts stay.
func (s *Server) TagsDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	tag, err := s.tags.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	if err := s.tags.Delete(c.Context(), tag); err != nil {
		return err
	}

	s.flash.Add(c, fmt.Sprintf("Tag '%s' deleted.", tag.Name))
	return c.Redirect("/tags", fiber.StatusFound)
}

// resolvePosts loads the posts selected in the "posts" multi-select field.
func (s *Server) resolvePosts(c *fiber.Ctx) ([]models.Post, error) {
	return s.posts.GetByIDs(c.Context(), formIDs(c, "posts"))
}
