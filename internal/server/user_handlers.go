package server

import (
	"fmt"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UsersIndex handles GET /users.
func (s *Server) UsersIndex(c *fiber.Ctx) error {
	users, err := s.users.List(c.Context())
	if err != nil {
		return err
	}
	return s.render(c, "users/index", fiber.Map{"Users": users})
}

// UsersNewForm handles GET /users/new.
func (s *Server) UsersNewForm(c *fiber.Ctx) error {
	return s.render(c, "users/new", nil)
}

// UsersCreate handles POST /users/new. An empty image_url falls back to the
// default placeholder.
func (s *Server) UsersCreate(c *fiber.Ctx) error {
	user := &models.User{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		ImageURL:  c.FormValue("image_url"),
	}
	if user.ImageURL == "" {
		user.ImageURL = models.DefaultImageURL
	}

	if err := s.users.Create(c.Context(), user); err != nil {
		return err
	}

	s.flash.Add(c, fmt.Sprintf("User %s added.", user.FullName()))
	return c.Redirect("/users", fiber.StatusFound)
}

// UsersShow handles GET /users/:id.
func (s *Server) UsersShow(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return s.render(c, "users/show", fiber.Map{"User": user})
}

// UsersEditForm handles GET /users/:id/edit.
func (s *Server) UsersEditForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return s.render(c, "users/edit", fiber.Map{"User": user})
}

// UsersUpdate handles POST /users/:id/edit. Form values overwrite all three
// fields verbatim; unlike creation, an empty image_url stays empty.
func (s *Server) UsersUpdate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	user.FirstName = c.FormValue("first_name")
	user.LastName = c.FormValue("last_name")
	user.ImageURL = c.FormValue("image_url")

	if err := s.users.Update(c.Context(), user); err != nil {
		return err
	}

	s.flash.Add(c, fmt.Sprintf("User %s edited.", user.FullName()))
	return c.Redirect(fmt.Sprintf("/users/%d", user.ID), fiber.StatusFound)
}

// UsersDelete handles POST /users/:id/delete. Deleting a user cascades to
// all of the user's posts.
func (s *Server) UsersDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(c.Context(), user); err != nil {
		return err
	}

	s.flash.Add(c, fmt.Sprintf("User %s deleted.", user.FullName()))
	return c.Redirect("/users", fiber.StatusFound)
}
