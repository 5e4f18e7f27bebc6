package server

import (
	"github.com/gofiber/fiber/v2"
)

// homepagePostCount is the fixed window of recent posts shown on the homepage.
const homepagePostCount = 5

// Home handles GET /: the most recent posts, newest first.
func (s *Server) Home(c *fiber.Ctx) error {
	posts, err := s.posts.Recent(c.Context(), homepagePostCount)
	if err != nil {
		return err
	}
	return s.render(c, "posts/homepage", fiber.Map{"Posts": posts})
}
