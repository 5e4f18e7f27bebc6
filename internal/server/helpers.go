package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a numeric path parameter. A non-numeric value behaves like
// a missing row: the route renders the 404 page.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}

// formIDs collects the numeric values of a repeated multi-select form field.
// Values that do not parse are skipped.
func formIDs(c *fiber.Ctx, key string) []uint {
	var ids []uint
	for _, v := range c.Request().PostArgs().PeekMulti(key) {
		if id, err := strconv.ParseUint(string(v), 10, 32); err == nil {
			ids = append(ids, uint(id))
		}
	}
	return ids
}

// render wraps c.Render, attaching and clearing any pending flash messages.
func (s *Server) render(c *fiber.Ctx, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["Flashes"] = s.flash.PopAll(c)
	return c.Render(name, bind)
}
