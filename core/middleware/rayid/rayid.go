// Package rayid tags every request with a unique Ray ID.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the Ray ID.
const Header = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key the Ray ID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that reuses an incoming X-Ray-ID or generates one.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
