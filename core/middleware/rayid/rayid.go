package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request's ray ID.
const Header = "X-Ray-ID"

// New returns a middleware that assigns a unique ray ID to every request.
// The ID is stored in the context locals under "ray_id" and echoed in the
// response header so clients can reference it when reporting problems.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals("ray_id", id)
		c.Set(Header, id)
		return c.Next()
	}
}
