package rayid_test

import (
	"net/http/httptest"
	"testing"

	"formdesk/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AssignsRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())

	var local any
	app.Get("/", func(c *fiber.Ctx) error {
		local = c.Locals("ray_id")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))
	assert.Equal(t, resp.Header.Get(rayid.Header), local)
}

func TestNew_UniquePerRequest(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	first, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	second, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.NotEqual(t, first.Header.Get(rayid.Header), second.Header.Get(rayid.Header))
}
