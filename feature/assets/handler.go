package assets

import (
	"errors"
	"strings"

	"formdesk/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for static assets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catch-all asset route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleGetAsset)
}

// HandleGetAsset serves a file from the public root.
// @Summary Serve Static Asset
// @Description Serves the file at the request path relative to the public root. The empty path maps to the default document.
// @Tags assets
// @Produce octet-stream
// @Param path path string false "Asset path"
// @Success 200 {file} file "Asset content"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not Found"
// @Router /{path} [get]
func (h *Handler) HandleGetAsset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	// Resolve against the raw request URI: the router normalizes away dot
	// segments, which would hide traversal attempts from the guard.
	reqPath := c.OriginalURL()
	if i := strings.IndexByte(reqPath, '?'); i >= 0 {
		reqPath = reqPath[:i]
	}

	content, contentType, err := h.service.Get(c.Context(), reqPath)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			l.Warn("Path traversal rejected", zap.String("path", reqPath))
			return c.Status(fiber.StatusForbidden).SendString("Forbidden")
		}
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(content)
}
