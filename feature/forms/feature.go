package forms

import (
	"fmt"

	"formdesk/core/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Forms feature backed by the given store.
func NewFeature(st store.Store, logger *zap.Logger) (*Feature, error) {
	tpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	svc := NewService(st, logger)
	h := NewHandler(svc, tpl)
	return &Feature{service: svc, handler: h}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "forms"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
