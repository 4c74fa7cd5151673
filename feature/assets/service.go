package assets

import (
	"context"
	"errors"
	"path"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrForbidden indicates the request path escapes the public root.
	ErrForbidden = errors.New("path escapes the public root")
	// ErrNotFound indicates the asset could not be loaded, whatever the cause.
	ErrNotFound = errors.New("asset not found")
)

// Service resolves request paths and serves asset content.
type Service struct {
	source Source
	index  string
	logger *zap.Logger
}

// NewService creates a new assets service.
func NewService(source Source, index string, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		index:  index,
		logger: logger,
	}
}

// Resolve maps a request path to a relative asset name. The empty path maps
// to the default document. Paths that escape the root after cleaning are
// rejected with ErrForbidden; the source is never consulted for them.
func (s *Service) Resolve(reqPath string) (string, error) {
	name := strings.TrimPrefix(reqPath, "/")
	if name == "" {
		return s.index, nil
	}

	cleaned := path.Clean(name)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") || path.IsAbs(cleaned) {
		return "", ErrForbidden
	}
	if cleaned == "." {
		return s.index, nil
	}
	return cleaned, nil
}

// Get returns the content and content type for a request path. Any fetch
// failure collapses into ErrNotFound; the cause is only logged.
func (s *Service) Get(ctx context.Context, reqPath string) ([]byte, string, error) {
	name, err := s.Resolve(reqPath)
	if err != nil {
		return nil, "", err
	}

	content, err := s.source.Fetch(ctx, name)
	if err != nil {
		s.logger.Debug("Asset fetch failed", zap.String("asset", name), zap.Error(err))
		return nil, "", ErrNotFound
	}

	return content, MimeType(name), nil
}
