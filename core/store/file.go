package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore persists the submission collection as a single JSON array on disk.
//
// Every load reads the whole document and every append rewrites it in full.
// There is no locking: concurrent appends race and the last writer wins.
// That is an accepted limitation of the flat-file backend; deployments that
// need write safety should use the mysql backend instead.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a file-backed store. The backing document is created
// lazily on the first successful append.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// LoadAll reads the whole backing document. A missing document is an empty
// collection; any other read or parse failure is returned as an error.
func (s *FileStore) LoadAll(ctx context.Context) ([]Submission, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Submission{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var subs []Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return subs, nil
}

// AppendOne loads the collection fresh, appends the submission and rewrites
// the whole document. A load failure is logged and treated as an empty
// collection, so a corrupted document is replaced rather than blocking new
// submissions (at the cost of the unreadable records).
func (s *FileStore) AppendOne(ctx context.Context, sub Submission) error {
	subs, err := s.LoadAll(ctx)
	if err != nil {
		s.logger.Warn("Failed to load existing submissions, starting fresh", zap.Error(err))
		subs = []Submission{}
	}

	subs = append(subs, sub)

	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode submissions: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
