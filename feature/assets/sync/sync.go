package sync

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"formdesk/core/storage"
	"formdesk/feature/assets"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service publishes the local public root into an object storage bucket and
// reports drift between the two.
type Service struct {
	client storage.Client
	bucket string
	root   string
	logger *zap.Logger
}

// NewService creates a sync service for the given public root and bucket.
func NewService(client storage.Client, bucket, root string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		root:   root,
		logger: logger,
	}
}

// Report describes the difference between the local tree and the bucket.
type Report struct {
	// Missing lists local files absent from the bucket.
	Missing []string `json:"missing"`
	// Extra lists bucket objects absent from the local tree.
	Extra []string `json:"extra"`
	// InSync is the number of names present on both sides.
	InSync int `json:"in_sync"`
}

// EnsureBucket creates the target bucket if it does not exist.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	s.logger.Info("Creating bucket", zap.String("bucket", s.bucket))
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// ListLocal walks the public root and returns relative, slash-separated
// file names in sorted order.
func (s *Service) ListLocal() ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", s.root, err)
	}
	sort.Strings(names)
	return names, nil
}

// ListBucket returns every object name in the bucket in sorted order.
func (s *Service) ListBucket(ctx context.Context) ([]string, error) {
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, obj.Err)
		}
		names = append(names, obj.Key)
	}
	sort.Strings(names)
	return names, nil
}

// Diff compares the local tree against the bucket.
func (s *Service) Diff(ctx context.Context) (*Report, error) {
	local, err := s.ListLocal()
	if err != nil {
		return nil, err
	}
	remote, err := s.ListBucket(ctx)
	if err != nil {
		return nil, err
	}

	remoteSet := make(map[string]bool, len(remote))
	for _, name := range remote {
		remoteSet[name] = true
	}
	localSet := make(map[string]bool, len(local))
	for _, name := range local {
		localSet[name] = true
	}

	report := &Report{Missing: []string{}, Extra: []string{}}
	for _, name := range local {
		if remoteSet[name] {
			report.InSync++
		} else {
			report.Missing = append(report.Missing, name)
		}
	}
	for _, name := range remote {
		if !localSet[name] {
			report.Extra = append(report.Extra, name)
		}
	}
	return report, nil
}

// Push uploads the named local files to the bucket with their table MIME
// types. It returns the number of files uploaded.
func (s *Service) Push(ctx context.Context, names []string) (int, error) {
	uploaded := 0
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(name)))
		if err != nil {
			return uploaded, fmt.Errorf("failed to read %s: %w", name, err)
		}

		_, err = s.client.PutObject(ctx, s.bucket, name,
			bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: assets.MimeType(name)})
		if err != nil {
			return uploaded, fmt.Errorf("failed to upload %s: %w", name, err)
		}

		s.logger.Info("Uploaded asset", zap.String("asset", name))
		uploaded++
	}
	return uploaded, nil
}

// Prune removes the named objects from the bucket. It returns the number of
// objects removed.
func (s *Service) Prune(ctx context.Context, names []string) (int, error) {
	removed := 0
	for _, name := range names {
		if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", name, err)
		}
		s.logger.Info("Removed stale asset", zap.String("asset", name))
		removed++
	}
	return removed, nil
}
