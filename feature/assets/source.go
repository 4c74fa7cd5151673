package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"formdesk/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source supplies asset content by name. Names are relative, slash-separated
// paths that have already passed the traversal guard.
type Source interface {
	// Fetch returns the content of the named asset.
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// LocalSource serves assets from a directory on disk (the public root).
type LocalSource struct {
	root string
}

// NewLocalSource creates a source rooted at the given directory.
func NewLocalSource(root string) *LocalSource {
	return &LocalSource{root: root}
}

// Fetch reads the named file under the root.
func (s *LocalSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %s: %w", name, err)
	}
	return data, nil
}

// BucketSource serves the same asset tree from an object storage bucket.
type BucketSource struct {
	client storage.Client
	bucket string
}

// NewBucketSource creates a source backed by the given bucket.
func NewBucketSource(client storage.Client, bucket string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket}
}

// Fetch downloads the named object from the bucket.
func (s *BucketSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", name, err)
	}
	return data, nil
}
