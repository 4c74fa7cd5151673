package store_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"formdesk/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFileStore(t *testing.T) (*store.FileStore, string) {
	path := filepath.Join(t.TempDir(), "submissions.json")
	return store.NewFileStore(path, zap.NewNop()), path
}

func TestFileStore_LoadAll_MissingDocument(t *testing.T) {
	s, _ := newTestFileStore(t)

	subs, err := s.LoadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestFileStore_LoadAll_CorruptedDocument(t *testing.T) {
	s, path := newTestFileStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := s.LoadAll(context.Background())

	assert.Error(t, err)
}

func TestFileStore_AppendOne_CreatesDocumentLazily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "submissions.json")
	s := store.NewFileStore(path, zap.NewNop())

	sub := store.NewSubmission("Ada", "ada@example.com", "", "")
	require.NoError(t, s.AppendOne(context.Background(), sub))

	// Parent directory and document are created on first append
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var subs []store.Submission
	require.NoError(t, json.Unmarshal(data, &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "Ada", subs[0].Name)
	assert.Equal(t, "ada@example.com", subs[0].Email)
	assert.Empty(t, subs[0].Phone)
	assert.Empty(t, subs[0].Message)
	assert.NotEmpty(t, subs[0].CreatedAt)
	assert.NotZero(t, subs[0].ID)
}

func TestFileStore_AppendOne_SequentialRoundTrip(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	inputs := []store.Submission{
		{ID: 1, Name: "Ada", Email: "ada@example.com", CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: 2, Name: "Grace", Email: "grace@example.com", Phone: "555-0101", CreatedAt: "2024-01-02T00:00:00Z"},
		{ID: 3, Name: "Linus", Email: "linus@example.com", Message: "hello", CreatedAt: "2024-01-03T00:00:00Z"},
	}
	for _, sub := range inputs {
		require.NoError(t, s.AppendOne(ctx, sub))
	}

	subs, err := s.LoadAll(ctx)

	require.NoError(t, err)
	require.Len(t, subs, len(inputs))
	// Insertion order is preserved and each record matches its input
	assert.Equal(t, inputs, subs)
}

func TestFileStore_AppendOne_ReplacesCorruptedDocument(t *testing.T) {
	s, path := newTestFileStore(t)
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	// An unreadable collection is treated as empty; the append succeeds and
	// the prior content is gone. Documented limitation of the file backend.
	sub := store.NewSubmission("Ada", "ada@example.com", "", "")
	require.NoError(t, s.AppendOne(context.Background(), sub))

	subs, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Ada", subs[0].Name)
}

func TestNewSubmission_Defaults(t *testing.T) {
	sub := store.NewSubmission("Ada", "ada@example.com", "", "")

	assert.Equal(t, "Ada", sub.Name)
	assert.Equal(t, "ada@example.com", sub.Email)
	assert.Empty(t, sub.Phone)
	assert.Empty(t, sub.Message)
	assert.NotZero(t, sub.ID)
	assert.NotEmpty(t, sub.CreatedAt)
}
