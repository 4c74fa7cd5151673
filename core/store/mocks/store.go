package mocks

import (
	"context"

	"formdesk/core/store"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of store.Store
type Store struct {
	mock.Mock
}

func (m *Store) LoadAll(ctx context.Context) ([]store.Submission, error) {
	args := m.Called(ctx)
	if subs, ok := args.Get(0).([]store.Submission); ok {
		return subs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) AppendOne(ctx context.Context, sub store.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}
