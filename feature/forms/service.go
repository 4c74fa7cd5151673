package forms

import (
	"context"
	"errors"
	"strings"

	"formdesk/core/store"

	"go.uber.org/zap"
)

// ErrValidation indicates a submission is missing a required field.
var ErrValidation = errors.New("name and email are required")

// SubmissionInput carries the raw form fields of one submission attempt.
type SubmissionInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Service handles form submissions and listings.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a new forms service.
func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  st,
		logger: logger,
	}
}

// Submit validates the input and appends a new record. A missing or empty
// name or email yields ErrValidation and nothing is persisted. Any other
// error comes from the store.
func (s *Service) Submit(ctx context.Context, input SubmissionInput) (store.Submission, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return store.Submission{}, ErrValidation
	}

	sub := store.NewSubmission(input.Name, input.Email, input.Phone, input.Message)
	if err := s.store.AppendOne(ctx, sub); err != nil {
		return sub, err
	}
	return sub, nil
}

// ListNewestFirst returns the collection in reverse insertion order, for the
// rendered listing page.
func (s *Service) ListNewestFirst(ctx context.Context) ([]store.Submission, error) {
	subs, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	reversed := make([]store.Submission, 0, len(subs))
	for i := len(subs) - 1; i >= 0; i-- {
		reversed = append(reversed, subs[i])
	}
	return reversed, nil
}

// ListAll returns the collection verbatim in insertion order, for the raw
// listing endpoint.
func (s *Service) ListAll(ctx context.Context) ([]store.Submission, error) {
	return s.store.LoadAll(ctx)
}
