package store

import (
	"context"
	"time"
)

// Submission is one persisted form entry.
type Submission struct {
	// ID is a monotonically increasing identifier derived from the creation time.
	ID int64 `json:"id"`
	// Name is the submitter's name. Always non-empty once persisted.
	Name string `json:"name"`
	// Email is the submitter's email address. Always non-empty once persisted.
	Email string `json:"email"`
	// Phone is an optional phone number.
	Phone string `json:"phone"`
	// Message is an optional free-form message.
	Message string `json:"message"`
	// CreatedAt is the creation timestamp in ISO-8601 format.
	CreatedAt string `json:"createdAt"`
}

// NewSubmission builds a Submission with a generated identifier and timestamp.
// Validation of required fields is the caller's job.
func NewSubmission(name, email, phone, message string) Submission {
	now := time.Now().UTC()
	return Submission{
		ID:        now.UnixMilli(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		CreatedAt: now.Format(time.RFC3339),
	}
}

// Store abstracts submission persistence.
//
// Implementations are append-only: there is no update or delete. LoadAll
// returns the collection in insertion order.
type Store interface {
	// LoadAll returns every persisted submission in insertion order.
	// An absent backing document yields an empty collection, not an error.
	LoadAll(ctx context.Context) ([]Submission, error)
	// AppendOne persists a new submission at the end of the collection.
	AppendOne(ctx context.Context, sub Submission) error
}
