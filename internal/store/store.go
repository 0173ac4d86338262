// Package store persists user accounts. The Mongo-backed implementation is
// the production store; the in-memory one backs tests.
package store

import (
	"context"
	"errors"

	"membersite/internal/models"
)

var (
	ErrDuplicateEmail = errors.New("email already in use")
	ErrNotFound       = errors.New("user not found")
)

// UserStore is the single source of truth for identity. Role updates are
// last-write-wins; no implementation locks across operations.
type UserStore interface {
	// Create inserts a new user. Returns ErrDuplicateEmail when the email
	// is already taken.
	Create(ctx context.Context, user models.User) (models.User, error)

	// GetByEmail looks a user up by email. Returns ErrNotFound when absent.
	GetByEmail(ctx context.Context, email string) (models.User, error)

	// ListAll returns every user as a password-free summary.
	ListAll(ctx context.Context) ([]models.UserSummary, error)

	// SetRole updates a user's role and returns the updated record.
	// Returns ErrNotFound when no user has that email.
	SetRole(ctx context.Context, email, role string) (models.User, error)
}
