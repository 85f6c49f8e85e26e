// Package repository defines the interfaces for the storage layer.
package repository

import (
	"context"

	"storefront/internal/domain/session"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session storage.
var (
	// ErrSessionNotFound is returned when a session is unknown or has expired.
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRepository stores live shopper sessions.
type SessionRepository interface {
	// Save stores the session, replacing any session with the same ID.
	Save(ctx context.Context, sess *session.Session) error

	// FindByID retrieves a live session and extends its lifetime.
	FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error)

	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of live sessions.
	Count(ctx context.Context) int
}
