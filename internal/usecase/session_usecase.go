package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/session"

	"github.com/google/uuid"
)

// SessionInfo describes a started shopper session
type SessionInfo struct {
	ID           uuid.UUID           `json:"session_id"`
	CatalogState entity.CatalogState `json:"catalog_state"`
	ProductCount int                 `json:"product_count"`
	CreatedAt    time.Time           `json:"created_at"`
}

// SessionUsecase defines the interface for shopper session lifecycle
type SessionUsecase interface {
	// Start loads the catalog once and opens a session with an empty cart
	Start(ctx context.Context) (*SessionInfo, error)

	// Get returns a live session
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)

	// End discards a session and its cart
	End(ctx context.Context, id uuid.UUID) error
}
