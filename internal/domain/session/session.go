// Package session ties a shopper's cart to the catalog snapshot it was built from.
package session

import (
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Session is one shopper visit. The catalog is loaded once when the session
// starts and every cart mutation resolves products against it.
type Session struct {
	ID        uuid.UUID
	Catalog   *entity.Catalog
	Cart      *cart.Store
	CreatedAt time.Time
}

// New starts a session with an empty cart.
func New(id uuid.UUID, catalog *entity.Catalog, createdAt time.Time) *Session {
	return &Session{
		ID:        id,
		Catalog:   catalog,
		Cart:      cart.NewStore(),
		CreatedAt: createdAt,
	}
}
