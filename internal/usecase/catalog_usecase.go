// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase loads the product catalog shared by new sessions.
type CatalogUsecase interface {
	// Load returns the current catalog. A failed fetch yields an empty catalog, never an error.
	Load(ctx context.Context) *entity.Catalog

	// Invalidate drops any cached catalog so the next Load fetches again.
	Invalidate()
}
