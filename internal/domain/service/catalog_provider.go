package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrFetchFailure is wrapped by every catalog fetch error.
var ErrFetchFailure = errors.New("catalog fetch failed")

// CatalogProvider loads products from the backend. Implementations normalize
// each product's stock before returning it.
type CatalogProvider interface {
	// FetchProducts performs a single fetch without retrying.
	FetchProducts(ctx context.Context) ([]entity.Product, error)
}

// TokenSource supplies the bearer credential for backend calls.
type TokenSource interface {
	// Token returns the current token, or an empty string when none is available.
	Token(ctx context.Context) (string, error)
}
