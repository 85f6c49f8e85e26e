// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type catalogService struct {
	provider service.CatalogProvider
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	cached    *entity.Catalog
	expiresAt time.Time
}

// NewCatalogService creates a catalog usecase that caches successful fetches for catalog.cacheTTL.
func NewCatalogService(provider service.CatalogProvider, cfg *config.Config, logger *slog.Logger) usecase.CatalogUsecase {
	return newCatalogService(provider, cfg.Catalog.CacheTTL, logger, time.Now)
}

func newCatalogService(provider service.CatalogProvider, ttl time.Duration, logger *slog.Logger, now func() time.Time) *catalogService {
	return &catalogService{
		provider: provider,
		ttl:      ttl,
		logger:   logger,
		now:      now,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load returns the cached catalog or fetches a fresh one. Concurrent callers
// wait for the same fetch, which is detached from the first caller's
// cancellation and bounded by the catalog client timeout. A failed fetch is
// logged and yields an empty catalog that is not cached, so the next session
// tries again.
func (srv *catalogService) Load(ctx context.Context) *entity.Catalog {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	now := srv.now()
	if srv.cached != nil && now.Before(srv.expiresAt) {
		return srv.cached
	}

	products, err := srv.provider.FetchProducts(context.WithoutCancel(ctx))
	if err != nil {
		srv.log(ctx).Warn("Catalog fetch failed, serving empty catalog", slog.Any("error", err))

		return entity.EmptyCatalog(now)
	}

	catalog := entity.NewCatalog(products, now)
	srv.log(ctx).Info("Catalog loaded",
		slog.Int("products", len(catalog.Products)),
		slog.String("state", string(catalog.State)),
	)

	if srv.ttl > 0 {
		srv.cached = catalog
		srv.expiresAt = now.Add(srv.ttl)
	}

	return catalog
}

// Invalidate drops the cached catalog.
func (srv *catalogService) Invalidate() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.cached = nil
	srv.expiresAt = time.Time{}
}
