package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/order"
	"storefront/internal/domain/variant"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/catalog"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/session"
	"storefront/internal/infra/tracing"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectDomain(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		tracing.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewMemoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenSource,
			catalog.NewHTTPProvider,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectDomain() fx.Option {
	return fx.Options(
		fx.Provide(
			newVariantResolver,
			newOrderFormatter,
			newOrderHandoff,
		),
	)
}

func newVariantResolver(cfg *config.Config) *variant.Resolver {
	return variant.NewResolver(cfg.Variants.TypedCategories...)
}

func newOrderFormatter(cfg *config.Config) *order.Formatter {
	return order.NewFormatter(cfg.Order.Currency)
}

func newOrderHandoff(cfg *config.Config) (*order.Handoff, error) {
	return order.NewHandoff(cfg.Order.MessagingBaseURL, cfg.Order.Destination, cfg.Order.Header)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewSessionService,
			impl.NewCartService,
			impl.NewCheckoutService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
