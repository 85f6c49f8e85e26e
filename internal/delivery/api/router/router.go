// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/router/handler"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	SessionHandler    *handler.SessionHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	PushHandler       *handler.PushHandler
	SessionMiddleware *middleware.SessionMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler     *handler.HealthHandler
	sessionHandler    *handler.SessionHandler
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	pushHandler       *handler.PushHandler
	sessionMiddleware *middleware.SessionMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:     params.HealthHandler,
		sessionHandler:    params.SessionHandler,
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		checkoutHandler:   params.CheckoutHandler,
		pushHandler:       params.PushHandler,
		sessionMiddleware: params.SessionMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	// Pub/Sub push subscription for catalog change notifications
	if push := r.pushConfig(); push != nil && r.pushHandler != nil {
		e.POST(push.Path, r.pushHandler.HandlePush)
	}

	apiV1 := e.Group("/api/v1")

	// Opening a session needs no session header
	apiV1.POST("/sessions", r.sessionHandler.StartSession)

	// Every other route acts on the session named by X-Session-Id
	shop := apiV1.Group("")
	shop.Use(r.sessionMiddleware.RequireSession)
	{
		shop.DELETE("/sessions", r.sessionHandler.EndSession)

		shop.GET("/products", r.catalogHandler.ListProducts)
		shop.GET("/products/:id", r.catalogHandler.GetProduct)

		shop.GET("/cart", r.cartHandler.GetCart)
		shop.POST("/cart/items", r.cartHandler.AddItem)
		shop.PUT("/cart/items/:productId/:variant", r.cartHandler.UpdateItem)
		shop.DELETE("/cart/items/:productId/:variant", r.cartHandler.RemoveItem)

		shop.POST("/checkout", r.checkoutHandler.Checkout, r.checkoutRateLimiter()...)
	}
}

func (r *router) pushConfig() *config.PushConfig {
	if r.config.PubSub == nil || r.config.PubSub.Push == nil || !r.config.PubSub.Push.Enabled {
		return nil
	}

	return r.config.PubSub.Push
}

// checkoutRateLimiter throttles order submission per client IP when enabled.
func (r *router) checkoutRateLimiter() []echo.MiddlewareFunc {
	limit := r.config.HTTP.CheckoutRateLimit
	if limit == nil || !limit.Enabled || limit.Rate <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit.Rate),
		Burst:     limit.Burst,
		ExpiresIn: limit.ExpiresIn,
	})

	return []echo.MiddlewareFunc{
		echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
			Store: store,
			DenyHandler: func(c echo.Context, _ string, _ error) error {
				return response.HandleAppError(c, domainerrors.ErrTooManyRequests)
			},
		}),
	}
}
