package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/session"
	"storefront/internal/domain/variant"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	sessions usecase.SessionUsecase
	resolver *variant.Resolver
	logger   *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(sessions usecase.SessionUsecase, resolver *variant.Resolver, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		sessions: sessions,
		resolver: resolver,
		logger:   logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the session catalog in backend order
func (srv *cartService) ListProducts(ctx context.Context, sessionID uuid.UUID) ([]*usecase.ProductView, error) {
	sess, err := srv.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.ProductView, 0, len(sess.Catalog.Products))
	for _, p := range sess.Catalog.Products {
		views = append(views, srv.productView(p))
	}

	return views, nil
}

// GetProduct returns one product of the session catalog
func (srv *cartService) GetProduct(ctx context.Context, sessionID uuid.UUID, productID string) (*usecase.ProductView, error) {
	sess, err := srv.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	p, ok := sess.Catalog.Find(productID)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", productID)
	}

	return srv.productView(p), nil
}

// GetCart returns the session cart
func (srv *cartService) GetCart(ctx context.Context, sessionID uuid.UUID) (*usecase.CartView, error) {
	sess, err := srv.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return cartView(sess.Cart.Snapshot()), nil
}

// AddItem resolves the variant label and adds the item. Quantities above the
// stock are clamped and reported in the result rather than failing.
func (srv *cartService) AddItem(ctx context.Context, sessionID uuid.UUID, input *usecase.AddItemInput) (*usecase.MutationView, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("quantity must be positive")
	}

	sess, err := srv.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	p, ok := sess.Catalog.Find(input.ProductID)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", input.ProductID)
	}

	label, err := srv.resolver.ResolveLabel(p, input.Variant)
	if err != nil {
		return nil, translateVariantError(err)
	}

	result := sess.Cart.Add(p, label, input.Quantity)
	srv.logMutation(ctx, sess, result)

	return mutationView(result, sess.Cart.Snapshot()), nil
}

// SetQuantity replaces a line quantity. Zero or less removes the line.
func (srv *cartService) SetQuantity(ctx context.Context, sessionID uuid.UUID, productID, variantLabel string, quantity int) (*usecase.MutationView, error) {
	sess, err := srv.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	key := lineKey(productID, variantLabel)
	if _, ok := sess.Cart.Line(key); !ok && quantity > 0 {
		return nil, errors.Wrapf(domainerrors.ErrLineNotFound, "line %s", key)
	}

	result := sess.Cart.SetQuantity(key, quantity)
	srv.logMutation(ctx, sess, result)

	return mutationView(result, sess.Cart.Snapshot()), nil
}

// RemoveItem deletes a line. Removing a missing line is a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, sessionID uuid.UUID, productID, variantLabel string) (*usecase.MutationView, error) {
	sess, err := srv.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := sess.Cart.Remove(lineKey(productID, variantLabel))
	srv.logMutation(ctx, sess, result)

	return mutationView(result, sess.Cart.Snapshot()), nil
}

func (srv *cartService) logMutation(ctx context.Context, sess *session.Session, result cart.MutationResult) {
	attrs := []any{
		slog.String("session_id", sess.ID.String()),
		slog.String("line", result.Key.String()),
		slog.String("outcome", string(result.Outcome)),
		slog.Int("quantity", result.Quantity),
	}
	if result.Clamped {
		attrs = append(attrs, slog.Int("requested", result.Requested), slog.Int("clamped_to", result.ClampedTo))
	}

	srv.log(ctx).Debug("Cart mutated", attrs...)
}

func (srv *cartService) productView(p entity.Product) *usecase.ProductView {
	labels := srv.resolver.AvailableVariants(p)
	variants := make([]usecase.VariantView, 0, len(labels))
	for _, label := range labels {
		variants = append(variants, usecase.VariantView{
			Label: label,
			Stock: srv.resolver.StockFor(p, label),
		})
	}

	total := srv.resolver.TotalStock(p)

	return &usecase.ProductView{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		Category:        p.Category,
		Images:          p.Images,
		Description:     p.Description,
		VariantEligible: srv.resolver.IsVariantEligible(p),
		Variants:        variants,
		TotalStock:      total,
		SoldOut:         total == 0,
	}
}

// lineKey maps an empty path label to the sentinel.
func lineKey(productID, variantLabel string) entity.LineKey {
	variantLabel = strings.TrimSpace(variantLabel)
	if variantLabel == "" {
		variantLabel = entity.SentinelLabel
	}

	return entity.LineKey{ProductID: productID, Variant: variantLabel}
}

func translateVariantError(err error) error {
	switch {
	case errors.Is(err, variant.ErrSelectionRequired):
		return errors.Wrap(domainerrors.ErrVariantRequired, err.Error())
	case errors.Is(err, variant.ErrUnknownVariant):
		return errors.Wrap(domainerrors.ErrVariantUnavailable, err.Error())
	default:
		return errors.Wrap(err, "resolve variant")
	}
}

func cartView(snapshot cart.Snapshot) *usecase.CartView {
	items := make([]usecase.CartLineView, 0, len(snapshot.Items))
	for _, line := range snapshot.Items {
		items = append(items, usecase.CartLineView{
			ProductID: line.Key.ProductID,
			Variant:   line.Key.Variant,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Image:     line.Image,
			Stock:     line.Stock,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal(),
		})
	}

	return &usecase.CartView{
		Items:     items,
		Total:     snapshot.Total,
		ItemCount: snapshot.ItemCount,
	}
}

func mutationView(result cart.MutationResult, snapshot cart.Snapshot) *usecase.MutationView {
	return &usecase.MutationView{
		Outcome:   string(result.Outcome),
		ProductID: result.Key.ProductID,
		Variant:   result.Key.Variant,
		Requested: result.Requested,
		Quantity:  result.Quantity,
		Clamped:   result.Clamped,
		ClampedTo: result.ClampedTo,
		Cart:      cartView(snapshot),
	}
}
