package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/order"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const checkoutTracerName = "storefront/checkout"

// CheckoutServiceParams holds dependencies for the checkout usecase, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Config         *config.Config
	Sessions       usecase.SessionUsecase
	Formatter      *order.Formatter
	Handoff        *order.Handoff
	QRCode         service.QRCodeService
	Publisher      service.EventPublisher
	TracerProvider trace.TracerProvider
	Logger         *slog.Logger
}

type checkoutService struct {
	sessions      usecase.SessionUsecase
	formatter     *order.Formatter
	handoff       *order.Handoff
	qrCode        service.QRCodeService
	publisher     service.EventPublisher
	tracer        trace.Tracer
	currency      string
	includeQRCode bool
	logger        *slog.Logger
	now           func() time.Time
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		sessions:      params.Sessions,
		formatter:     params.Formatter,
		handoff:       params.Handoff,
		qrCode:        params.QRCode,
		publisher:     params.Publisher,
		tracer:        params.TracerProvider.Tracer(checkoutTracerName),
		currency:      params.Config.Order.Currency,
		includeQRCode: params.Config.Order.IncludeQRCode,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout takes the cart contents, renders them into the order transcript and
// builds the hand-off link. Event publication never fails the checkout.
func (srv *checkoutService) Checkout(ctx context.Context, sessionID uuid.UUID, address entity.Address) (*usecase.OrderReceipt, error) {
	ctx, span := srv.tracer.Start(ctx, "checkout.submit",
		trace.WithAttributes(attribute.String("session.id", sessionID.String())),
	)
	defer span.End()

	receipt, err := srv.checkout(ctx, sessionID, address)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "checkout failed")

		return nil, err
	}

	span.SetAttributes(
		attribute.String("order.id", receipt.OrderID.String()),
		attribute.Int("order.item_count", receipt.ItemCount),
	)

	return receipt, nil
}

func (srv *checkoutService) checkout(ctx context.Context, sessionID uuid.UUID, address entity.Address) (*usecase.OrderReceipt, error) {
	sess, err := srv.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	address = address.Normalized()
	if !address.IsComplete() {
		return nil, domainerrors.ErrAddressIncomplete
	}

	// Lines added while the order is rendered land in the emptied cart.
	snapshot := sess.Cart.Drain()
	if snapshot.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	transcript := srv.formatter.Format(snapshot, address)
	receipt := &usecase.OrderReceipt{
		OrderID:    uuid.New(),
		Transcript: transcript,
		HandoffURL: srv.handoff.URL(transcript),
		Total:      snapshot.Total,
		ItemCount:  snapshot.ItemCount,
	}

	if srv.includeQRCode {
		png, err := srv.qrCode.GenerateHandoffQR(receipt.HandoffURL)
		if err != nil {
			srv.log(ctx).Warn("Failed to render hand-off QR code", slog.Any("error", err))
		} else {
			receipt.QRCodePNG = png
		}
	}

	srv.publish(ctx, sessionID, receipt, snapshot)

	srv.log(ctx).Info("Order handed off",
		slog.String("session_id", sessionID.String()),
		slog.String("order_id", receipt.OrderID.String()),
		slog.Int("item_count", receipt.ItemCount),
		slog.String("total", receipt.Total.StringFixed(2)),
	)

	return receipt, nil
}

func (srv *checkoutService) publish(ctx context.Context, sessionID uuid.UUID, receipt *usecase.OrderReceipt, snapshot cart.Snapshot) {
	lines := make([]service.OrderLineEvent, 0, len(snapshot.Items))
	for _, line := range snapshot.Items {
		lines = append(lines, service.OrderLineEvent{
			ProductID: line.Key.ProductID,
			Variant:   line.Key.Variant,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal().StringFixed(2),
		})
	}

	event := &service.OrderSubmittedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     receipt.OrderID.String(),
		SessionID:   sessionID.String(),
		ItemCount:   receipt.ItemCount,
		Total:       receipt.Total.StringFixed(2),
		Currency:    srv.currency,
		Lines:       lines,
		SubmittedAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishOrderSubmitted(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", errors.WithStack(err)),
		)
	}
}
