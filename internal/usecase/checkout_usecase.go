package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderReceipt is returned after the cart is handed off to the messaging channel
type OrderReceipt struct {
	OrderID    uuid.UUID       `json:"order_id"`
	Transcript string          `json:"transcript"`
	HandoffURL string          `json:"handoff_url"`
	QRCodePNG  []byte          `json:"qr_code_png,omitempty"`
	Total      decimal.Decimal `json:"total"`
	ItemCount  int             `json:"item_count"`
}

// CheckoutUsecase turns a session cart into an order hand-off
type CheckoutUsecase interface {
	// Checkout formats the order, builds the hand-off link and clears the cart
	Checkout(ctx context.Context, sessionID uuid.UUID, address entity.Address) (*OrderReceipt, error)
}
