package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VariantView is a selectable size with its remaining stock
type VariantView struct {
	Label string `json:"label"`
	Stock int    `json:"stock"`
}

// ProductView is a catalog product as the storefront displays it
type ProductView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Images          []string        `json:"images"`
	Description     string          `json:"description,omitempty"`
	VariantEligible bool            `json:"variant_eligible"`
	Variants        []VariantView   `json:"variants"`
	TotalStock      int             `json:"total_stock"`
	SoldOut         bool            `json:"sold_out"`
}

// CartLineView is one cart line
type CartLineView struct {
	ProductID string          `json:"product_id"`
	Variant   string          `json:"variant"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Image     string          `json:"image,omitempty"`
	Stock     int             `json:"stock"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView is the cart with derived totals
type CartView struct {
	Items     []CartLineView  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// MutationView reports the effect of a cart mutation
type MutationView struct {
	Outcome   string    `json:"outcome"`
	ProductID string    `json:"product_id"`
	Variant   string    `json:"variant"`
	Requested int       `json:"requested"`
	Quantity  int       `json:"quantity"`
	Clamped   bool      `json:"clamped"`
	ClampedTo int       `json:"clamped_to,omitempty"`
	Cart      *CartView `json:"cart"`
}

// AddItemInput is a request to add a product variant
type AddItemInput struct {
	ProductID string
	Variant   string
	Quantity  int
}

// CartUsecase defines the interface for browsing and cart mutations within a session
type CartUsecase interface {
	ListProducts(ctx context.Context, sessionID uuid.UUID) ([]*ProductView, error)
	GetProduct(ctx context.Context, sessionID uuid.UUID, productID string) (*ProductView, error)
	GetCart(ctx context.Context, sessionID uuid.UUID) (*CartView, error)
	AddItem(ctx context.Context, sessionID uuid.UUID, input *AddItemInput) (*MutationView, error)
	SetQuantity(ctx context.Context, sessionID uuid.UUID, productID, variant string, quantity int) (*MutationView, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, productID, variant string) (*MutationView, error)
}
