package entity

import "github.com/shopspring/decimal"

// LineKey identifies a cart line. Two variants of one product are two lines.
type LineKey struct {
	ProductID string
	Variant   string
}

func (k LineKey) String() string {
	return k.ProductID + "/" + k.Variant
}

// LineItem is a cart line with the product display data captured when it was added.
type LineItem struct {
	Key       LineKey
	Name      string
	UnitPrice decimal.Decimal
	Image     string

	// Stock is the variant stock at add time and bounds Quantity.
	Stock    int
	Quantity int
}

// NewLineItem builds a line for the given product variant with zero quantity.
func NewLineItem(p Product, label string) LineItem {
	return LineItem{
		Key:       LineKey{ProductID: p.ID, Variant: label},
		Name:      p.Name,
		UnitPrice: p.Price,
		Image:     p.PrimaryImage(),
		Stock:     p.Stock.For(label),
	}
}

// LineTotal is UnitPrice times Quantity.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// HasVariant reports whether the line carries a real size label.
func (l LineItem) HasVariant() bool {
	return l.Key.Variant != "" && l.Key.Variant != SentinelLabel
}
