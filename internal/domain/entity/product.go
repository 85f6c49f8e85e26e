package entity

import "github.com/shopspring/decimal"

// Product is a catalog entry. Products are built once when the catalog loads
// and are treated as immutable afterwards.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    string
	Images      []string
	Description string

	// Sizes is the size list the backend declares for the product, in display order.
	Sizes []string

	Stock StockMap
}

// PrimaryImage returns the first image reference or an empty string.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// DeclaredSizes returns the size labels the product offers, excluding the sentinel.
// When the backend sent no size list, the non-sentinel stock labels are used.
func (p Product) DeclaredSizes() []string {
	source := p.Sizes
	if len(source) == 0 {
		source = p.Stock.Labels()
	}

	sizes := make([]string, 0, len(source))
	for _, size := range source {
		if size == "" || size == SentinelLabel {
			continue
		}
		sizes = append(sizes, size)
	}

	return sizes
}
