// Package variant decides which size variants of a product a shopper may pick.
package variant

import (
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

var (
	// ErrSelectionRequired is returned when a sized product is added without a size.
	ErrSelectionRequired = errors.New("variant selection required")
	// ErrUnknownVariant is returned when the requested label is not offered by the product.
	ErrUnknownVariant = errors.New("variant not offered by product")
)

// Resolver applies the category rules that decide whether a product is sized.
type Resolver struct {
	typed map[string]struct{}
}

// NewResolver builds a resolver treating the given categories as sized.
// Category matching ignores case and surrounding whitespace.
func NewResolver(typedCategories ...string) *Resolver {
	typed := make(map[string]struct{}, len(typedCategories))
	for _, category := range typedCategories {
		if key := normalizeCategory(category); key != "" {
			typed[key] = struct{}{}
		}
	}

	return &Resolver{typed: typed}
}

// IsTyped reports whether the product category carries size variants.
func (r *Resolver) IsTyped(p entity.Product) bool {
	_, ok := r.typed[normalizeCategory(p.Category)]

	return ok
}

// AvailableVariants lists the labels a shopper can pick. For a typed product
// with declared sizes this is the declared sizes that still have stock, in
// declared order, and may be empty when everything is sold out. Any other
// product exposes only the sentinel.
func (r *Resolver) AvailableVariants(p entity.Product) []string {
	if !r.IsTyped(p) {
		return []string{entity.SentinelLabel}
	}

	declared := p.DeclaredSizes()
	if len(declared) == 0 {
		return []string{entity.SentinelLabel}
	}

	available := make([]string, 0, len(declared))
	for _, size := range declared {
		if p.Stock.For(size) > 0 {
			available = append(available, size)
		}
	}

	return available
}

// StockFor returns the remaining stock of a variant, zero when missing.
func (r *Resolver) StockFor(p entity.Product, label string) int {
	return p.Stock.For(label)
}

// TotalStock sums every variant; zero means the product is sold out.
func (r *Resolver) TotalStock(p entity.Product) int {
	return p.Stock.Total()
}

// IsVariantEligible reports whether the shopper must choose a size before adding.
func (r *Resolver) IsVariantEligible(p entity.Product) bool {
	if !r.IsTyped(p) {
		return false
	}

	for _, label := range r.AvailableVariants(p) {
		if label != entity.SentinelLabel {
			return true
		}
	}

	return false
}

// ResolveLabel maps the label a shopper sent to the cart key label.
//
// Products that are not sized always resolve to the sentinel and reject any
// other label. Sized products require one of their declared sizes; a declared
// size without stock still resolves so the cart can report the rejection.
func (r *Resolver) ResolveLabel(p entity.Product, requested string) (string, error) {
	requested = strings.TrimSpace(requested)

	declared := p.DeclaredSizes()
	if !r.IsTyped(p) || len(declared) == 0 {
		if requested == "" || requested == entity.SentinelLabel {
			return entity.SentinelLabel, nil
		}

		return "", errors.Wrapf(ErrUnknownVariant, "product %s has no size %q", p.ID, requested)
	}

	if requested == "" || requested == entity.SentinelLabel {
		if r.IsVariantEligible(p) {
			return "", errors.Wrapf(ErrSelectionRequired, "product %s", p.ID)
		}

		return entity.SentinelLabel, nil
	}

	for _, size := range declared {
		if strings.EqualFold(size, requested) {
			return size, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownVariant, "product %s has no size %q", p.ID, requested)
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
