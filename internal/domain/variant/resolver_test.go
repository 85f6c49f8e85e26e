package variant

import (
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedProduct(stock map[string]int, sizes ...string) entity.Product {
	return entity.Product{
		ID:       "p1",
		Name:     "Pijama Azul",
		Category: "typed",
		Sizes:    sizes,
		Stock:    entity.NewStockMap(stock),
	}
}

func TestResolver_AvailableVariants(t *testing.T) {
	resolver := NewResolver("typed")

	tests := []struct {
		name    string
		product entity.Product
		want    []string
	}{
		{
			name:    "declared order kept and sold out sizes dropped",
			product: sizedProduct(map[string]int{"P": 1, "M": 0, "G": 4}, "G", "M", "P"),
			want:    []string{"G", "P"},
		},
		{
			name:    "declared size missing from stock",
			product: sizedProduct(map[string]int{"M": 2}, "P", "M"),
			want:    []string{"M"},
		},
		{
			name:    "stock labels used when sizes absent",
			product: sizedProduct(map[string]int{"M": 2, "G": 0}),
			want:    []string{"M"},
		},
		{
			name:    "everything sold out",
			product: sizedProduct(map[string]int{"M": 0}, "M"),
			want:    []string{},
		},
		{
			name:    "typed but single quantity",
			product: entity.Product{Category: "typed", Stock: entity.SingleStock(3)},
			want:    []string{entity.SentinelLabel},
		},
		{
			name:    "untyped collapses to sentinel",
			product: entity.Product{Category: "acessorio", Stock: entity.NewStockMap(map[string]int{"M": 2})},
			want:    []string{entity.SentinelLabel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.AvailableVariants(tt.product))
		})
	}
}

func TestResolver_CategoryMatchIgnoresCase(t *testing.T) {
	resolver := NewResolver(" Typed ", "")
	p := sizedProduct(map[string]int{"M": 1}, "M")
	p.Category = "TYPED"

	assert.True(t, resolver.IsTyped(p))
	assert.True(t, resolver.IsVariantEligible(p))
}

func TestResolver_Stock(t *testing.T) {
	resolver := NewResolver("typed")
	p := sizedProduct(map[string]int{"M": 2, "G": 0}, "M", "G")

	assert.Equal(t, 2, resolver.StockFor(p, "M"))
	assert.Equal(t, 0, resolver.StockFor(p, "G"))
	assert.Equal(t, 0, resolver.StockFor(p, "GG"))
	assert.Equal(t, 2, resolver.TotalStock(p))
	assert.Equal(t, 0, resolver.TotalStock(sizedProduct(nil)))
}

func TestResolver_IsVariantEligible(t *testing.T) {
	resolver := NewResolver("typed")

	assert.True(t, resolver.IsVariantEligible(sizedProduct(map[string]int{"M": 2}, "M")))
	assert.False(t, resolver.IsVariantEligible(sizedProduct(map[string]int{"M": 0}, "M")))
	assert.False(t, resolver.IsVariantEligible(entity.Product{Category: "typed", Stock: entity.SingleStock(5)}))
	assert.False(t, resolver.IsVariantEligible(entity.Product{Category: "other", Stock: entity.NewStockMap(map[string]int{"M": 5})}))
}

func TestResolver_ResolveLabel(t *testing.T) {
	resolver := NewResolver("typed")
	sized := sizedProduct(map[string]int{"M": 2, "G": 0}, "M", "G")
	soldOut := sizedProduct(map[string]int{"M": 0}, "M")
	plain := entity.Product{ID: "p2", Category: "acessorio", Stock: entity.SingleStock(3)}

	tests := []struct {
		name      string
		product   entity.Product
		requested string
		want      string
		wantErr   error
	}{
		{"sized with size", sized, "M", "M", nil},
		{"sized label case folded", sized, "m", "M", nil},
		{"sized out of stock size still resolves", sized, "G", "G", nil},
		{"sized without size", sized, "", "", ErrSelectionRequired},
		{"sized with sentinel", sized, entity.SentinelLabel, "", ErrSelectionRequired},
		{"sized unknown size", sized, "XG", "", ErrUnknownVariant},
		{"sold out without size", soldOut, "", entity.SentinelLabel, nil},
		{"plain without size", plain, "", entity.SentinelLabel, nil},
		{"plain with sentinel", plain, entity.SentinelLabel, entity.SentinelLabel, nil},
		{"plain with size", plain, "M", "", ErrUnknownVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.ResolveLabel(tt.product, tt.requested)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
