package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	now := time.Now()
	catalog := NewCatalog([]Product{
		{ID: "p1", Name: "Pijama Azul"},
		{ID: "p2", Name: "Camisola"},
		{ID: "p1", Name: "Duplicate"},
	}, now)

	assert.Equal(t, CatalogPopulated, catalog.State)
	assert.Len(t, catalog.Products, 2)

	p, ok := catalog.Find("p1")
	require.True(t, ok)
	assert.Equal(t, "Pijama Azul", p.Name)

	_, ok = catalog.Find("missing")
	assert.False(t, ok)
}

func TestEmptyCatalog(t *testing.T) {
	catalog := EmptyCatalog(time.Now())

	assert.Equal(t, CatalogEmpty, catalog.State)
	assert.True(t, catalog.IsEmpty())

	var nilCatalog *Catalog
	assert.True(t, nilCatalog.IsEmpty())
	_, ok := nilCatalog.Find("p1")
	assert.False(t, ok)
}

func TestLineItem(t *testing.T) {
	p := Product{
		ID:     "p1",
		Name:   "Pijama Azul",
		Price:  decimal.RequireFromString("40.00"),
		Images: []string{"a.jpg", "b.jpg"},
		Stock:  NewStockMap(map[string]int{"M": 3}),
	}

	line := NewLineItem(p, "M")
	line.Quantity = 2

	assert.Equal(t, LineKey{ProductID: "p1", Variant: "M"}, line.Key)
	assert.Equal(t, "a.jpg", line.Image)
	assert.Equal(t, 3, line.Stock)
	assert.True(t, line.LineTotal().Equal(decimal.RequireFromString("80")))
	assert.True(t, line.HasVariant())
	assert.Equal(t, "p1/M", line.Key.String())

	assert.False(t, NewLineItem(p, SentinelLabel).HasVariant())
}

func TestAddress(t *testing.T) {
	addr := Address{Nome: " Ana ", Rua: "Rua X", Numero: "10", Bairro: "Centro", Cidade: "Gurupi "}

	assert.True(t, addr.IsComplete())
	assert.Equal(t, "Ana", addr.Normalized().Nome)
	assert.Equal(t, "Gurupi", addr.Normalized().Cidade)

	addr.Bairro = "  "
	assert.False(t, addr.IsComplete())
}
