package cart

import (
	"sync"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pijama() entity.Product {
	return entity.Product{
		ID:       "p1",
		Name:     "Pijama Azul",
		Price:    decimal.RequireFromString("50.00"),
		Category: "typed",
		Sizes:    []string{"M", "G"},
		Stock:    entity.NewStockMap(map[string]int{"M": 2, "G": 0}),
	}
}

func camisola() entity.Product {
	return entity.Product{
		ID:    "p2",
		Name:  "Camisola",
		Price: decimal.RequireFromString("35.90"),
		Stock: entity.SingleStock(10),
	}
}

func TestStore_AddWalkthrough(t *testing.T) {
	store := NewStore()
	p1 := pijama()

	res := store.Add(p1, "G", 1)
	assert.Equal(t, OutcomeRejected, res.Outcome)
	assert.Equal(t, 0, store.Len())

	res = store.Add(p1, "M", 1)
	assert.Equal(t, OutcomeCreated, res.Outcome)
	assert.Equal(t, 1, res.Quantity)
	assert.False(t, res.Clamped)

	res = store.Add(p1, "M", 5)
	assert.Equal(t, OutcomeIncremented, res.Outcome)
	assert.Equal(t, 2, res.Quantity)
	assert.True(t, res.Clamped)
	assert.Equal(t, 2, res.ClampedTo)

	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Total().Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, 2, store.ItemCount())
}

func TestStore_AddAtStockIsNoop(t *testing.T) {
	store := NewStore()
	p1 := pijama()

	store.Add(p1, "M", 2)
	res := store.Add(p1, "M", 1)

	assert.Equal(t, OutcomeNoop, res.Outcome)
	assert.True(t, res.Clamped)
	assert.Equal(t, 2, res.Quantity)
}

func TestStore_AddNonPositiveRejected(t *testing.T) {
	store := NewStore()

	assert.Equal(t, OutcomeRejected, store.Add(camisola(), entity.SentinelLabel, 0).Outcome)
	assert.Equal(t, OutcomeRejected, store.Add(camisola(), entity.SentinelLabel, -2).Outcome)
	assert.Equal(t, 0, store.Len())
}

func TestStore_AddNewLineClamped(t *testing.T) {
	store := NewStore()

	res := store.Add(pijama(), "M", 9)

	assert.Equal(t, OutcomeCreated, res.Outcome)
	assert.Equal(t, 2, res.Quantity)
	assert.True(t, res.Clamped)
	assert.Equal(t, 2, res.ClampedTo)
}

func TestStore_DistinctVariantsStaySeparate(t *testing.T) {
	store := NewStore()
	p := pijama()
	p.Stock = entity.NewStockMap(map[string]int{"M": 3, "G": 3})

	store.Add(p, "M", 1)
	store.Add(p, "G", 1)
	store.Add(p, "M", 1)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "M", items[0].Key.Variant)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "G", items[1].Key.Variant)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestStore_SetQuantity(t *testing.T) {
	tests := []struct {
		name        string
		qty         int
		wantOutcome Outcome
		wantQty     int
		wantClamped bool
		wantLen     int
	}{
		{"set within stock", 1, OutcomeUpdated, 1, false, 1},
		{"set above stock", 7, OutcomeUpdated, 2, true, 1},
		{"zero removes", 0, OutcomeRemoved, 0, false, 0},
		{"negative removes", -1, OutcomeRemoved, 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			store.Add(pijama(), "M", 2)

			res := store.SetQuantity(entity.LineKey{ProductID: "p1", Variant: "M"}, tt.qty)

			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantQty, res.Quantity)
			assert.Equal(t, tt.wantClamped, res.Clamped)
			assert.Equal(t, tt.wantLen, store.Len())
		})
	}
}

func TestStore_SetQuantityMissingLine(t *testing.T) {
	store := NewStore()

	res := store.SetQuantity(entity.LineKey{ProductID: "nope", Variant: "M"}, 3)

	assert.Equal(t, OutcomeNoop, res.Outcome)
	assert.Equal(t, 0, store.Len())
}

func TestStore_Remove(t *testing.T) {
	store := NewStore()
	store.Add(camisola(), entity.SentinelLabel, 2)
	store.Add(pijama(), "M", 1)

	res := store.Remove(entity.LineKey{ProductID: "p2", Variant: entity.SentinelLabel})
	assert.Equal(t, OutcomeRemoved, res.Outcome)

	res = store.Remove(entity.LineKey{ProductID: "p2", Variant: entity.SentinelLabel})
	assert.Equal(t, OutcomeNoop, res.Outcome)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Key.ProductID)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore()
	store.Add(camisola(), entity.SentinelLabel, 2)
	store.Add(pijama(), "M", 1)

	store.Clear()

	snap := store.Snapshot()
	assert.True(t, snap.IsEmpty())
	assert.True(t, snap.Total.IsZero())
	assert.Equal(t, 0, snap.ItemCount)
}

func TestStore_Drain(t *testing.T) {
	store := NewStore()
	store.Add(camisola(), entity.SentinelLabel, 2)
	store.Add(pijama(), "M", 1)

	snap := store.Drain()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 3, snap.ItemCount)
	assert.True(t, snap.Total.Equal(decimal.RequireFromString("121.80")))
	assert.Equal(t, 0, store.Len())

	store.Add(pijama(), "M", 1)
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, 1, store.Len())
}

func TestStore_DrainRacingAddsLoseNothing(t *testing.T) {
	store := NewStore()
	p := camisola()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		drained int
	)
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Add(p, entity.SentinelLabel, 1)
		}()
		go func() {
			defer wg.Done()
			snap := store.Drain()
			mu.Lock()
			drained += snap.ItemCount
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, drained+store.ItemCount())
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	store := NewStore()
	store.Add(camisola(), entity.SentinelLabel, 2)

	snap := store.Snapshot()
	snap.Items[0].Quantity = 99

	line, ok := store.Line(entity.LineKey{ProductID: "p2", Variant: entity.SentinelLabel})
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, snap.Total.Equal(decimal.RequireFromString("71.80")))
}

func TestStore_ConcurrentAddsRespectStock(t *testing.T) {
	store := NewStore()
	p := camisola()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Add(p, entity.SentinelLabel, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, store.ItemCount())
	assert.Equal(t, 1, store.Len())
}
