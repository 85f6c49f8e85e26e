// Package cart holds the shopper's line items and enforces the stock bound on
// every mutation.
package cart

import (
	"sync"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Outcome names what a mutation did to the cart.
type Outcome string

const (
	OutcomeCreated     Outcome = "created"
	OutcomeIncremented Outcome = "incremented"
	OutcomeUpdated     Outcome = "updated"
	OutcomeRemoved     Outcome = "removed"
	OutcomeRejected    Outcome = "rejected"
	OutcomeNoop        Outcome = "noop"
)

// MutationResult describes the effect of one cart mutation. Requests above the
// available stock are not errors: the quantity is lowered and Clamped is set.
type MutationResult struct {
	Outcome   Outcome
	Key       entity.LineKey
	Requested int

	// Quantity is the line quantity after the mutation, zero when no line remains.
	Quantity int

	Clamped   bool
	ClampedTo int
}

// Snapshot is a consistent read of the cart.
type Snapshot struct {
	Items     []entity.LineItem
	Total     decimal.Decimal
	ItemCount int
}

// IsEmpty reports whether the snapshot has no lines.
func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// Store is one shopper's cart. Lines keep insertion order and every line
// satisfies 1 <= Quantity <= Stock. All methods are safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	lines []entity.LineItem
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add puts qty units of the product variant in the cart, merging with an
// existing line for the same key. The resulting quantity never exceeds the
// variant stock. Nothing is added when the stock is zero or qty is not positive.
func (s *Store) Add(p entity.Product, label string, qty int) MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entity.LineKey{ProductID: p.ID, Variant: label}
	result := MutationResult{Key: key, Requested: qty}

	idx := s.indexOf(key)
	if qty <= 0 {
		result.Outcome = OutcomeRejected
		if idx >= 0 {
			result.Quantity = s.lines[idx].Quantity
		}

		return result
	}

	stock := p.Stock.For(label)

	if idx < 0 {
		if stock <= 0 {
			result.Outcome = OutcomeRejected
			result.Clamped = true

			return result
		}

		line := entity.NewLineItem(p, label)
		line.Quantity = clamp(qty, stock, &result)
		s.lines = append(s.lines, line)

		result.Outcome = OutcomeCreated
		result.Quantity = line.Quantity

		return result
	}

	line := &s.lines[idx]
	line.Stock = stock
	previous := line.Quantity

	if stock <= 0 {
		s.removeAt(idx)
		result.Outcome = OutcomeRemoved
		result.Clamped = true

		return result
	}

	line.Quantity = clamp(previous+qty, stock, &result)
	result.Quantity = line.Quantity

	if line.Quantity > previous {
		result.Outcome = OutcomeIncremented
	} else {
		result.Outcome = OutcomeNoop
	}

	return result
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero or
// less removes the line; one above the line's stock is lowered to the stock.
func (s *Store) SetQuantity(key entity.LineKey, qty int) MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := MutationResult{Key: key, Requested: qty}

	idx := s.indexOf(key)
	if idx < 0 {
		result.Outcome = OutcomeNoop

		return result
	}

	if qty <= 0 {
		s.removeAt(idx)
		result.Outcome = OutcomeRemoved

		return result
	}

	line := &s.lines[idx]
	line.Quantity = clamp(qty, line.Stock, &result)
	result.Quantity = line.Quantity
	result.Outcome = OutcomeUpdated

	return result
}

// Remove deletes the line; a missing key is a no-op.
func (s *Store) Remove(key entity.LineKey) MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := MutationResult{Key: key}

	idx := s.indexOf(key)
	if idx < 0 {
		result.Outcome = OutcomeNoop

		return result
	}

	s.removeAt(idx)
	result.Outcome = OutcomeRemoved

	return result
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

// Total is the sum of price times quantity over all lines, computed on each call.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return total(s.lines)
}

// ItemCount is the sum of line quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return itemCount(s.lines)
}

// Len returns the number of lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []entity.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copyLines()
}

// Line returns the line for key.
func (s *Store) Line(key entity.LineKey) (entity.LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(key)
	if idx < 0 {
		return entity.LineItem{}, false
	}

	return s.lines[idx], true
}

// Snapshot returns lines and derived totals read under a single lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Items:     s.copyLines(),
		Total:     total(s.lines),
		ItemCount: itemCount(s.lines),
	}
}

// Drain returns the snapshot and empties the cart under one lock. Lines added
// after Drain returns stay in the cart for the next order.
func (s *Store) Drain() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Snapshot{
		Items:     s.copyLines(),
		Total:     total(s.lines),
		ItemCount: itemCount(s.lines),
	}
	s.lines = nil

	return snapshot
}

func (s *Store) indexOf(key entity.LineKey) int {
	for i := range s.lines {
		if s.lines[i].Key == key {
			return i
		}
	}

	return -1
}

func (s *Store) removeAt(idx int) {
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
}

func (s *Store) copyLines() []entity.LineItem {
	items := make([]entity.LineItem, len(s.lines))
	copy(items, s.lines)

	return items
}

// clamp bounds want by stock and records the clamp on result.
func clamp(want, stock int, result *MutationResult) int {
	if want <= stock {
		return want
	}

	result.Clamped = true
	result.ClampedTo = stock

	return stock
}

func total(lines []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.LineTotal())
	}

	return sum
}

func itemCount(lines []entity.LineItem) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}

	return count
}
