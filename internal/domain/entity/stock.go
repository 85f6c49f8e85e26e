package entity

import "sort"

// SentinelLabel names the single implicit variant of a product without sizes.
const SentinelLabel = "_"

// StockMap maps a variant label to its non-negative remaining quantity.
type StockMap map[string]int

// NewStockMap copies raw, clamping negative quantities to zero. An empty input
// yields a map holding only the sentinel with zero stock, so every product has
// at least one entry.
func NewStockMap(raw map[string]int) StockMap {
	stock := make(StockMap, len(raw))
	for label, qty := range raw {
		if qty < 0 {
			qty = 0
		}
		stock[label] = qty
	}

	if len(stock) == 0 {
		stock[SentinelLabel] = 0
	}

	return stock
}

// SingleStock is the normalized form of a plain numeric quantity.
func SingleStock(qty int) StockMap {
	return NewStockMap(map[string]int{SentinelLabel: qty})
}

// For returns the quantity held for label, zero when the label is unknown.
func (m StockMap) For(label string) int {
	return m[label]
}

// Total sums every variant quantity.
func (m StockMap) Total() int {
	total := 0
	for _, qty := range m {
		total += qty
	}

	return total
}

// Labels returns the declared labels in lexical order.
func (m StockMap) Labels() []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}
