package service

import (
	"context"
	"time"
)

// OrderLineEvent summarizes one cart line in an order event
type OrderLineEvent struct {
	ProductID string `json:"product_id"`
	Variant   string `json:"variant"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// OrderSubmittedEvent is emitted after an order is handed off to the messaging channel
type OrderSubmittedEvent struct {
	RequestID   string           `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string           `json:"order_id"`
	SessionID   string           `json:"session_id"`
	ItemCount   int              `json:"item_count"`
	Total       string           `json:"total"`
	Currency    string           `json:"currency"`
	Lines       []OrderLineEvent `json:"lines"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderSubmitted publishes an order hand-off event
	PublishOrderSubmitted(ctx context.Context, event *OrderSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
