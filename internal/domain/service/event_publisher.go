package service

import (
	"context"
	"time"
)

// InventoryEventType names an outbound event for the notification gateway.
type InventoryEventType string

const (
	EventStockChanged       InventoryEventType = "stock.changed"
	EventOrderStatusChanged InventoryEventType = "order.status_changed"
	EventInventoryChanged   InventoryEventType = "inventory.changed"
	EventSalesChanged       InventoryEventType = "sales.changed"
)

// InventoryEvent is the payload pushed to the notification gateway. Delivery is at-most-once.
type InventoryEvent struct {
	ID          string             `json:"id"`
	Type        InventoryEventType `json:"type"`
	RequestID   string             `json:"request_id,omitempty"` // For distributed tracing
	ProductID   int64              `json:"product_id,omitempty"`
	NewQuantity *int               `json:"new_quantity,omitempty"`
	OrderID     int64              `json:"order_id,omitempty"`
	Status      string             `json:"status,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInventoryEvent publishes one event for async fan-out
	PublishInventoryEvent(ctx context.Context, event *InventoryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
