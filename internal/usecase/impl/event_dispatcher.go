package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	"printshop/internal/domain/service"
	"printshop/internal/pkg/clock"

	"github.com/google/uuid"
)

// EventDispatcher hands committed changes to the notification gateway.
// Publishing happens off the request path; failures are logged and dropped.
type EventDispatcher struct {
	publisher service.EventPublisher
	timeout   time.Duration
	clock     clock.Clock
	logger    *slog.Logger
	wg        sync.WaitGroup
}

// NewEventDispatcher creates a dispatcher bounding each batch by timeout.
func NewEventDispatcher(publisher service.EventPublisher, timeout time.Duration, clk clock.Clock, logger *slog.Logger) *EventDispatcher {
	return &EventDispatcher{
		publisher: publisher,
		timeout:   timeout,
		clock:     clk,
		logger:    logger,
	}
}

// Dispatch publishes events in the background. It must only be called after
// the transaction that produced them committed.
func (d *EventDispatcher) Dispatch(ctx context.Context, events ...*service.InventoryEvent) {
	if len(events) == 0 {
		return
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	now := d.clock.Now()
	for _, event := range events {
		if event.ID == "" {
			event.ID = uuid.New().String()
		}
		if event.RequestID == "" {
			event.RequestID = requestID
		}
		if event.OccurredAt.IsZero() {
			event.OccurredAt = now
		}
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer cancel()

		for _, event := range events {
			if err := d.publisher.PublishInventoryEvent(publishCtx, event); err != nil {
				logger.Warn("Failed to publish inventory event",
					slog.String("event_id", event.ID),
					slog.String("event_type", string(event.Type)),
					slog.Any("error", err),
				)
			}
		}
	}()
}

// Wait blocks until every dispatched batch finished.
func (d *EventDispatcher) Wait() {
	d.wg.Wait()
}

// StockChangedEvent reports the quantity of a product after a committed change.
func StockChangedEvent(productID int64, quantity int) *service.InventoryEvent {
	return &service.InventoryEvent{
		Type:        service.EventStockChanged,
		ProductID:   productID,
		NewQuantity: &quantity,
	}
}

// OrderStatusChangedEvent reports the displayed status of an order.
func OrderStatusChangedEvent(orderID int64, status string) *service.InventoryEvent {
	return &service.InventoryEvent{
		Type:    service.EventOrderStatusChanged,
		OrderID: orderID,
		Status:  status,
	}
}

// InventoryChangedEvent tells dashboards to refresh inventory figures.
func InventoryChangedEvent() *service.InventoryEvent {
	return &service.InventoryEvent{Type: service.EventInventoryChanged}
}

// SalesChangedEvent tells dashboards to refresh sales figures.
func SalesChangedEvent(orderID int64) *service.InventoryEvent {
	return &service.InventoryEvent{Type: service.EventSalesChanged, OrderID: orderID}
}

// stockEvents turns ledger changes into one event per product carrying the latest quantity.
func stockEvents(changes []*entity.StockChange) []*service.InventoryEvent {
	latest := make(map[int64]int, len(changes))
	order := make([]int64, 0, len(changes))
	for _, change := range changes {
		if _, seen := latest[change.Product.ID]; !seen {
			order = append(order, change.Product.ID)
		}
		latest[change.Product.ID] = change.Product.StockQuantity
	}

	events := make([]*service.InventoryEvent, 0, len(order)+1)
	for _, productID := range order {
		events = append(events, StockChangedEvent(productID, latest[productID]))
	}
	if len(events) > 0 {
		events = append(events, InventoryChangedEvent())
	}

	return events
}
