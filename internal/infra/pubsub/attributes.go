package pubsub

import (
	"strconv"

	"printshop/internal/domain/service"
)

// eventAttributes builds the Pub/Sub attributes subscribers filter on.
func eventAttributes(event *service.InventoryEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.ID,
		"event_type": string(event.Type),
	}
	if event.ProductID != 0 {
		attributes["product_id"] = strconv.FormatInt(event.ProductID, 10)
	}
	if event.OrderID != 0 {
		attributes["order_id"] = strconv.FormatInt(event.OrderID, 10)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
