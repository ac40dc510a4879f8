package usecase

import (
	"context"
	"time"

	"printshop/internal/domain/entity"
)

// OrderUsecase coordinates order placement and the staff-driven order workflow.
// Every mutating call runs as one transaction covering order rows, ledger
// entries, alert state and the audit row; events go out after commit.
type OrderUsecase interface {
	// PlaceOrder validates every referenced product in one batch, persists the
	// order with line snapshots and consumes stock. Any unknown product id
	// rejects the whole order.
	PlaceOrder(ctx context.Context, actor entity.Actor, customerID int64, lines []entity.OrderLineInput) (*entity.OrderView, error)

	// GetOrder returns the order view. Customers only see their own orders.
	GetOrder(ctx context.Context, actor entity.Actor, orderID int64) (*entity.OrderView, error)

	// UpdateOrder replaces the line set of a pending order.
	UpdateOrder(ctx context.Context, actor entity.Actor, orderID int64, lines []entity.OrderLineInput) (*entity.OrderView, error)

	// UpdateStatus moves the order along the workflow transition table.
	UpdateStatus(ctx context.Context, actor entity.Actor, orderID int64, status entity.OrderStatus) (*entity.OrderView, error)

	UpdateDeliveryInfo(ctx context.Context, actor entity.Actor, orderID int64, info entity.DeliveryInfo) (*entity.OrderView, error)

	UpdateExpectedDeliveryDate(ctx context.Context, actor entity.Actor, orderID int64, date *time.Time) (*entity.OrderView, error)

	// CancelOrder forces the order to cancelled from any pre-delivered status.
	CancelOrder(ctx context.Context, actor entity.Actor, orderID int64) (*entity.OrderView, error)

	// OrderQRCode renders the tracking QR code of an order the actor may see.
	OrderQRCode(ctx context.Context, actor entity.Actor, orderID int64) ([]byte, error)
}
