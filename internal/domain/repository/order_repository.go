package repository

import (
	"context"
	"time"

	"printshop/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the persistence operations for orders and their lines.
type OrderRepository interface {
	// Create persists the order with its lines and fills in the generated ids.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its lines ordered by position.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// LockByID retrieves an order with its lines and holds a row lock on the order until the transaction ends.
	LockByID(ctx context.Context, id int64) (*entity.Order, error)

	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error

	UpdateDelivery(ctx context.Context, id int64, info entity.DeliveryInfo) error

	UpdateExpectedDeliveryDate(ctx context.Context, id int64, date *time.Time) error

	// ReplaceLines swaps the whole line set and the order total.
	ReplaceLines(ctx context.Context, orderID int64, lines []*entity.OrderLine, total decimal.Decimal) error
}
