package repository

import (
	"context"
	"time"

	"printshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when a low stock alert is not found.
var ErrAlertNotFound = errors.New("low stock alert not found")

// AlertRepository persists low stock alerts.
type AlertRepository interface {
	// FindUnresolvedByProduct returns ErrAlertNotFound when the product has no open alert.
	FindUnresolvedByProduct(ctx context.Context, productID int64) (*entity.LowStockAlert, error)

	Create(ctx context.Context, alert *entity.LowStockAlert) error

	// ResolveByProduct resolves every open alert of the product and returns how many changed.
	ResolveByProduct(ctx context.Context, productID int64, at time.Time) (int64, error)

	FindByID(ctx context.Context, id int64) (*entity.LowStockAlert, error)

	// Resolve marks one alert resolved. Already resolved alerts are left untouched.
	Resolve(ctx context.Context, id int64, at time.Time) error

	ListUnresolved(ctx context.Context, limit, offset int) ([]*entity.LowStockAlert, error)
}
