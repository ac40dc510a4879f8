// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"fmt"

	"printshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional decrement matched no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports the quantity on hand when a conditional
// decrement matched no row. It matches ErrInsufficientStock under errors.Is.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

// Is lets callers test against ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ProductRepository defines the stock-related operations on catalog products.
// Only the stock ledger calls the mutating methods.
type ProductRepository interface {
	// FindByIDs resolves a batch of products. Unknown ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)

	// FindByID retrieves one product.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// ConsumeStock atomically decrements the quantity only if at least qty is available
	// and returns the product as it is after the change. A shortfall is reported as
	// *InsufficientStockError.
	ConsumeStock(ctx context.Context, id int64, qty int) (*entity.Product, error)

	// AddStock atomically increments the quantity and returns the product after the change.
	AddStock(ctx context.Context, id int64, qty int) (*entity.Product, error)
}
