package repository

import (
	"context"

	"printshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPurchaseNotFound is returned when a stock purchase is not found.
var ErrPurchaseNotFound = errors.New("stock purchase not found")

// StockRepository persists ledger entries and the purchase, receipt and adjustment documents behind them.
type StockRepository interface {
	// CreateTransaction appends a ledger entry.
	CreateTransaction(ctx context.Context, tx *entity.StockTransaction) error

	// ListTransactions returns ledger entries of a product, newest first.
	ListTransactions(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockTransaction, error)

	// CreatePurchase persists a purchase with its lines.
	CreatePurchase(ctx context.Context, purchase *entity.StockPurchase) error

	// LockPurchase retrieves a purchase with its lines and holds a row lock on it.
	LockPurchase(ctx context.Context, id int64) (*entity.StockPurchase, error)

	UpdatePurchaseLineReceived(ctx context.Context, lineID int64, received int) error

	UpdatePurchaseStatus(ctx context.Context, id int64, status entity.PurchaseStatus) error

	// CreateReceipt persists a receipt with its lines.
	CreateReceipt(ctx context.Context, receipt *entity.StockReceipt) error

	CreateAdjustment(ctx context.Context, adjustment *entity.StockAdjustment) error
}
