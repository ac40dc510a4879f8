package usecase

import (
	"context"

	"printshop/internal/domain/entity"
)

// StockUsecase covers stock movements outside of the order flow.
type StockUsecase interface {
	CreatePurchase(ctx context.Context, actor entity.Actor, supplier string, lines []entity.PurchaseLineInput) (*entity.StockPurchase, error)

	// ReceiveStock books a (possibly partial) receipt against a purchase.
	ReceiveStock(ctx context.Context, actor entity.Actor, purchaseID int64, lines []entity.ReceiptLineInput) (*entity.StockReceipt, error)

	// AdjustStock applies a signed manual correction with a catalogued reason.
	AdjustStock(ctx context.Context, actor entity.Actor, input entity.AdjustmentInput) (*entity.StockAdjustment, error)

	// ListTransactions returns the ledger history of a product, newest first.
	ListTransactions(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockTransaction, error)
}

// ReasonUsecase manages the adjustment reason catalog.
type ReasonUsecase interface {
	CreateReason(ctx context.Context, actor entity.Actor, name string) (*entity.AdjustmentReason, error)
	RenameReason(ctx context.Context, actor entity.Actor, id int64, name string) (*entity.AdjustmentReason, error)
	DeleteReason(ctx context.Context, actor entity.Actor, id int64) error
	ListReasons(ctx context.Context) ([]*entity.AdjustmentReason, error)
}

// AlertUsecase exposes low stock alerts to staff.
type AlertUsecase interface {
	ListUnresolved(ctx context.Context, limit, offset int) ([]*entity.LowStockAlert, error)

	// ResolveAlert is a no-op for an already resolved alert.
	ResolveAlert(ctx context.Context, actor entity.Actor, alertID int64) (*entity.LowStockAlert, error)
}

// AuditUsecase pages through the audit trail.
type AuditUsecase interface {
	QueryAuditLogs(ctx context.Context, filter entity.AuditFilter) (*entity.AuditPage, error)
}
