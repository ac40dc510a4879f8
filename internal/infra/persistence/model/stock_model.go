package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockTransactionModel is the GORM-specific struct for the append-only 'stock_transactions' ledger.
type StockTransactionModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	ProductID     int64     `gorm:"not null;index:idx_stock_transactions_product_created,priority:1"`
	Delta         int       `gorm:"not null"`
	QuantityAfter int       `gorm:"not null"`
	Origin        string    `gorm:"type:varchar(20);not null"`
	ReferenceID   int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index:idx_stock_transactions_product_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (StockTransactionModel) TableName() string {
	return "stock_transactions"
}

// StockPurchaseModel is the GORM-specific struct for the 'stock_purchases' table.
type StockPurchaseModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Supplier   string `gorm:"type:varchar(255);not null"`
	Status     string `gorm:"type:varchar(20);not null"`
	EmployeeID int64  `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Lines      []*StockPurchaseLineModel `gorm:"foreignKey:PurchaseID"`
}

// TableName explicitly sets the table name for GORM.
func (StockPurchaseModel) TableName() string {
	return "stock_purchases"
}

// StockPurchaseLineModel is the GORM-specific struct for the 'stock_purchase_lines' table.
type StockPurchaseLineModel struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	PurchaseID       int64           `gorm:"not null;index"`
	ProductID        int64           `gorm:"not null"`
	OrderedQuantity  int             `gorm:"not null"`
	ReceivedQuantity int             `gorm:"not null;default:0"`
	UnitCost         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (StockPurchaseLineModel) TableName() string {
	return "stock_purchase_lines"
}

// StockReceiptModel is the GORM-specific struct for the 'stock_receipts' table.
type StockReceiptModel struct {
	ID         int64                    `gorm:"primaryKey;autoIncrement"`
	PurchaseID int64                    `gorm:"not null;index"`
	EmployeeID int64                    `gorm:"not null"`
	ReceivedAt time.Time                `gorm:"not null"`
	Lines      []*StockReceiptLineModel `gorm:"foreignKey:ReceiptID"`
}

// TableName explicitly sets the table name for GORM.
func (StockReceiptModel) TableName() string {
	return "stock_receipts"
}

// StockReceiptLineModel is the GORM-specific struct for the 'stock_receipt_lines' table.
type StockReceiptLineModel struct {
	ID               int64 `gorm:"primaryKey;autoIncrement"`
	ReceiptID        int64 `gorm:"not null;index"`
	PurchaseLineID   int64 `gorm:"not null"`
	ProductID        int64 `gorm:"not null"`
	ReceivedQuantity int   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (StockReceiptLineModel) TableName() string {
	return "stock_receipt_lines"
}

// StockAdjustmentModel is the GORM-specific struct for the 'stock_adjustments' table.
// reason_name is a snapshot so renaming a reason never rewrites history.
type StockAdjustmentModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ProductID  int64  `gorm:"not null;index"`
	Quantity   int    `gorm:"not null"`
	ReasonID   int64  `gorm:"not null"`
	ReasonName string `gorm:"type:varchar(255);not null"`
	EmployeeID int64  `gorm:"not null"`
	Note       string `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockAdjustmentModel) TableName() string {
	return "stock_adjustments"
}

// AdjustmentReasonModel is the GORM-specific struct for the 'adjustment_reasons' catalog.
type AdjustmentReasonModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AdjustmentReasonModel) TableName() string {
	return "adjustment_reasons"
}
