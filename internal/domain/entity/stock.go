package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MaxQuantity bounds any single quantity and any per-product total; it is
// the range of the INTEGER quantity columns.
const MaxQuantity = math.MaxInt32

// StockOrigin tags why a ledger entry was written.
type StockOrigin string

const (
	StockOriginOrder        StockOrigin = "order"
	StockOriginReceipt      StockOrigin = "receipt"
	StockOriginAdjustment   StockOrigin = "adjustment"
	StockOriginCancellation StockOrigin = "cancellation"
	StockOriginOrderEdit    StockOrigin = "order_edit"
)

// StockTransaction is an append-only ledger entry.
type StockTransaction struct {
	ID            int64       `json:"id"`
	ProductID     int64       `json:"product_id"`
	Delta         int         `json:"delta"`          // Signed change applied to the product.
	QuantityAfter int         `json:"quantity_after"` // Product quantity right after the change.
	Origin        StockOrigin `json:"origin"`
	ReferenceID   int64       `json:"reference_id"` // Order, receipt or adjustment id depending on Origin.
	CreatedAt     time.Time   `json:"created_at"`
}

// StockChange is the result of a ledger mutation on one product.
type StockChange struct {
	Product     *Product
	Transaction *StockTransaction
}

// PurchaseStatus tracks how much of a purchase has arrived.
type PurchaseStatus string

const (
	PurchaseStatusOpen              PurchaseStatus = "open"
	PurchaseStatusPartiallyReceived PurchaseStatus = "partially_received"
	PurchaseStatusReceived          PurchaseStatus = "received"
)

// StockPurchase is an intent to buy stock from a supplier.
type StockPurchase struct {
	ID         int64                `json:"id"`
	Supplier   string               `json:"supplier"`
	Status     PurchaseStatus       `json:"status"`
	EmployeeID int64                `json:"employee_id"`
	CreatedAt  time.Time            `json:"created_at"`
	Lines      []*StockPurchaseLine `json:"lines"`
}

// StockPurchaseLine is one product of a purchase.
type StockPurchaseLine struct {
	ID               int64           `json:"id"`
	PurchaseID       int64           `json:"purchase_id"`
	ProductID        int64           `json:"product_id"`
	OrderedQuantity  int             `json:"ordered_quantity"`
	ReceivedQuantity int             `json:"received_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// Outstanding returns how many units are still expected.
func (l *StockPurchaseLine) Outstanding() int {
	return l.OrderedQuantity - l.ReceivedQuantity
}

// StockReceipt confirms physical arrival of part of a purchase.
type StockReceipt struct {
	ID         int64               `json:"id"`
	PurchaseID int64               `json:"purchase_id"`
	EmployeeID int64               `json:"employee_id"`
	ReceivedAt time.Time           `json:"received_at"`
	Lines      []*StockReceiptLine `json:"lines"`
}

// StockReceiptLine is one received quantity of a receipt.
type StockReceiptLine struct {
	ID               int64 `json:"id"`
	ReceiptID        int64 `json:"receipt_id"`
	PurchaseLineID   int64 `json:"purchase_line_id"`
	ProductID        int64 `json:"product_id"`
	ReceivedQuantity int   `json:"received_quantity"`
}

// StockAdjustment is a manual correction outside of the order flow.
type StockAdjustment struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"` // Signed.
	ReasonID   int64     `json:"reason_id"`
	ReasonName string    `json:"reason_name"` // Snapshot taken when the adjustment was made.
	EmployeeID int64     `json:"employee_id"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// AdjustmentReason is an entry of the managed reason catalog.
type AdjustmentReason struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// PurchaseLineInput is one requested line of a new purchase.
type PurchaseLineInput struct {
	ProductID int64
	Quantity  int
	UnitCost  decimal.Decimal
}

// ReceiptLineInput is one received quantity against a purchase line.
type ReceiptLineInput struct {
	PurchaseLineID int64
	Quantity       int
}

// AdjustmentInput describes a manual stock correction.
type AdjustmentInput struct {
	ProductID int64
	Quantity  int
	ReasonID  int64
	Note      string
}
