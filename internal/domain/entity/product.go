package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item whose stock is owned by the ledger.
type Product struct {
	ID                int64           `json:"id"`                  // Catalog identifier.
	Name              string          `json:"name"`                // Display name.
	ImageURL          string          `json:"image_url"`           // Primary image shown in the storefront.
	Price             decimal.Decimal `json:"price"`               // Current unit price.
	StockQuantity     int             `json:"stock_quantity"`      // Available quantity, never negative.
	LowStockThreshold int             `json:"low_stock_threshold"` // 0 disables low stock alerting.
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AlertingEnabled reports whether the product participates in low stock alerting.
func (p *Product) AlertingEnabled() bool {
	return p.LowStockThreshold > 0
}

// IsLow reports whether the quantity is at or below the configured threshold.
func (p *Product) IsLow() bool {
	return p.AlertingEnabled() && p.StockQuantity <= p.LowStockThreshold
}
