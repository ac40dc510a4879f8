package entity

import "time"

// LowStockAlert flags a product at or below its threshold.
type LowStockAlert struct {
	ID              int64      `json:"id"`
	ProductID       int64      `json:"product_id"`
	QuantityAtAlert int        `json:"quantity_at_alert"`
	Threshold       int        `json:"threshold"`
	Resolved        bool       `json:"resolved"`
	CreatedAt       time.Time  `json:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
}
