package model

import "time"

// LowStockAlertModel is the GORM-specific struct for the 'low_stock_alerts' table.
// A partial unique index on product_id WHERE NOT resolved keeps one open alert per product.
type LowStockAlertModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	ProductID       int64     `gorm:"not null;index"`
	QuantityAtAlert int       `gorm:"not null"`
	Threshold       int       `gorm:"not null"`
	Resolved        bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null"`
	ResolvedAt      *time.Time
}

// TableName explicitly sets the table name for GORM.
func (LowStockAlertModel) TableName() string {
	return "low_stock_alerts"
}
