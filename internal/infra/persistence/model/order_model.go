package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Orders are never deleted, and customer_id carries no foreign key so orders outlive their customer.
type OrderModel struct {
	ID                   int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID           int64           `gorm:"not null;index"`
	Status               string          `gorm:"type:varchar(20);not null;index"`
	TotalPrice           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryAddress      string          `gorm:"type:text;not null;default:''"`
	DeliveryStatus       string          `gorm:"type:varchar(100);not null;default:''"`
	TrackingNumber       string          `gorm:"type:varchar(100);not null;default:''"`
	DeliveryNotes        string          `gorm:"type:text;not null;default:''"`
	ExpectedDeliveryDate *time.Time      `gorm:"type:date"`
	OrderedAt            time.Time       `gorm:"not null;index"`
	UpdatedAt            time.Time
	Lines                []*OrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM-specific struct for the 'order_lines' table.
// product_name and product_image are snapshots taken at order time.
type OrderLineModel struct {
	ID            int64                    `gorm:"primaryKey;autoIncrement"`
	OrderID       int64                    `gorm:"not null;index"`
	Position      int                      `gorm:"not null"`
	ProductID     int64                    `gorm:"not null;index"`
	ProductName   string                   `gorm:"type:varchar(255);not null"`
	ProductImage  string                   `gorm:"type:varchar(1024);not null;default:''"`
	UnitPrice     decimal.Decimal          `gorm:"type:numeric(12,2);not null"`
	Quantity      int                      `gorm:"not null"`
	Customization *OrderCustomizationModel `gorm:"foreignKey:OrderLineID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// OrderCustomizationModel is the GORM-specific struct for the 'order_line_customizations' table.
type OrderCustomizationModel struct {
	ID          int64                       `gorm:"primaryKey;autoIncrement"`
	OrderLineID int64                       `gorm:"not null;uniqueIndex"`
	Template    string                      `gorm:"type:varchar(255);not null;default:''"`
	Text        string                      `gorm:"type:text;not null;default:''"`
	Font        string                      `gorm:"type:varchar(100);not null;default:''"`
	Color       string                      `gorm:"type:varchar(50);not null;default:''"`
	AssetPaths  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
}

// TableName explicitly sets the table name for GORM.
func (OrderCustomizationModel) TableName() string {
	return "order_line_customizations"
}
