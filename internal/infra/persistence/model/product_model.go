package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Catalog CRUD lives elsewhere; this service only reads it and moves stock_quantity.
type ProductModel struct {
	ID                int64           `gorm:"primaryKey;autoIncrement"`
	Name              string          `gorm:"type:varchar(255);not null"`
	ImageURL          string          `gorm:"type:varchar(1024);not null;default:''"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StockQuantity     int             `gorm:"not null;default:0;check:chk_products_stock_non_negative,stock_quantity >= 0"`
	LowStockThreshold int             `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CustomerModel is the read-only view of the 'customers' table.
type CustomerModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Phone     string `gorm:"type:varchar(50);not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
