package main

import (
	"printshop/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProductModel{},
		model.CustomerModel{},
		model.OrderModel{},
		model.OrderLineModel{},
		model.OrderCustomizationModel{},
		model.StockTransactionModel{},
		model.StockPurchaseModel{},
		model.StockPurchaseLineModel{},
		model.StockReceiptModel{},
		model.StockReceiptLineModel{},
		model.StockAdjustmentModel{},
		model.AdjustmentReasonModel{},
		model.LowStockAlertModel{},
		model.AuditLogModel{},
		model.StaffDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
