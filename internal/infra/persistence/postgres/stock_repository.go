package postgres

import (
	"context"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// stockRepository implements the repository.StockRepository interface.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// CreateTransaction appends a ledger entry.
func (repo *stockRepository) CreateTransaction(ctx context.Context, tx *entity.StockTransaction) error {
	txM := &model.StockTransactionModel{
		ProductID:     tx.ProductID,
		Delta:         tx.Delta,
		QuantityAfter: tx.QuantityAfter,
		Origin:        string(tx.Origin),
		ReferenceID:   tx.ReferenceID,
		CreatedAt:     tx.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append stock transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt

	return nil
}

// ListTransactions reads ledger history from a replica.
func (repo *stockRepository) ListTransactions(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockTransaction, error) {
	var txModels []*model.StockTransactionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("product_id = ?", productID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&txModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stock transactions")
	}

	txs := make([]*entity.StockTransaction, 0, len(txModels))
	for _, txM := range txModels {
		txs = append(txs, &entity.StockTransaction{
			ID:            txM.ID,
			ProductID:     txM.ProductID,
			Delta:         txM.Delta,
			QuantityAfter: txM.QuantityAfter,
			Origin:        entity.StockOrigin(txM.Origin),
			ReferenceID:   txM.ReferenceID,
			CreatedAt:     txM.CreatedAt,
		})
	}

	return txs, nil
}

// CreatePurchase persists a purchase with its lines.
func (repo *stockRepository) CreatePurchase(ctx context.Context, purchase *entity.StockPurchase) error {
	purchaseM := &model.StockPurchaseModel{
		Supplier:   purchase.Supplier,
		Status:     string(purchase.Status),
		EmployeeID: purchase.EmployeeID,
		CreatedAt:  purchase.CreatedAt,
		Lines:      make([]*model.StockPurchaseLineModel, 0, len(purchase.Lines)),
	}
	for _, line := range purchase.Lines {
		purchaseM.Lines = append(purchaseM.Lines, &model.StockPurchaseLineModel{
			ProductID:        line.ProductID,
			OrderedQuantity:  line.OrderedQuantity,
			ReceivedQuantity: line.ReceivedQuantity,
			UnitCost:         line.UnitCost,
		})
	}

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt
	for i, lineM := range purchaseM.Lines {
		purchase.Lines[i].ID = lineM.ID
		purchase.Lines[i].PurchaseID = purchaseM.ID
	}

	return nil
}

// LockPurchase holds a FOR UPDATE lock on the purchase so concurrent receipts serialize.
func (repo *stockRepository) LockPurchase(ctx context.Context, id int64) (*entity.StockPurchase, error) {
	var purchaseM model.StockPurchaseModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to lock stock purchase")
	}

	if err := repo.db.WithContext(ctx).
		Where("purchase_id = ?", id).
		Order("id ASC").
		Find(&purchaseM.Lines).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load stock purchase lines")
	}

	purchase := &entity.StockPurchase{
		ID:         purchaseM.ID,
		Supplier:   purchaseM.Supplier,
		Status:     entity.PurchaseStatus(purchaseM.Status),
		EmployeeID: purchaseM.EmployeeID,
		CreatedAt:  purchaseM.CreatedAt,
		Lines:      make([]*entity.StockPurchaseLine, 0, len(purchaseM.Lines)),
	}
	for _, lineM := range purchaseM.Lines {
		purchase.Lines = append(purchase.Lines, &entity.StockPurchaseLine{
			ID:               lineM.ID,
			PurchaseID:       lineM.PurchaseID,
			ProductID:        lineM.ProductID,
			OrderedQuantity:  lineM.OrderedQuantity,
			ReceivedQuantity: lineM.ReceivedQuantity,
			UnitCost:         lineM.UnitCost,
		})
	}

	return purchase, nil
}

func (repo *stockRepository) UpdatePurchaseLineReceived(ctx context.Context, lineID int64, received int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockPurchaseLineModel{}).
		Where("id = ?", lineID).
		Update("received_quantity", received)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update purchase line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPurchaseNotFound
	}

	return nil
}

func (repo *stockRepository) UpdatePurchaseStatus(ctx context.Context, id int64, status entity.PurchaseStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockPurchaseModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update purchase status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPurchaseNotFound
	}

	return nil
}

// CreateReceipt persists a receipt with its lines.
func (repo *stockRepository) CreateReceipt(ctx context.Context, receipt *entity.StockReceipt) error {
	receiptM := &model.StockReceiptModel{
		PurchaseID: receipt.PurchaseID,
		EmployeeID: receipt.EmployeeID,
		ReceivedAt: receipt.ReceivedAt,
		Lines:      make([]*model.StockReceiptLineModel, 0, len(receipt.Lines)),
	}
	for _, line := range receipt.Lines {
		receiptM.Lines = append(receiptM.Lines, &model.StockReceiptLineModel{
			PurchaseLineID:   line.PurchaseLineID,
			ProductID:        line.ProductID,
			ReceivedQuantity: line.ReceivedQuantity,
		})
	}

	if err := repo.db.WithContext(ctx).Create(receiptM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock receipt")
	}

	receipt.ID = receiptM.ID
	for i, lineM := range receiptM.Lines {
		receipt.Lines[i].ID = lineM.ID
		receipt.Lines[i].ReceiptID = receiptM.ID
	}

	return nil
}

func (repo *stockRepository) CreateAdjustment(ctx context.Context, adjustment *entity.StockAdjustment) error {
	adjustmentM := &model.StockAdjustmentModel{
		ProductID:  adjustment.ProductID,
		Quantity:   adjustment.Quantity,
		ReasonID:   adjustment.ReasonID,
		ReasonName: adjustment.ReasonName,
		EmployeeID: adjustment.EmployeeID,
		Note:       adjustment.Note,
		CreatedAt:  adjustment.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(adjustmentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock adjustment")
	}

	adjustment.ID = adjustmentM.ID
	adjustment.CreatedAt = adjustmentM.CreatedAt

	return nil
}
