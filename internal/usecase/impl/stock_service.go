package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/errors"
	"printshop/internal/pkg/clock"
	"printshop/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// StockServiceParams collects the dependencies of the stock use cases.
type StockServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	StockRepo   repository.StockRepository
	Ledger      *StockLedger
	Audit       *AuditWriter
	Dispatcher  *EventDispatcher
	Clock       clock.Clock
	Logger      *slog.Logger
}

// stockService implements the StockUsecase interface.
type stockService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	ledger      *StockLedger
	audit       *AuditWriter
	dispatcher  *EventDispatcher
	clock       clock.Clock
	logger      *slog.Logger
}

// NewStockService is the constructor for stockService.
func NewStockService(params StockServiceParams) usecase.StockUsecase {
	return &stockService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		stockRepo:   params.StockRepo,
		ledger:      params.Ledger,
		audit:       params.Audit,
		dispatcher:  params.Dispatcher,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *stockService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePurchase records the intent to buy goods from a supplier. No stock moves yet.
func (srv *stockService) CreatePurchase(
	ctx context.Context,
	actor entity.Actor,
	supplier string,
	lines []entity.PurchaseLineInput,
) (*entity.StockPurchase, error) {
	supplier = strings.TrimSpace(supplier)

	var problems []string
	if supplier == "" {
		problems = append(problems, "supplier is required")
	}
	if len(lines) == 0 {
		problems = append(problems, "purchase must contain at least one line")
	}
	for i, line := range lines {
		if line.ProductID <= 0 {
			problems = append(problems, fmt.Sprintf("line %d: product_id must be positive", i))
		}
		switch {
		case line.Quantity <= 0:
			problems = append(problems, fmt.Sprintf("line %d: quantity must be positive", i))
		case line.Quantity > entity.MaxQuantity:
			problems = append(problems, fmt.Sprintf("line %d: quantity %d exceeds %d", i, line.Quantity, entity.MaxQuantity))
		}
		if line.UnitCost.IsNegative() {
			problems = append(problems, fmt.Sprintf("line %d: unit_cost must not be negative", i))
		}
	}
	if len(problems) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	var purchase *entity.StockPurchase

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ids := make([]int64, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}
		slices.Sort(ids)
		ids = slices.Compact(ids)

		products, err := repoFactory.ProductRepo().FindByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to resolve products")
		}
		known := make(map[int64]bool, len(products))
		for _, product := range products {
			known[product.ID] = true
		}
		var missing []string
		for _, id := range ids {
			if !known[id] {
				missing = append(missing, strconv.FormatInt(id, 10))
			}
		}
		if len(missing) > 0 {
			return domainerrors.ErrUnknownProducts.WithDetails("unknown product ids: " + strings.Join(missing, ", "))
		}

		purchase = &entity.StockPurchase{
			Supplier:   supplier,
			Status:     entity.PurchaseStatusOpen,
			EmployeeID: actor.ID,
			CreatedAt:  srv.clock.Now(),
		}
		for _, line := range lines {
			purchase.Lines = append(purchase.Lines, &entity.StockPurchaseLine{
				ProductID:       line.ProductID,
				OrderedQuantity: line.Quantity,
				UnitCost:        line.UnitCost,
			})
		}
		if err := repoFactory.StockRepo().CreatePurchase(ctx, purchase); err != nil {
			return errors.Wrap(err, "failed to create stock purchase")
		}

		srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
			Action:        entity.AuditActionPurchaseCreated,
			EntityType:    entity.AuditEntityPurchase,
			EntityID:      strconv.FormatInt(purchase.ID, 10),
			After:         purchase,
			CriticalValue: supplier,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Stock purchase created", slog.Int64("purchase_id", purchase.ID), slog.String("supplier", supplier))

	return purchase, nil
}

// ReceiveStock books arrived goods against purchase lines and moves them into stock.
func (srv *stockService) ReceiveStock(
	ctx context.Context,
	actor entity.Actor,
	purchaseID int64,
	lines []entity.ReceiptLineInput,
) (*entity.StockReceipt, error) {
	if len(lines) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("receipt must contain at least one line")
	}

	requested := make(map[int64]int, len(lines))
	var problems []string
	for i, line := range lines {
		switch {
		case line.Quantity <= 0:
			problems = append(problems, fmt.Sprintf("line %d: quantity must be positive", i))
		case line.Quantity > entity.MaxQuantity-requested[line.PurchaseLineID]:
			problems = append(problems, fmt.Sprintf("line %d: quantity %d exceeds %d for purchase line %d",
				i, line.Quantity, entity.MaxQuantity, line.PurchaseLineID))
		default:
			requested[line.PurchaseLineID] += line.Quantity
		}
	}
	if len(problems) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	var (
		receipt *entity.StockReceipt
		changes []*entity.StockChange
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stockRepo := repoFactory.StockRepo()

		purchase, err := stockRepo.LockPurchase(ctx, purchaseID)
		if err != nil {
			if errors.Is(err, repository.ErrPurchaseNotFound) {
				return domainerrors.ErrPurchaseNotFound.WithDetails(fmt.Sprintf("purchase %d", purchaseID))
			}

			return errors.Wrap(err, "failed to lock stock purchase")
		}

		purchaseLines := make(map[int64]*entity.StockPurchaseLine, len(purchase.Lines))
		for _, line := range purchase.Lines {
			purchaseLines[line.ID] = line
		}

		lineIDs := sortedKeys(requested)
		var unknown, over []string
		for _, lineID := range lineIDs {
			line, ok := purchaseLines[lineID]
			if !ok {
				unknown = append(unknown, strconv.FormatInt(lineID, 10))

				continue
			}
			if requested[lineID] > line.Outstanding() {
				over = append(over, fmt.Sprintf("line %d: requested %d, outstanding %d", lineID, requested[lineID], line.Outstanding()))
			}
		}
		if len(unknown) > 0 {
			return domainerrors.ErrValidationFailed.WithDetails("unknown purchase line ids: " + strings.Join(unknown, ", "))
		}
		if len(over) > 0 {
			return domainerrors.ErrOverReceipt.WithDetails(strings.Join(over, "; "))
		}

		receipt = &entity.StockReceipt{
			PurchaseID: purchaseID,
			EmployeeID: actor.ID,
			ReceivedAt: srv.clock.Now(),
		}
		for _, lineID := range lineIDs {
			receipt.Lines = append(receipt.Lines, &entity.StockReceiptLine{
				PurchaseLineID:   lineID,
				ProductID:        purchaseLines[lineID].ProductID,
				ReceivedQuantity: requested[lineID],
			})
		}
		if err := stockRepo.CreateReceipt(ctx, receipt); err != nil {
			return errors.Wrap(err, "failed to create stock receipt")
		}

		// Lock product rows in ascending id order.
		receiptLines := slices.Clone(receipt.Lines)
		slices.SortStableFunc(receiptLines, func(a, b *entity.StockReceiptLine) int {
			return cmp.Compare(a.ProductID, b.ProductID)
		})
		for _, line := range receiptLines {
			purchaseLine := purchaseLines[line.PurchaseLineID]
			purchaseLine.ReceivedQuantity += line.ReceivedQuantity
			if err := stockRepo.UpdatePurchaseLineReceived(ctx, purchaseLine.ID, purchaseLine.ReceivedQuantity); err != nil {
				return errors.Wrap(err, "failed to update purchase line")
			}

			change, err := srv.ledger.Receive(ctx, repoFactory, line.ProductID, line.ReceivedQuantity, receipt.ID)
			if err != nil {
				return err
			}
			changes = append(changes, change)
		}

		status := entity.PurchaseStatusReceived
		for _, line := range purchase.Lines {
			if line.Outstanding() > 0 {
				status = entity.PurchaseStatusPartiallyReceived

				break
			}
		}
		if status != purchase.Status {
			if err := stockRepo.UpdatePurchaseStatus(ctx, purchaseID, status); err != nil {
				return errors.Wrap(err, "failed to update purchase status")
			}
		}

		srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
			Action:        entity.AuditActionStockReceived,
			EntityType:    entity.AuditEntityReceipt,
			EntityID:      strconv.FormatInt(receipt.ID, 10),
			After:         receipt,
			CriticalValue: string(status),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Stock received", slog.Int64("purchase_id", purchaseID), slog.Int64("receipt_id", receipt.ID))
	srv.dispatcher.Dispatch(ctx, stockEvents(changes)...)

	return receipt, nil
}

// AdjustStock applies a signed manual correction.
func (srv *stockService) AdjustStock(ctx context.Context, actor entity.Actor, input entity.AdjustmentInput) (*entity.StockAdjustment, error) {
	var problems []string
	if input.ProductID <= 0 {
		problems = append(problems, "product_id must be positive")
	}
	if input.ReasonID <= 0 {
		problems = append(problems, "reason_id must be positive")
	}
	switch {
	case input.Quantity == 0:
		problems = append(problems, "quantity must not be zero")
	case input.Quantity > entity.MaxQuantity || input.Quantity < -entity.MaxQuantity:
		problems = append(problems, fmt.Sprintf("quantity %d is out of range", input.Quantity))
	}
	if len(problems) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	var (
		adjustment *entity.StockAdjustment
		change     *entity.StockChange
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		adjustment, change, err = srv.ledger.Adjust(ctx, repoFactory, actor.ID, input)
		if err != nil {
			return err
		}

		srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
			Action:        entity.AuditActionStockAdjusted,
			EntityType:    entity.AuditEntityAdjust,
			EntityID:      strconv.FormatInt(adjustment.ID, 10),
			After:         adjustment,
			CriticalValue: strconv.Itoa(input.Quantity),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Stock adjusted",
		slog.Int64("product_id", input.ProductID),
		slog.Int("quantity", input.Quantity),
		slog.String("reason", adjustment.ReasonName),
	)
	srv.dispatcher.Dispatch(ctx, stockEvents([]*entity.StockChange{change})...)

	return adjustment, nil
}

// ListTransactions returns the ledger history of one product.
func (srv *stockService) ListTransactions(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockTransaction, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(fmt.Sprintf("product %d", productID))
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	limit, offset = normalizePage(limit, offset)

	txns, err := srv.stockRepo.ListTransactions(ctx, productID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock transactions")
	}

	return txns, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
