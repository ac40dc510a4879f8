package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/errors"
	"printshop/internal/pkg/clock"
)

// StockLedger is the only writer of product stock quantities. Every method runs
// against the repositories of the caller's transaction, appends a ledger entry
// and re-evaluates low stock alerts for the product it touched.
type StockLedger struct {
	monitor *AlertMonitor
	clock   clock.Clock
	logger  *slog.Logger
}

// NewStockLedger creates the ledger.
func NewStockLedger(monitor *AlertMonitor, clk clock.Clock, logger *slog.Logger) *StockLedger {
	return &StockLedger{
		monitor: monitor,
		clock:   clk,
		logger:  logger,
	}
}

func (l *StockLedger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// Consume takes qty units out of stock. The decrement only happens when enough
// stock is available; otherwise ErrInsufficientStock names requested and available quantities.
func (l *StockLedger) Consume(
	ctx context.Context,
	repos repository.RepositoryFactory,
	productID int64,
	qty int,
	origin entity.StockOrigin,
	referenceID int64,
) (*entity.StockChange, error) {
	if qty <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("quantity for product %d must be positive", productID))
	}

	product, err := repos.ProductRepo().ConsumeStock(ctx, productID, qty)
	if err != nil {
		return nil, mapProductError(err, productID, qty)
	}

	return l.record(ctx, repos, product, -qty, origin, referenceID)
}

// Restore puts qty units back into stock, e.g. for cancelled or edited orders.
func (l *StockLedger) Restore(
	ctx context.Context,
	repos repository.RepositoryFactory,
	productID int64,
	qty int,
	origin entity.StockOrigin,
	referenceID int64,
) (*entity.StockChange, error) {
	if qty <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("quantity for product %d must be positive", productID))
	}

	product, err := repos.ProductRepo().AddStock(ctx, productID, qty)
	if err != nil {
		return nil, mapProductError(err, productID, qty)
	}

	return l.record(ctx, repos, product, qty, origin, referenceID)
}

// Receive books goods that physically arrived for a purchase.
func (l *StockLedger) Receive(
	ctx context.Context,
	repos repository.RepositoryFactory,
	productID int64,
	qty int,
	receiptID int64,
) (*entity.StockChange, error) {
	return l.Restore(ctx, repos, productID, qty, entity.StockOriginReceipt, receiptID)
}

// Adjust applies a manual correction. The reason must be active; its current
// name is copied onto the adjustment so later renames leave history untouched.
func (l *StockLedger) Adjust(
	ctx context.Context,
	repos repository.RepositoryFactory,
	employeeID int64,
	input entity.AdjustmentInput,
) (*entity.StockAdjustment, *entity.StockChange, error) {
	if input.Quantity == 0 {
		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("adjustment quantity must not be zero")
	}

	reason, err := repos.ReasonRepo().FindActiveByID(ctx, input.ReasonID)
	if err != nil {
		if errors.Is(err, repository.ErrReasonNotFound) {
			return nil, nil, domainerrors.ErrReasonNotFound.WithDetails(fmt.Sprintf("reason %d", input.ReasonID))
		}

		return nil, nil, errors.Wrap(err, "failed to find adjustment reason")
	}

	if _, err := repos.ProductRepo().FindByID(ctx, input.ProductID); err != nil {
		return nil, nil, mapProductError(err, input.ProductID, 0)
	}

	adjustment := &entity.StockAdjustment{
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		ReasonID:   reason.ID,
		ReasonName: reason.Name,
		EmployeeID: employeeID,
		Note:       input.Note,
		CreatedAt:  l.clock.Now(),
	}
	if err := repos.StockRepo().CreateAdjustment(ctx, adjustment); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create stock adjustment")
	}

	var change *entity.StockChange
	if input.Quantity < 0 {
		change, err = l.Consume(ctx, repos, input.ProductID, -input.Quantity, entity.StockOriginAdjustment, adjustment.ID)
	} else {
		change, err = l.Restore(ctx, repos, input.ProductID, input.Quantity, entity.StockOriginAdjustment, adjustment.ID)
	}
	if err != nil {
		return nil, nil, err
	}

	return adjustment, change, nil
}

func (l *StockLedger) record(
	ctx context.Context,
	repos repository.RepositoryFactory,
	product *entity.Product,
	delta int,
	origin entity.StockOrigin,
	referenceID int64,
) (*entity.StockChange, error) {
	txn := &entity.StockTransaction{
		ProductID:     product.ID,
		Delta:         delta,
		QuantityAfter: product.StockQuantity,
		Origin:        origin,
		ReferenceID:   referenceID,
		CreatedAt:     l.clock.Now(),
	}
	if err := repos.StockRepo().CreateTransaction(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to record stock transaction")
	}

	if err := l.monitor.Evaluate(ctx, repos, product); err != nil {
		return nil, err
	}

	l.log(ctx).Debug("Stock changed",
		slog.Int64("product_id", product.ID),
		slog.Int("delta", delta),
		slog.Int("quantity_after", product.StockQuantity),
		slog.String("origin", string(origin)),
	)

	return &entity.StockChange{Product: product, Transaction: txn}, nil
}

// mapProductError turns repository failures into AppErrors. The available
// quantity comes from the repository error itself, never from a second read.
func mapProductError(err error, productID int64, requested int) error {
	var shortfall *repository.InsufficientStockError

	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound.WithDetails(fmt.Sprintf("product %d", productID))
	case errors.As(err, &shortfall):
		return domainerrors.ErrInsufficientStock.WithDetails(
			fmt.Sprintf("product %d: requested %d, available %d", productID, requested, shortfall.Available),
		)
	case errors.Is(err, repository.ErrInsufficientStock):
		return domainerrors.ErrInsufficientStock.WithDetails(
			fmt.Sprintf("product %d: requested %d", productID, requested),
		)
	default:
		return errors.Wrapf(err, "failed to change stock of product %d", productID)
	}
}
