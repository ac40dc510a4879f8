package impl

import (
	"context"
	"testing"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockLedger_Consume(t *testing.T) {
	e := newEngine(t)
	e.store.seedProduct(1, "Poster", "12.00", 5, 0)
	ctx := context.Background()

	var change *entity.StockChange
	err := e.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		change, err = e.ledger.Consume(ctx, repos, 1, 3, entity.StockOriginOrder, 77)

		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 2, change.Product.StockQuantity)
	assert.Equal(t, -3, change.Transaction.Delta)
	assert.Equal(t, 2, change.Transaction.QuantityAfter)
	assert.Equal(t, entity.StockOriginOrder, change.Transaction.Origin)
	assert.Equal(t, int64(77), change.Transaction.ReferenceID)
	assert.Equal(t, 2, e.store.stockOf(1))
	assert.Len(t, e.store.snapshot().transactions, 1)
}

func TestStockLedger_Consume_Insufficient(t *testing.T) {
	e := newEngine(t)
	e.store.seedProduct(1, "Poster", "12.00", 2, 0)
	ctx := context.Background()

	err := e.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := e.ledger.Consume(ctx, repos, 1, 3, entity.StockOriginOrder, 77)

		return err
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "product 1: requested 3, available 2", appErr.Details())
	assert.Equal(t, 2, e.store.stockOf(1))
	assert.Empty(t, e.store.snapshot().transactions)
}

func TestMapProductError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantErr     error
		wantDetails string
	}{
		{
			name:        "shortfall carries the quantity on hand",
			err:         &repository.InsufficientStockError{Available: 4},
			wantErr:     domainerrors.ErrInsufficientStock,
			wantDetails: "product 1: requested 6, available 4",
		},
		{
			name:        "bare sentinel omits the quantity on hand",
			err:         repository.ErrInsufficientStock,
			wantErr:     domainerrors.ErrInsufficientStock,
			wantDetails: "product 1: requested 6",
		},
		{
			name:        "missing product",
			err:         repository.ErrProductNotFound,
			wantErr:     domainerrors.ErrProductNotFound,
			wantDetails: "product 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapProductError(tt.err, 1, 6)
			require.ErrorIs(t, err, tt.wantErr)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantDetails, appErr.Details())
		})
	}
}

func TestStockLedger_Consume_UnknownProduct(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	err := e.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := e.ledger.Consume(ctx, repos, 9, 1, entity.StockOriginOrder, 1)

		return err
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestStockLedger_RejectsNonPositiveQuantity(t *testing.T) {
	e := newEngine(t)
	e.store.seedProduct(1, "Poster", "12.00", 2, 0)
	ctx := context.Background()

	err := e.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := e.ledger.Restore(ctx, repos, 1, 0, entity.StockOriginReceipt, 1)

		return err
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStockLedger_NeverNegative(t *testing.T) {
	e := newEngine(t)
	e.store.seedProduct(1, "Poster", "12.00", 4, 0)
	ctx := context.Background()

	for _, qty := range []int{3, 3, 1, 1} {
		_ = e.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
			_, err := e.ledger.Consume(ctx, repos, 1, qty, entity.StockOriginOrder, 1)

			return err
		})
		assert.GreaterOrEqual(t, e.store.stockOf(1), 0)
	}

	assert.Equal(t, 0, e.store.stockOf(1))
}

func TestStockLedger_Adjust_SnapshotsReasonName(t *testing.T) {
	e := newEngine(t)
	e.store.seedProduct(1, "Poster", "12.00", 5, 0)
	reasonID := e.store.seedReason("Breakage")
	ctx := context.Background()

	var adjustment *entity.StockAdjustment
	err := e.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		adjustment, _, err = e.ledger.Adjust(ctx, repos, 3, entity.AdjustmentInput{
			ProductID: 1,
			Quantity:  -2,
			ReasonID:  reasonID,
			Note:      "dropped box",
		})

		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "Breakage", adjustment.ReasonName)
	assert.Equal(t, 3, e.store.stockOf(1))

	txns := e.store.snapshot().transactions
	require.Len(t, txns, 1)
	assert.Equal(t, entity.StockOriginAdjustment, txns[0].Origin)
	assert.Equal(t, adjustment.ID, txns[0].ReferenceID)
}

func TestStockLedger_Adjust_UnknownReason(t *testing.T) {
	e := newEngine(t)
	e.store.seedProduct(1, "Poster", "12.00", 5, 0)
	ctx := context.Background()

	err := e.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, _, err := e.ledger.Adjust(ctx, repos, 3, entity.AdjustmentInput{ProductID: 1, Quantity: 1, ReasonID: 999})

		return err
	})
	assert.ErrorIs(t, err, domainerrors.ErrReasonNotFound)
	assert.Equal(t, 5, e.store.stockOf(1))
}
