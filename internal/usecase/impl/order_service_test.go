package impl

import (
	"context"
	"math"
	"strconv"
	"sync"
	"testing"
	"time"

	"printshop/config"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/service"
	mockService "printshop/internal/mocks/service"
	"printshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixtures struct {
	*engine
	service usecase.OrderUsecase
	qrCode  *mockService.MockQRCodeService
}

func createTestOrderService(t *testing.T, inventory config.InventoryConfig) orderFixtures {
	e := newEngine(t)
	qrCode := mockService.NewMockQRCodeService(t)
	repos := e.store.committed()

	if inventory.DeletedCustomerName == "" {
		inventory.DeletedCustomerName = "Deleted customer"
	}

	srv := NewOrderService(OrderServiceParams{
		Config:       &config.Config{Inventory: &inventory},
		TxManager:    e.store,
		OrderRepo:    repos.OrderRepo(),
		CustomerRepo: repos.CustomerRepo(),
		Ledger:       e.ledger,
		Audit:        e.audit,
		Dispatcher:   e.dispatcher,
		QRCode:       qrCode,
		Clock:        e.clock,
		Logger:       discardLogger(),
	})

	return orderFixtures{engine: e, service: srv, qrCode: qrCode}
}

var alice = entity.CustomerActor(7)

func TestOrderService_PlaceOrder(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedCustomer(7, "Alice")
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 2)
	fx.store.seedProduct(2, "Sticker pack", "3.00", 4, 3)
	ctx := context.Background()

	view, err := fx.service.PlaceOrder(ctx, alice, 0, []entity.OrderLineInput{
		{ProductID: 2, Quantity: 1, Customization: &entity.Customization{Text: "Happy birthday", Font: " Serif "}},
		{ProductID: 1, Quantity: 2},
	})
	require.NoError(t, err)

	assert.NotZero(t, view.OrderID)
	assert.Equal(t, entity.OrderStatusPending, view.Status)
	assert.Equal(t, "28.00", view.TotalPrice.StringFixed(2))
	assert.Equal(t, "Alice", view.Customer.Name)
	assert.False(t, view.Customer.Deleted)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, "Sticker pack", view.Lines[0].ProductName)
	assert.Equal(t, "Serif", view.Lines[0].Customization.Font)
	assert.NotNil(t, view.Lines[1].Customization.AssetPaths)
	assert.Equal(t, "25.00", view.Lines[1].Subtotal.StringFixed(2))

	assert.Equal(t, 8, fx.store.stockOf(1))
	assert.Equal(t, 3, fx.store.stockOf(2))
	assert.Len(t, fx.store.unresolvedAlerts(2), 1)
	assert.Empty(t, fx.store.unresolvedAlerts(1))

	state := fx.store.snapshot()
	require.Len(t, state.audits, 1)
	assert.Equal(t, strconv.FormatInt(view.OrderID, 10), state.audits[0].EntityID)
	assert.Equal(t, entity.AuditActionOrderCreated, state.audits[0].Action)
	require.NotNil(t, state.audits[0].CustomerID)
	assert.Equal(t, int64(7), *state.audits[0].CustomerID)
	assert.Len(t, state.transactions, 2)

	fx.dispatcher.Wait()
	assert.ElementsMatch(t, []service.InventoryEventType{
		service.EventStockChanged,
		service.EventStockChanged,
		service.EventInventoryChanged,
		service.EventSalesChanged,
	}, fx.publisher.types())
}

func TestOrderService_PlaceOrder_UnknownProductsChangeNothing(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 20)
	before := fx.store.snapshot()

	_, err := fx.service.PlaceOrder(context.Background(), alice, 0, []entity.OrderLineInput{
		{ProductID: 1, Quantity: 1},
		{ProductID: 9, Quantity: 1},
		{ProductID: 7, Quantity: 2},
	})
	require.ErrorIs(t, err, domainerrors.ErrUnknownProducts)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "unknown product ids: 7, 9", appErr.Details())

	after := fx.store.snapshot()
	assert.Equal(t, before.products, after.products)
	assert.Empty(t, after.orders)
	assert.Empty(t, after.transactions)
	assert.Empty(t, after.alerts)
	assert.Empty(t, after.audits)

	fx.dispatcher.Wait()
	assert.Empty(t, fx.publisher.types())
}

func TestOrderService_PlaceOrder_InvalidLines(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)

	_, err := fx.service.PlaceOrder(context.Background(), alice, 0, []entity.OrderLineInput{
		{ProductID: 0, Quantity: 1},
		{ProductID: 1, Quantity: -1},
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "line 0: product_id must be positive; line 1: quantity must be positive", appErr.Details())

	_, err = fx.service.PlaceOrder(context.Background(), alice, 0, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_QuantitiesOutOfRange(t *testing.T) {
	tests := []struct {
		name        string
		lines       []entity.OrderLineInput
		wantDetails string
	}{
		{
			name: "single line above range",
			lines: []entity.OrderLineInput{
				{ProductID: 1, Quantity: math.MaxInt},
				{ProductID: 1, Quantity: math.MaxInt},
				{ProductID: 1, Quantity: 3},
			},
			wantDetails: "line 0: quantity " + strconv.Itoa(math.MaxInt) + " exceeds 2147483647; " +
				"line 1: quantity " + strconv.Itoa(math.MaxInt) + " exceeds 2147483647",
		},
		{
			name: "per product total above range",
			lines: []entity.OrderLineInput{
				{ProductID: 1, Quantity: math.MaxInt32},
				{ProductID: 2, Quantity: 1},
				{ProductID: 1, Quantity: 1},
			},
			wantDetails: "product 1: total quantity 2147483648 exceeds 2147483647",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t, config.InventoryConfig{})
			fx.store.seedProduct(1, "Poster A2", "12.50", 5, 0)
			fx.store.seedProduct(2, "Sticker pack", "3.00", 5, 0)
			before := fx.store.snapshot()

			_, err := fx.service.PlaceOrder(context.Background(), alice, 0, tt.lines)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantDetails, appErr.Details())

			after := fx.store.snapshot()
			assert.Equal(t, before.products, after.products)
			assert.Empty(t, after.orders)
			assert.Empty(t, after.transactions)
		})
	}
}

func TestOrderService_PlaceOrder_ReportsBadLinesAndUnknownProductsTogether(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)

	_, err := fx.service.PlaceOrder(context.Background(), alice, 0, []entity.OrderLineInput{
		{ProductID: 1, Quantity: 0},
		{ProductID: 9, Quantity: 1},
		{ProductID: 7, Quantity: -2},
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t,
		"line 0: quantity must be positive; line 2: quantity must be positive; unknown product ids: 7, 9",
		appErr.Details(),
	)
	assert.Empty(t, fx.store.snapshot().orders)
}

func TestOrderService_PlaceOrder_InsufficientStockRollsBack(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)
	fx.store.seedProduct(2, "Sticker pack", "3.00", 1, 0)

	_, err := fx.service.PlaceOrder(context.Background(), alice, 0, []entity.OrderLineInput{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
		{ProductID: 2, Quantity: 1},
	})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	assert.Equal(t, 10, fx.store.stockOf(1))
	assert.Equal(t, 1, fx.store.stockOf(2))
	assert.Empty(t, fx.store.snapshot().orders)
}

// The in-memory store serialises transactions, so this checks the workflow's
// all-or-nothing outcome. The row-level guard against a lost update is the
// conditional UPDATE in the postgres product repository, tested there.
func TestOrderService_PlaceOrder_ConcurrentOrdersDoNotOversell(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedProduct(1, "Poster A2", "12.50", 4, 0)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		failures  []error
	)
	for customer := int64(1); customer <= 2; customer++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fx.service.PlaceOrder(context.Background(), entity.CustomerActor(customer), 0, []entity.OrderLineInput{
				{ProductID: 1, Quantity: 3},
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)

				return
			}
			succeeded++
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0], domainerrors.ErrInsufficientStock)
	assert.Equal(t, 1, fx.store.stockOf(1))
}

func TestOrderService_PlaceOrder_DeletedCustomerPlaceholder(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)

	view, err := fx.service.PlaceOrder(context.Background(), staff, 55, []entity.OrderLineInput{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)

	assert.Equal(t, int64(55), view.Customer.ID)
	assert.Equal(t, "Deleted customer", view.Customer.Name)
	assert.True(t, view.Customer.Deleted)

	audits := fx.store.snapshot().audits
	require.Len(t, audits, 1)
	require.NotNil(t, audits[0].EmployeeID)
	assert.Equal(t, int64(3), *audits[0].EmployeeID)
}

func placeOrder(t *testing.T, fx orderFixtures, lines ...entity.OrderLineInput) *entity.OrderView {
	t.Helper()

	view, err := fx.service.PlaceOrder(context.Background(), alice, 0, lines)
	require.NoError(t, err)

	return view
}

func TestOrderService_UpdateStatus_TransitionTable(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)
	ctx := context.Background()
	order := placeOrder(t, fx, entity.OrderLineInput{ProductID: 1, Quantity: 1})

	_, err := fx.service.UpdateStatus(ctx, staff, order.OrderID, entity.OrderStatusShipped)
	require.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	_, err = fx.service.UpdateStatus(ctx, staff, order.OrderID, entity.OrderStatus("lost"))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	for _, status := range []entity.OrderStatus{entity.OrderStatusProcessing, entity.OrderStatusShipped, entity.OrderStatusDelivered} {
		view, err := fx.service.UpdateStatus(ctx, staff, order.OrderID, status)
		require.NoError(t, err)
		assert.Equal(t, status, view.Status)
	}

	_, err = fx.service.CancelOrder(ctx, staff, order.OrderID)
	require.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	_, err = fx.service.UpdateStatus(ctx, staff, 9999, entity.OrderStatusProcessing)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	var statusAudits int
	for _, audit := range fx.store.snapshot().audits {
		if audit.Action == entity.AuditActionOrderStatusChanged {
			statusAudits++
		}
	}
	assert.Equal(t, 3, statusAudits)
}

func TestOrderService_CancelOrder(t *testing.T) {
	tests := []struct {
		name      string
		restock   bool
		wantStock int
	}{
		{name: "legacy keeps consumed stock", restock: false, wantStock: 7},
		{name: "restock on cancel", restock: true, wantStock: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t, config.InventoryConfig{RestockOnCancel: tt.restock})
			fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)
			order := placeOrder(t, fx, entity.OrderLineInput{ProductID: 1, Quantity: 3})

			view, err := fx.service.CancelOrder(context.Background(), staff, order.OrderID)
			require.NoError(t, err)

			assert.Equal(t, entity.OrderStatusCancelled, view.Status)
			assert.Equal(t, tt.wantStock, fx.store.stockOf(1))

			fx.dispatcher.Wait()
			assert.Contains(t, fx.publisher.types(), service.EventOrderStatusChanged)
		})
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	tests := []struct {
		name        string
		reconcile   bool
		wantStockP1 int
		wantStockP2 int
	}{
		{name: "legacy leaves stock alone", reconcile: false, wantStockP1: 8, wantStockP2: 10},
		{name: "reconcile against old lines", reconcile: true, wantStockP1: 10, wantStockP2: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t, config.InventoryConfig{ReconcileOnOrderEdit: tt.reconcile})
			fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)
			fx.store.seedProduct(2, "Sticker pack", "3.00", 10, 0)
			order := placeOrder(t, fx, entity.OrderLineInput{ProductID: 1, Quantity: 2})

			view, err := fx.service.UpdateOrder(context.Background(), alice, order.OrderID, []entity.OrderLineInput{
				{ProductID: 2, Quantity: 4},
			})
			require.NoError(t, err)

			require.Len(t, view.Lines, 1)
			assert.Equal(t, "Sticker pack", view.Lines[0].ProductName)
			assert.Equal(t, "12.00", view.TotalPrice.StringFixed(2))
			assert.Equal(t, tt.wantStockP1, fx.store.stockOf(1))
			assert.Equal(t, tt.wantStockP2, fx.store.stockOf(2))
		})
	}
}

func TestOrderService_UpdateOrder_OnlyPending(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)
	ctx := context.Background()
	order := placeOrder(t, fx, entity.OrderLineInput{ProductID: 1, Quantity: 1})

	_, err := fx.service.UpdateStatus(ctx, staff, order.OrderID, entity.OrderStatusProcessing)
	require.NoError(t, err)

	_, err = fx.service.UpdateOrder(ctx, alice, order.OrderID, []entity.OrderLineInput{{ProductID: 1, Quantity: 5}})
	require.ErrorIs(t, err, domainerrors.ErrOrderNotEditable)

	_, err = fx.service.UpdateOrder(ctx, entity.CustomerActor(8), order.OrderID, []entity.OrderLineInput{{ProductID: 1, Quantity: 5}})
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_DeliveryInfoDrivesDisplayStatus(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)
	ctx := context.Background()
	order := placeOrder(t, fx, entity.OrderLineInput{ProductID: 1, Quantity: 1})

	view, err := fx.service.UpdateDeliveryInfo(ctx, staff, order.OrderID, entity.DeliveryInfo{
		Address: "1 Main St",
		Status:  " Delivered to front desk ",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, view.Status)
	assert.Equal(t, string(entity.OrderStatusDelivered), view.DisplayStatus)

	date := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	view, err = fx.service.UpdateExpectedDeliveryDate(ctx, staff, order.OrderID, &date)
	require.NoError(t, err)
	require.NotNil(t, view.ExpectedDeliveryDate)
	assert.True(t, date.Equal(*view.ExpectedDeliveryDate))

	audits := fx.store.snapshot().audits
	require.Len(t, audits, 3)
	assert.Equal(t, entity.AuditActionOrderDeliveryUpdated, audits[1].Action)
	assert.Equal(t, "2024-05-03", audits[2].CriticalValue)
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedCustomer(7, "Alice")
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)
	ctx := context.Background()
	order := placeOrder(t, fx, entity.OrderLineInput{ProductID: 1, Quantity: 1})

	view, err := fx.service.GetOrder(ctx, alice, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, view.OrderID)

	_, err = fx.service.GetOrder(ctx, staff, order.OrderID)
	require.NoError(t, err)

	_, err = fx.service.GetOrder(ctx, entity.CustomerActor(8), order.OrderID)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_OrderQRCode(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)
	order := placeOrder(t, fx, entity.OrderLineInput{ProductID: 1, Quantity: 1})

	fx.qrCode.EXPECT().GenerateOrderQR(order.OrderID).Return([]byte("png"), nil)

	png, err := fx.service.OrderQRCode(context.Background(), alice, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.OrderQRCode(context.Background(), entity.CustomerActor(8), order.OrderID)
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestOrderService(t, config.InventoryConfig{})
	fx.publisher.err = assert.AnError
	fx.store.seedProduct(1, "Poster A2", "12.50", 10, 0)

	view := placeOrder(t, fx, entity.OrderLineInput{ProductID: 1, Quantity: 1})
	fx.dispatcher.Wait()

	assert.NotZero(t, view.OrderID)
	assert.Len(t, fx.store.snapshot().orders, 1)
}
