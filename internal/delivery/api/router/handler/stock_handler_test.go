package handler

import (
	"net/http"
	"testing"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	mockUsecase "printshop/internal/mocks/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stockHandlerFixtures struct {
	handler  *StockHandler
	stockUC  *mockUsecase.MockStockUsecase
	reasonUC *mockUsecase.MockReasonUsecase
}

func createTestStockHandler(t *testing.T) stockHandlerFixtures {
	t.Helper()

	stockUC := mockUsecase.NewMockStockUsecase(t)
	reasonUC := mockUsecase.NewMockReasonUsecase(t)

	return stockHandlerFixtures{
		handler:  NewStockHandler(StockHandlerParams{StockUC: stockUC, ReasonUC: reasonUC}),
		stockUC:  stockUC,
		reasonUC: reasonUC,
	}
}

func TestStockHandler_CreatePurchase(t *testing.T) {
	fx := createTestStockHandler(t)
	staff := entity.EmployeeActor(3)

	fx.stockUC.EXPECT().
		CreatePurchase(mock.Anything, staff, "Paper Co", mock.MatchedBy(func(lines []entity.PurchaseLineInput) bool {
			return len(lines) == 1 && lines[0].ProductID == 1 && lines[0].Quantity == 10 &&
				lines[0].UnitCost.Equal(decimal.RequireFromString("1.25"))
		})).
		Return(&entity.StockPurchase{ID: 4}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/stock/purchases",
		`{"supplier":"Paper Co","lines":[{"product_id":1,"quantity":10,"unit_cost":"1.25"}]}`, &staff)

	require.NoError(t, fx.handler.CreatePurchase(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestStockHandler_ReceiveStock_OverReceipt(t *testing.T) {
	fx := createTestStockHandler(t)
	staff := entity.EmployeeActor(3)

	fx.stockUC.EXPECT().
		ReceiveStock(mock.Anything, staff, int64(4), []entity.ReceiptLineInput{{PurchaseLineID: 8, Quantity: 11}}).
		Return(nil, domainerrors.ErrOverReceipt.WithDetails("line 8: ordered 10, received 0, requested 11"))

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/stock/purchases/4/receipts",
		`{"lines":[{"purchase_line_id":8,"quantity":11}]}`, &staff)
	withID(c, "4")

	require.NoError(t, fx.handler.ReceiveStock(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "OVER_RECEIPT", decodeError(t, rec).Code)
}

func TestStockHandler_AdjustStock(t *testing.T) {
	staff := entity.EmployeeActor(3)

	tests := []struct {
		name       string
		body       string
		setup      func(fx stockHandlerFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name: "negative adjustment",
			body: `{"product_id":2,"quantity":-3,"reason_id":1,"note":"dropped"}`,
			setup: func(fx stockHandlerFixtures) {
				fx.stockUC.EXPECT().
					AdjustStock(mock.Anything, staff, entity.AdjustmentInput{ProductID: 2, Quantity: -3, ReasonID: 1, Note: "dropped"}).
					Return(&entity.StockAdjustment{ID: 1, ReasonName: "Breakage"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "zero quantity",
			body:       `{"product_id":2,"quantity":0,"reason_id":1}`,
			setup:      func(stockHandlerFixtures) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "quantity below column range",
			body:       `{"product_id":2,"quantity":-2147483648,"reason_id":1}`,
			setup:      func(stockHandlerFixtures) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "unknown reason",
			body: `{"product_id":2,"quantity":1,"reason_id":99}`,
			setup: func(fx stockHandlerFixtures) {
				fx.stockUC.EXPECT().
					AdjustStock(mock.Anything, staff, mock.Anything).
					Return(nil, domainerrors.ErrReasonNotFound.WithDetails("reason 99"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "REASON_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStockHandler(t)
			tt.setup(fx)

			c, rec := newTestContext(http.MethodPost, "/api/v1/admin/stock/adjustments", tt.body, &staff)

			require.NoError(t, fx.handler.AdjustStock(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestStockHandler_ListTransactions_Paging(t *testing.T) {
	fx := createTestStockHandler(t)
	staff := entity.EmployeeActor(3)

	fx.stockUC.EXPECT().
		ListTransactions(mock.Anything, int64(2), 20, 40).
		Return([]*entity.StockTransaction{{ID: 1, ProductID: 2}}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/stock/products/2/transactions?limit=20&offset=40", "", &staff)
	withID(c, "2")

	require.NoError(t, fx.handler.ListTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStockHandler_Reasons(t *testing.T) {
	fx := createTestStockHandler(t)
	staff := entity.EmployeeActor(3)

	fx.reasonUC.EXPECT().
		CreateReason(mock.Anything, staff, "Breakage").
		Return(nil, domainerrors.ErrReasonAlreadyExists.WithDetails(`name "Breakage"`))
	fx.reasonUC.EXPECT().DeleteReason(mock.Anything, staff, int64(5)).Return(nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/stock/reasons", `{"name":"Breakage"}`, &staff)
	require.NoError(t, fx.handler.CreateReason(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "REASON_ALREADY_EXISTS", decodeError(t, rec).Code)

	c, rec = newTestContext(http.MethodDelete, "/api/v1/admin/stock/reasons/5", "", &staff)
	withID(c, "5")
	require.NoError(t, fx.handler.DeleteReason(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
