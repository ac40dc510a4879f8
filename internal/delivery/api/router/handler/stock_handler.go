package handler

import (
	"net/http"

	"printshop/internal/delivery/api/response"
	"printshop/internal/domain/entity"
	"printshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// StockHandlerParams holds dependencies for StockHandler, injected by Fx.
type StockHandlerParams struct {
	fx.In

	StockUC  usecase.StockUsecase
	ReasonUC usecase.ReasonUsecase
}

// StockHandler serves purchases, receipts, adjustments, the ledger history and the reason catalog.
type StockHandler struct {
	stockUC  usecase.StockUsecase
	reasonUC usecase.ReasonUsecase
}

// NewStockHandler is the constructor for StockHandler
func NewStockHandler(params StockHandlerParams) *StockHandler {
	return &StockHandler{
		stockUC:  params.StockUC,
		reasonUC: params.ReasonUC,
	}
}

// PurchaseLineRequest is one ordered product of a supplier purchase.
type PurchaseLineRequest struct {
	ProductID int64           `json:"product_id" validate:"gt=0"`
	Quantity  int             `json:"quantity" validate:"gt=0,lte=2147483647"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseRequest is the body of POST /admin/stock/purchases.
type CreatePurchaseRequest struct {
	Supplier string                `json:"supplier" validate:"required,max=200"`
	Lines    []PurchaseLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// ReceiptLineRequest books an arrived quantity against a purchase line.
type ReceiptLineRequest struct {
	PurchaseLineID int64 `json:"purchase_line_id" validate:"gt=0"`
	Quantity       int   `json:"quantity" validate:"gt=0,lte=2147483647"`
}

// ReceiveStockRequest is the body of POST /admin/stock/purchases/:id/receipts.
type ReceiveStockRequest struct {
	Lines []ReceiptLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// AdjustStockRequest is the body of POST /admin/stock/adjustments. Quantity is signed.
type AdjustStockRequest struct {
	ProductID int64  `json:"product_id" validate:"gt=0"`
	Quantity  int    `json:"quantity" validate:"ne=0,gte=-2147483647,lte=2147483647"`
	ReasonID  int64  `json:"reason_id" validate:"gt=0"`
	Note      string `json:"note" validate:"max=1000"`
}

// ReasonRequest is the body of the reason catalog mutations.
type ReasonRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CreatePurchase handles POST /admin/stock/purchases
func (h *StockHandler) CreatePurchase(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreatePurchaseRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	lines := make([]entity.PurchaseLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, entity.PurchaseLineInput{ProductID: line.ProductID, Quantity: line.Quantity, UnitCost: line.UnitCost})
	}

	purchase, err := h.stockUC.CreatePurchase(c.Request().Context(), actor, req.Supplier, lines)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, purchase)
}

// ReceiveStock handles POST /admin/stock/purchases/:id/receipts
func (h *StockHandler) ReceiveStock(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	purchaseID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid purchase ID")
	}

	var req ReceiveStockRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	lines := make([]entity.ReceiptLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, entity.ReceiptLineInput{PurchaseLineID: line.PurchaseLineID, Quantity: line.Quantity})
	}

	receipt, err := h.stockUC.ReceiveStock(c.Request().Context(), actor, purchaseID, lines)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receipt)
}

// AdjustStock handles POST /admin/stock/adjustments
func (h *StockHandler) AdjustStock(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req AdjustStockRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	adjustment, err := h.stockUC.AdjustStock(c.Request().Context(), actor, entity.AdjustmentInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		ReasonID:  req.ReasonID,
		Note:      req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, adjustment)
}

// ListTransactions handles GET /admin/stock/products/:id/transactions
func (h *StockHandler) ListTransactions(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}
	limit, offset, err := pageQuery(c)
	if err != nil {
		return response.ValidationError(c, "limit and offset must be integers")
	}

	transactions, err := h.stockUC.ListTransactions(c.Request().Context(), productID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Page{Items: transactions, Limit: limit, Offset: offset})
}

// ListReasons handles GET /admin/stock/reasons
func (h *StockHandler) ListReasons(c echo.Context) error {
	reasons, err := h.reasonUC.ListReasons(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reasons)
}

// CreateReason handles POST /admin/stock/reasons
func (h *StockHandler) CreateReason(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req ReasonRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	reason, err := h.reasonUC.CreateReason(c.Request().Context(), actor, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reason)
}

// RenameReason handles PUT /admin/stock/reasons/:id
func (h *StockHandler) RenameReason(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	reasonID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid reason ID")
	}

	var req ReasonRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	reason, err := h.reasonUC.RenameReason(c.Request().Context(), actor, reasonID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reason)
}

// DeleteReason handles DELETE /admin/stock/reasons/:id
func (h *StockHandler) DeleteReason(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	reasonID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid reason ID")
	}

	if err := h.reasonUC.DeleteReason(c.Request().Context(), actor, reasonID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
