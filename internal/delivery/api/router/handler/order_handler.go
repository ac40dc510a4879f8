package handler

import (
	"log/slog"
	"net/http"
	"time"

	"printshop/internal/delivery/api/response"
	"printshop/internal/domain/entity"
	"printshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the customer order endpoints and the staff order workflow.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one requested line.
type OrderLineRequest struct {
	ProductID     int64                 `json:"product_id" validate:"gt=0"`
	Quantity      int                   `json:"quantity" validate:"gt=0,lte=2147483647"`
	Customization *entity.Customization `json:"customization"`
}

// PlaceOrderRequest is the body of POST /orders. Staff may order on behalf of a customer.
type PlaceOrderRequest struct {
	CustomerID int64              `json:"customer_id" validate:"gte=0"`
	Lines      []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateOrderRequest is the body of PUT /orders/:id.
type UpdateOrderRequest struct {
	Lines []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateStatusRequest is the body of PATCH /admin/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateDeliveryRequest is the body of PATCH /admin/orders/:id/delivery.
type UpdateDeliveryRequest struct {
	Address        string `json:"address" validate:"max=500"`
	Status         string `json:"status" validate:"max=100"`
	TrackingNumber string `json:"tracking_number" validate:"max=100"`
	Notes          string `json:"notes" validate:"max=1000"`
}

// UpdateExpectedDeliveryRequest is the body of PATCH /admin/orders/:id/expected-delivery.
// A null or empty date clears it.
type UpdateExpectedDeliveryRequest struct {
	Date *string `json:"expected_delivery_date" validate:"omitempty,datetime=2006-01-02"`
}

func toLineInputs(lines []OrderLineRequest) []entity.OrderLineInput {
	inputs := make([]entity.OrderLineInput, 0, len(lines))
	for _, line := range lines {
		inputs = append(inputs, entity.OrderLineInput{
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
			Customization: line.Customization,
		})
	}

	return inputs
}

// PlaceOrder handles POST /orders
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req PlaceOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	view, err := h.orderUC.PlaceOrder(c.Request().Context(), actor, req.CustomerID, toLineInputs(req.Lines))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	view, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateOrder handles PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	view, err := h.orderUC.UpdateOrder(c.Request().Context(), actor, orderID, toLineInputs(req.Lines))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// OrderQRCode handles GET /orders/:id/qr
func (h *OrderHandler) OrderQRCode(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.OrderQRCode(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdateStatus handles PATCH /admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	view, err := h.orderUC.UpdateStatus(c.Request().Context(), actor, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateDeliveryInfo handles PATCH /admin/orders/:id/delivery
func (h *OrderHandler) UpdateDeliveryInfo(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateDeliveryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	view, err := h.orderUC.UpdateDeliveryInfo(c.Request().Context(), actor, orderID, entity.DeliveryInfo{
		Address:        req.Address,
		Status:         req.Status,
		TrackingNumber: req.TrackingNumber,
		Notes:          req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateExpectedDeliveryDate handles PATCH /admin/orders/:id/expected-delivery
func (h *OrderHandler) UpdateExpectedDeliveryDate(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateExpectedDeliveryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			return response.ValidationError(c, "expected_delivery_date: must be YYYY-MM-DD")
		}
		date = &parsed
	}

	view, err := h.orderUC.UpdateExpectedDeliveryDate(c.Request().Context(), actor, orderID, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// CancelOrder handles POST /admin/orders/:id/cancel
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	view, err := h.orderUC.CancelOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
