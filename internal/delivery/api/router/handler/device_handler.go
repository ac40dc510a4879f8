package handler

import (
	"net/http"

	"printshop/internal/delivery/api/response"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
}

// DeviceHandler holds dependencies for staff device handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// RegisterDevice handles POST /admin/devices
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}

	var req RegisterDeviceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), actor.ID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetDevices handles GET /admin/devices
func (h *DeviceHandler) GetDevices(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}

	devices, err := h.deviceUC.GetEmployeeDevices(c.Request().Context(), actor.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// DeactivateDevice handles DELETE /admin/devices/:id
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), actor.ID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated successfully"})
}
