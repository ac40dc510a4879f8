package handler

import (
	"net/http"
	"time"

	"printshop/internal/delivery/api/response"
	"printshop/internal/domain/entity"
	"printshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MonitorHandlerParams holds dependencies for MonitorHandler, injected by Fx.
type MonitorHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	AuditUC usecase.AuditUsecase
}

// MonitorHandler exposes low stock alerts and the audit trail to staff.
type MonitorHandler struct {
	alertUC usecase.AlertUsecase
	auditUC usecase.AuditUsecase
}

// NewMonitorHandler is the constructor for MonitorHandler
func NewMonitorHandler(params MonitorHandlerParams) *MonitorHandler {
	return &MonitorHandler{
		alertUC: params.AlertUC,
		auditUC: params.AuditUC,
	}
}

// ListAlerts handles GET /admin/alerts
func (h *MonitorHandler) ListAlerts(c echo.Context) error {
	limit, offset, err := pageQuery(c)
	if err != nil {
		return response.ValidationError(c, "limit and offset must be integers")
	}

	alerts, err := h.alertUC.ListUnresolved(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Page{Items: alerts, Limit: limit, Offset: offset})
}

// ResolveAlert handles POST /admin/alerts/:id/resolve
func (h *MonitorHandler) ResolveAlert(c echo.Context) error {
	actor, ok := currentActor(c)
	if !ok {
		return unauthorized(c)
	}
	alertID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.alertUC.ResolveAlert(c.Request().Context(), actor, alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// QueryAuditLogs handles GET /admin/audit-logs?from=&to=&actor=&action=&entity_type=&limit=&offset=
func (h *MonitorHandler) QueryAuditLogs(c echo.Context) error {
	var (
		filter   entity.AuditFilter
		from, to time.Time
		action   string
	)
	err := echo.QueryParamsBinder(c).
		Time("from", &from, time.RFC3339).
		Time("to", &to, time.RFC3339).
		String("actor", &filter.Actor).
		String("action", &action).
		String("entity_type", &filter.EntityType).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		BindError()
	if err != nil {
		return response.ValidationError(c, "from/to must be RFC3339 timestamps, limit/offset integers")
	}
	if !from.IsZero() {
		filter.From = &from
	}
	if !to.IsZero() {
		filter.To = &to
	}
	filter.Action = entity.AuditAction(action)

	page, err := h.auditUC.QueryAuditLogs(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}
