package handler

import (
	"net/http"
	"testing"
	"time"

	"printshop/internal/domain/entity"
	mockUsecase "printshop/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMonitorHandler_QueryAuditLogs_ParsesFilter(t *testing.T) {
	alertUC := mockUsecase.NewMockAlertUsecase(t)
	auditUC := mockUsecase.NewMockAuditUsecase(t)
	h := NewMonitorHandler(MonitorHandlerParams{AlertUC: alertUC, AuditUC: auditUC})
	staff := entity.EmployeeActor(3)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	auditUC.EXPECT().
		QueryAuditLogs(mock.Anything, mock.MatchedBy(func(filter entity.AuditFilter) bool {
			return filter.From != nil && filter.From.Equal(from) && filter.To == nil &&
				filter.Actor == "42" && filter.Action == entity.AuditActionStockAdjusted && filter.Limit == 10
		})).
		Return(&entity.AuditPage{Total: 1}, nil)

	c, rec := newTestContext(http.MethodGet,
		"/api/v1/admin/audit-logs?from=2024-05-01T00:00:00Z&actor=42&action=stock.adjusted&limit=10", "", &staff)

	require.NoError(t, h.QueryAuditLogs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMonitorHandler_QueryAuditLogs_BadTimestamp(t *testing.T) {
	h := NewMonitorHandler(MonitorHandlerParams{
		AlertUC: mockUsecase.NewMockAlertUsecase(t),
		AuditUC: mockUsecase.NewMockAuditUsecase(t),
	})
	staff := entity.EmployeeActor(3)

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/audit-logs?from=yesterday", "", &staff)

	require.NoError(t, h.QueryAuditLogs(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMonitorHandler_ResolveAlert(t *testing.T) {
	alertUC := mockUsecase.NewMockAlertUsecase(t)
	h := NewMonitorHandler(MonitorHandlerParams{AlertUC: alertUC, AuditUC: mockUsecase.NewMockAuditUsecase(t)})
	staff := entity.EmployeeActor(3)

	alertUC.EXPECT().ResolveAlert(mock.Anything, staff, int64(6)).Return(&entity.LowStockAlert{ID: 6, Resolved: true}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/admin/alerts/6/resolve", "", &staff)
	withID(c, "6")

	require.NoError(t, h.ResolveAlert(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"resolved":true`)
}
