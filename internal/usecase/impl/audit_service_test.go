package impl

import (
	"context"
	"testing"
	"time"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	mockRepo "printshop/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditService_QueryAuditLogs_NormalizesPaging(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditRepository(t)
	srv := NewAuditService(auditRepo)
	ctx := context.Background()

	want := &entity.AuditPage{Total: 0}
	auditRepo.EXPECT().
		Query(ctx, mock.MatchedBy(func(filter entity.AuditFilter) bool {
			return filter.Limit == maxPageSize && filter.Offset == 0 && filter.Actor == "42"
		})).
		Return(want, nil)

	page, err := srv.QueryAuditLogs(ctx, entity.AuditFilter{Actor: "42", Limit: 5000, Offset: -3})
	require.NoError(t, err)
	assert.Same(t, want, page)
}

func TestAuditService_QueryAuditLogs_RejectsInvertedRange(t *testing.T) {
	srv := NewAuditService(mockRepo.NewMockAuditRepository(t))

	from := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	_, err := srv.QueryAuditLogs(context.Background(), entity.AuditFilter{From: &from, To: &to})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
