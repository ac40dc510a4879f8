package impl

import (
	"context"
	"testing"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAlertService(e *engine) usecase.AlertUsecase {
	return NewAlertService(e.store, e.store.committed().AlertRepo(), e.monitor, e.audit, discardLogger())
}

func TestAlertService_ResolveAlert(t *testing.T) {
	e := newEngine(t)
	srv := newTestAlertService(e)
	ctx := context.Background()

	evaluate(t, e, entity.Product{ID: 1, StockQuantity: 1, LowStockThreshold: 3})
	evaluate(t, e, entity.Product{ID: 2, StockQuantity: 0, LowStockThreshold: 3})

	alerts, err := srv.ListUnresolved(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	resolved, err := srv.ResolveAlert(ctx, staff, alerts[0].ID)
	require.NoError(t, err)
	assert.True(t, resolved.Resolved)

	again, err := srv.ResolveAlert(ctx, staff, alerts[0].ID)
	require.NoError(t, err)
	assert.True(t, again.Resolved)

	remaining, err := srv.ListUnresolved(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, alerts[1].ID, remaining[0].ID)

	// Only the first resolve is audited.
	assert.Len(t, e.store.snapshot().audits, 1)

	_, err = srv.ResolveAlert(ctx, staff, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
}
