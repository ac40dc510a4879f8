package impl

import (
	"context"
	"testing"

	"printshop/internal/domain/entity"
	"printshop/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, e *engine, product entity.Product) {
	t.Helper()

	err := e.store.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		return e.monitor.Evaluate(context.Background(), repos, &product)
	})
	require.NoError(t, err)
}

func TestAlertMonitor_Evaluate_IsIdempotent(t *testing.T) {
	e := newEngine(t)
	product := entity.Product{ID: 10, StockQuantity: 2, LowStockThreshold: 3}

	for range 5 {
		evaluate(t, e, product)
	}

	alerts := e.store.unresolvedAlerts(10)
	require.Len(t, alerts, 1)
	assert.Equal(t, 2, alerts[0].QuantityAtAlert)
	assert.Equal(t, 3, alerts[0].Threshold)
	assert.Equal(t, e.clock.Now(), alerts[0].CreatedAt)
}

func TestAlertMonitor_Evaluate_Thresholds(t *testing.T) {
	tests := []struct {
		name       string
		stock      int
		threshold  int
		wantAlerts int
	}{
		{name: "below threshold", stock: 1, threshold: 3, wantAlerts: 1},
		{name: "at threshold", stock: 3, threshold: 3, wantAlerts: 1},
		{name: "above threshold", stock: 4, threshold: 3, wantAlerts: 0},
		{name: "alerting disabled", stock: 0, threshold: 0, wantAlerts: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)

			evaluate(t, e, entity.Product{ID: 1, StockQuantity: tt.stock, LowStockThreshold: tt.threshold})

			assert.Len(t, e.store.unresolvedAlerts(1), tt.wantAlerts)
		})
	}
}

func TestAlertMonitor_Evaluate_ResolvesOnlyAboveThreshold(t *testing.T) {
	e := newEngine(t)

	evaluate(t, e, entity.Product{ID: 1, StockQuantity: 1, LowStockThreshold: 3})
	require.Len(t, e.store.unresolvedAlerts(1), 1)

	// Still at the threshold: the alert stays open.
	evaluate(t, e, entity.Product{ID: 1, StockQuantity: 3, LowStockThreshold: 3})
	assert.Len(t, e.store.unresolvedAlerts(1), 1)

	evaluate(t, e, entity.Product{ID: 1, StockQuantity: 4, LowStockThreshold: 3})
	assert.Empty(t, e.store.unresolvedAlerts(1))

	evaluate(t, e, entity.Product{ID: 1, StockQuantity: 4, LowStockThreshold: 3})
	assert.Empty(t, e.store.unresolvedAlerts(1))
}

func TestAlertMonitor_Resolve(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	evaluate(t, e, entity.Product{ID: 1, StockQuantity: 0, LowStockThreshold: 5})
	alertID := e.store.unresolvedAlerts(1)[0].ID

	var changed []bool
	for range 2 {
		err := e.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
			alert, ok, err := e.monitor.Resolve(ctx, repos, alertID)
			if err != nil {
				return err
			}
			assert.True(t, alert.Resolved)
			assert.NotNil(t, alert.ResolvedAt)
			changed = append(changed, ok)

			return nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, []bool{true, false}, changed)

	// A manual resolve does not block the next alert.
	evaluate(t, e, entity.Product{ID: 1, StockQuantity: 0, LowStockThreshold: 5})
	assert.Len(t, e.store.unresolvedAlerts(1), 1)
}

func TestAlertMonitor_Resolve_NotFound(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	err := e.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, _, err := e.monitor.Resolve(ctx, repos, 404)

		return err
	})
	assert.ErrorIs(t, err, repository.ErrAlertNotFound)
}
