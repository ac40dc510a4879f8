package impl

import (
	"context"
	"log/slog"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	"printshop/internal/domain/repository"
	"printshop/internal/errors"
	"printshop/internal/pkg/clock"
)

// AlertMonitor keeps at most one unresolved low stock alert per product.
type AlertMonitor struct {
	clock  clock.Clock
	logger *slog.Logger
}

// NewAlertMonitor creates the monitor.
func NewAlertMonitor(clk clock.Clock, logger *slog.Logger) *AlertMonitor {
	return &AlertMonitor{clock: clk, logger: logger}
}

func (m *AlertMonitor) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// Evaluate raises an alert when the product is at or below its threshold and
// none is open, and resolves open alerts once stock is above the threshold.
// Calling it repeatedly for the same quantity changes nothing.
func (m *AlertMonitor) Evaluate(ctx context.Context, repos repository.RepositoryFactory, product *entity.Product) error {
	alertRepo := repos.AlertRepo()

	if product.IsLow() {
		_, err := alertRepo.FindUnresolvedByProduct(ctx, product.ID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrAlertNotFound) {
			return errors.Wrap(err, "failed to find unresolved alert")
		}

		alert := &entity.LowStockAlert{
			ProductID:       product.ID,
			QuantityAtAlert: product.StockQuantity,
			Threshold:       product.LowStockThreshold,
			CreatedAt:       m.clock.Now(),
		}
		// A concurrent writer may have won the partial unique index; Create then leaves ID at zero.
		if err := alertRepo.Create(ctx, alert); err != nil {
			return errors.Wrap(err, "failed to create low stock alert")
		}
		if alert.ID != 0 {
			m.log(ctx).Info("Low stock alert raised",
				slog.Int64("product_id", product.ID),
				slog.Int("quantity", product.StockQuantity),
				slog.Int("threshold", product.LowStockThreshold),
			)
		}

		return nil
	}

	if product.StockQuantity <= product.LowStockThreshold {
		return nil
	}

	resolved, err := alertRepo.ResolveByProduct(ctx, product.ID, m.clock.Now())
	if err != nil {
		return errors.Wrap(err, "failed to resolve low stock alerts")
	}
	if resolved > 0 {
		m.log(ctx).Info("Low stock alerts resolved",
			slog.Int64("product_id", product.ID),
			slog.Int64("count", resolved),
		)
	}

	return nil
}

// Resolve is the manual override. It reports whether the alert changed;
// resolving an already resolved alert is a no-op.
func (m *AlertMonitor) Resolve(ctx context.Context, repos repository.RepositoryFactory, alertID int64) (*entity.LowStockAlert, bool, error) {
	alertRepo := repos.AlertRepo()

	alert, err := alertRepo.FindByID(ctx, alertID)
	if err != nil {
		return nil, false, err
	}
	if alert.Resolved {
		return alert, false, nil
	}

	now := m.clock.Now()
	if err := alertRepo.Resolve(ctx, alertID, now); err != nil {
		return nil, false, err
	}

	alert.Resolved = true
	alert.ResolvedAt = &now

	return alert, true, nil
}
