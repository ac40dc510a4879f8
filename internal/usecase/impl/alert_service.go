package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/errors"
	"printshop/internal/usecase"
)

// alertService implements the AlertUsecase interface.
type alertService struct {
	txManager repository.TransactionManager
	alertRepo repository.AlertRepository
	monitor   *AlertMonitor
	audit     *AuditWriter
	logger    *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(
	txManager repository.TransactionManager,
	alertRepo repository.AlertRepository,
	monitor *AlertMonitor,
	audit *AuditWriter,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		txManager: txManager,
		alertRepo: alertRepo,
		monitor:   monitor,
		audit:     audit,
		logger:    logger,
	}
}

// ListUnresolved pages through open alerts, newest first.
func (srv *alertService) ListUnresolved(ctx context.Context, limit, offset int) ([]*entity.LowStockAlert, error) {
	limit, offset = normalizePage(limit, offset)

	alerts, err := srv.alertRepo.ListUnresolved(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list low stock alerts")
	}

	return alerts, nil
}

// ResolveAlert closes an alert regardless of the current stock level.
func (srv *alertService) ResolveAlert(ctx context.Context, actor entity.Actor, alertID int64) (*entity.LowStockAlert, error) {
	var alert *entity.LowStockAlert

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resolved, changed, err := srv.monitor.Resolve(ctx, repoFactory, alertID)
		if err != nil {
			if errors.Is(err, repository.ErrAlertNotFound) {
				return domainerrors.ErrAlertNotFound.WithDetails(fmt.Sprintf("alert %d", alertID))
			}

			return errors.Wrap(err, "failed to resolve low stock alert")
		}
		alert = resolved

		if changed {
			srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
				Action:        entity.AuditActionAlertResolved,
				EntityType:    entity.AuditEntityAlert,
				EntityID:      strconv.FormatInt(alertID, 10),
				After:         resolved,
				CriticalValue: strconv.FormatInt(resolved.ProductID, 10),
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Low stock alert resolved manually",
		slog.Int64("alert_id", alertID),
		slog.Int64("product_id", alert.ProductID),
	)

	return alert, nil
}
