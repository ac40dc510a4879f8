package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/errors"
	"printshop/internal/pkg/clock"
	"printshop/internal/usecase"
)

const maxReasonNameLength = 100

// reasonService implements the ReasonUsecase interface.
type reasonService struct {
	txManager  repository.TransactionManager
	reasonRepo repository.ReasonRepository
	audit      *AuditWriter
	clock      clock.Clock
	logger     *slog.Logger
}

// NewReasonService is the constructor for reasonService.
func NewReasonService(
	txManager repository.TransactionManager,
	reasonRepo repository.ReasonRepository,
	audit *AuditWriter,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.ReasonUsecase {
	return &reasonService{
		txManager:  txManager,
		reasonRepo: reasonRepo,
		audit:      audit,
		clock:      clk,
		logger:     logger,
	}
}

func (srv *reasonService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeReasonName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("reason name is required")
	}
	if len(name) > maxReasonNameLength {
		return "", domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("reason name must be at most %d characters", maxReasonNameLength))
	}

	return name, nil
}

func mapReasonError(err error, id int64, name string) error {
	switch {
	case errors.Is(err, repository.ErrReasonNotFound):
		return domainerrors.ErrReasonNotFound.WithDetails(fmt.Sprintf("reason %d", id))
	case errors.Is(err, repository.ErrDuplicateReason):
		return domainerrors.ErrReasonAlreadyExists.WithDetails(fmt.Sprintf("name %q", name))
	default:
		return errors.Wrap(err, "adjustment reason operation failed")
	}
}

// CreateReason adds a reason. Names are unique among active reasons.
func (srv *reasonService) CreateReason(ctx context.Context, actor entity.Actor, name string) (*entity.AdjustmentReason, error) {
	name, err := normalizeReasonName(name)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	reason := &entity.AdjustmentReason{Name: name, CreatedAt: now, UpdatedAt: now}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReasonRepo().Create(ctx, reason); err != nil {
			return mapReasonError(err, 0, name)
		}

		srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
			Action:        entity.AuditActionReasonCreated,
			EntityType:    entity.AuditEntityReason,
			EntityID:      strconv.FormatInt(reason.ID, 10),
			After:         reason,
			CriticalValue: name,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Adjustment reason created", slog.Int64("reason_id", reason.ID), slog.String("name", name))

	return reason, nil
}

// RenameReason changes the catalog name. Past adjustments keep their snapshot.
func (srv *reasonService) RenameReason(ctx context.Context, actor entity.Actor, id int64, name string) (*entity.AdjustmentReason, error) {
	name, err := normalizeReasonName(name)
	if err != nil {
		return nil, err
	}

	var reason *entity.AdjustmentReason

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reasonRepo := repoFactory.ReasonRepo()

		current, err := reasonRepo.FindActiveByID(ctx, id)
		if err != nil {
			return mapReasonError(err, id, name)
		}
		before := *current

		if err := reasonRepo.Rename(ctx, id, name); err != nil {
			return mapReasonError(err, id, name)
		}
		current.Name = name
		current.UpdatedAt = srv.clock.Now()
		reason = current

		srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
			Action:        entity.AuditActionReasonRenamed,
			EntityType:    entity.AuditEntityReason,
			EntityID:      strconv.FormatInt(id, 10),
			Before:        before,
			After:         reason,
			CriticalValue: name,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reason, nil
}

// DeleteReason soft deletes a reason so its name becomes available again.
func (srv *reasonService) DeleteReason(ctx context.Context, actor entity.Actor, id int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reasonRepo := repoFactory.ReasonRepo()

		current, err := reasonRepo.FindActiveByID(ctx, id)
		if err != nil {
			return mapReasonError(err, id, "")
		}
		if err := reasonRepo.SoftDelete(ctx, id); err != nil {
			return mapReasonError(err, id, current.Name)
		}

		srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
			Action:        entity.AuditActionReasonDeleted,
			EntityType:    entity.AuditEntityReason,
			EntityID:      strconv.FormatInt(id, 10),
			Before:        current,
			CriticalValue: current.Name,
		})

		return nil
	})
}

// ListReasons returns the active catalog.
func (srv *reasonService) ListReasons(ctx context.Context) ([]*entity.AdjustmentReason, error) {
	reasons, err := srv.reasonRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list adjustment reasons")
	}

	return reasons, nil
}
