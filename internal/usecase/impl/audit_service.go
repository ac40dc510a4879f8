package impl

import (
	"context"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/errors"
	"printshop/internal/usecase"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService is the constructor for auditService.
func NewAuditService(auditRepo repository.AuditRepository) usecase.AuditUsecase {
	return &auditService{auditRepo: auditRepo}
}

// QueryAuditLogs returns one page of audit rows matching filter.
func (srv *auditService) QueryAuditLogs(ctx context.Context, filter entity.AuditFilter) (*entity.AuditPage, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must not be after to")
	}
	filter.Limit, filter.Offset = normalizePage(filter.Limit, filter.Offset)

	page, err := srv.auditRepo.Query(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query audit logs")
	}

	return page, nil
}
