package repository

import (
	"context"

	"printshop/internal/domain/entity"
)

// AuditRepository is the append-only store of audit rows.
type AuditRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error

	// Query returns a page of rows newest first plus the total match count.
	Query(ctx context.Context, filter entity.AuditFilter) (*entity.AuditPage, error)
}
