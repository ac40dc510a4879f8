package repository

import (
	"context"

	"printshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for the adjustment reason catalog.
var (
	// ErrReasonNotFound is returned when no active reason has the id.
	ErrReasonNotFound = errors.New("adjustment reason not found")
	// ErrDuplicateReason is returned when an active reason already uses the name.
	ErrDuplicateReason = errors.New("adjustment reason already exists")
)

// ReasonRepository manages the soft-deletable adjustment reason catalog.
type ReasonRepository interface {
	Create(ctx context.Context, reason *entity.AdjustmentReason) error

	// FindActiveByID ignores soft-deleted reasons.
	FindActiveByID(ctx context.Context, id int64) (*entity.AdjustmentReason, error)

	Rename(ctx context.Context, id int64, name string) error

	SoftDelete(ctx context.Context, id int64) error

	ListActive(ctx context.Context) ([]*entity.AdjustmentReason, error)
}
