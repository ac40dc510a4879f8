package postgres

import (
	"context"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reasonRepository implements the repository.ReasonRepository interface.
type reasonRepository struct {
	db *gorm.DB
}

// NewReasonRepository is the constructor for reasonRepository.
func NewReasonRepository(db *gorm.DB) repository.ReasonRepository {
	return &reasonRepository{db: db}
}

// Create relies on the partial unique index over active names.
func (repo *reasonRepository) Create(ctx context.Context, reason *entity.AdjustmentReason) error {
	reasonM := &model.AdjustmentReasonModel{Name: reason.Name}

	if err := repo.db.WithContext(ctx).Create(reasonM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReason
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create adjustment reason")
	}

	reason.ID = reasonM.ID
	reason.CreatedAt = reasonM.CreatedAt
	reason.UpdatedAt = reasonM.UpdatedAt

	return nil
}

func (repo *reasonRepository) FindActiveByID(ctx context.Context, id int64) (*entity.AdjustmentReason, error) {
	var reasonM model.AdjustmentReasonModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reasonM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReasonNotFound
		}

		return nil, errors.Wrap(err, "failed to find adjustment reason")
	}

	return toReasonDomain(&reasonM), nil
}

// Rename changes the catalog row only; adjustments keep their name snapshot.
func (repo *reasonRepository) Rename(ctx context.Context, id int64, name string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdjustmentReasonModel{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateReason
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rename adjustment reason")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReasonNotFound
	}

	return nil
}

func (repo *reasonRepository) SoftDelete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AdjustmentReasonModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete adjustment reason")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReasonNotFound
	}

	return nil
}

func (repo *reasonRepository) ListActive(ctx context.Context) ([]*entity.AdjustmentReason, error) {
	var reasonModels []*model.AdjustmentReasonModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&reasonModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list adjustment reasons")
	}

	reasons := make([]*entity.AdjustmentReason, 0, len(reasonModels))
	for _, reasonM := range reasonModels {
		reasons = append(reasons, toReasonDomain(reasonM))
	}

	return reasons, nil
}

func toReasonDomain(data *model.AdjustmentReasonModel) *entity.AdjustmentReason {
	reason := &entity.AdjustmentReason{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.DeletedAt.Valid {
		deletedAt := data.DeletedAt.Time
		reason.DeletedAt = &deletedAt
	}

	return reason
}
