package postgres

import (
	"context"
	"time"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{db: db}
}

func (repo *alertRepository) FindUnresolvedByProduct(ctx context.Context, productID int64) (*entity.LowStockAlert, error) {
	var alertM model.LowStockAlertModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("product_id = ? AND resolved = ?", productID, false).
		Order("id ASC").
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find unresolved alert")
	}

	return toAlertDomain(&alertM), nil
}

// Create inserts with ON CONFLICT DO NOTHING against the one-open-alert index,
// so a racing insert leaves the alert ID at zero instead of aborting the transaction.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.LowStockAlert) error {
	alertM := &model.LowStockAlertModel{
		ProductID:       alert.ProductID,
		QuantityAtAlert: alert.QuantityAtAlert,
		Threshold:       alert.Threshold,
		Resolved:        alert.Resolved,
		CreatedAt:       alert.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(alertM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create low stock alert")
	}

	alert.ID = alertM.ID

	return nil
}

func (repo *alertRepository) ResolveByProduct(ctx context.Context, productID int64, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LowStockAlertModel{}).
		Where("product_id = ? AND resolved = ?", productID, false).
		Updates(map[string]any{"resolved": true, "resolved_at": at})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to resolve low stock alerts")
	}

	return result.RowsAffected, nil
}

func (repo *alertRepository) FindByID(ctx context.Context, id int64) (*entity.LowStockAlert, error) {
	var alertM model.LowStockAlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find low stock alert")
	}

	return toAlertDomain(&alertM), nil
}

// Resolve is a no-op for alerts that are already resolved.
func (repo *alertRepository) Resolve(ctx context.Context, id int64, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LowStockAlertModel{}).
		Where("id = ? AND resolved = ?", id, false).
		Updates(map[string]any{"resolved": true, "resolved_at": at})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to resolve low stock alert")
	}

	if result.RowsAffected == 0 {
		_, err := repo.FindByID(ctx, id)

		return err
	}

	return nil
}

func (repo *alertRepository) ListUnresolved(ctx context.Context, limit, offset int) ([]*entity.LowStockAlert, error) {
	var alertModels []*model.LowStockAlertModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("resolved = ?", false).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list unresolved alerts")
	}

	alerts := make([]*entity.LowStockAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

func toAlertDomain(data *model.LowStockAlertModel) *entity.LowStockAlert {
	return &entity.LowStockAlert{
		ID:              data.ID,
		ProductID:       data.ProductID,
		QuantityAtAlert: data.QuantityAtAlert,
		Threshold:       data.Threshold,
		Resolved:        data.Resolved,
		CreatedAt:       data.CreatedAt,
		ResolvedAt:      data.ResolvedAt,
	}
}
