package postgres

import (
	"context"
	"encoding/json"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const defaultAuditPageSize = 50

// auditRepository implements the repository.AuditRepository interface.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

// Create appends an audit row. Rows are never updated or deleted.
func (repo *auditRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	logM := &model.AuditLogModel{
		CustomerID:    log.CustomerID,
		EmployeeID:    log.EmployeeID,
		Action:        string(log.Action),
		EntityType:    log.EntityType,
		EntityID:      log.EntityID,
		Before:        datatypes.JSON(log.Before),
		After:         datatypes.JSON(log.After),
		CriticalValue: log.CriticalValue,
		CreatedAt:     log.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("audit row needs exactly one actor")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// Query pages audit rows from a replica, newest first.
func (repo *auditRepository) Query(ctx context.Context, filter entity.AuditFilter) (*entity.AuditPage, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.AuditLogModel{})

	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}
	if filter.Actor != "" {
		pattern := "%" + filter.Actor + "%"
		query = query.Where("(CAST(customer_id AS TEXT) LIKE ? OR CAST(employee_id AS TEXT) LIKE ?)", pattern, pattern)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", string(filter.Action))
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count audit logs")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditPageSize
	}

	var logModels []*model.AuditLogModel
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query audit logs")
	}

	page := &entity.AuditPage{
		Items: make([]*entity.AuditLog, 0, len(logModels)),
		Total: total,
	}
	for _, logM := range logModels {
		page.Items = append(page.Items, &entity.AuditLog{
			ID:            logM.ID,
			CustomerID:    logM.CustomerID,
			EmployeeID:    logM.EmployeeID,
			Action:        entity.AuditAction(logM.Action),
			EntityType:    logM.EntityType,
			EntityID:      logM.EntityID,
			Before:        json.RawMessage(logM.Before),
			After:         json.RawMessage(logM.After),
			CriticalValue: logM.CriticalValue,
			CreatedAt:     logM.CreatedAt,
		})
	}

	return page, nil
}
