package postgres

import (
	"context"
	"time"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists the order graph (order, lines, customizations) in one call.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.UpdatedAt = orderM.UpdatedAt
	for i, lineM := range orderM.Lines {
		order.Lines[i].ID = lineM.ID
		order.Lines[i].OrderID = orderM.ID
	}

	return nil
}

// FindByID retrieves an order with its lines ordered by position.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Lines.Customization").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// LockByID takes a FOR UPDATE lock on the order row before loading the graph.
func (repo *orderRepository) LockByID(ctx context.Context, id int64) (*entity.Order, error) {
	var locked model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id").
		Where("id = ?", id).
		First(&locked).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return repo.FindByID(ctx, id)
}

// UpdateStatus overwrites the workflow status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	return repo.updateColumns(ctx, id, map[string]any{"status": string(status)})
}

// UpdateDelivery overwrites the staff-maintained delivery fields.
func (repo *orderRepository) UpdateDelivery(ctx context.Context, id int64, info entity.DeliveryInfo) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"delivery_address": info.Address,
		"delivery_status":  info.Status,
		"tracking_number":  info.TrackingNumber,
		"delivery_notes":   info.Notes,
	})
}

// UpdateExpectedDeliveryDate sets or clears the expected delivery date.
func (repo *orderRepository) UpdateExpectedDeliveryDate(ctx context.Context, id int64, date *time.Time) error {
	return repo.updateColumns(ctx, id, map[string]any{"expected_delivery_date": date})
}

// ReplaceLines deletes the current lines with their customizations and inserts the new set.
func (repo *orderRepository) ReplaceLines(ctx context.Context, orderID int64, lines []*entity.OrderLine, total decimal.Decimal) error {
	db := repo.db.WithContext(ctx)

	lineIDs := db.Model(&model.OrderLineModel{}).Select("id").Where("order_id = ?", orderID)
	if err := db.Where("order_line_id IN (?)", lineIDs).Delete(&model.OrderCustomizationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order customizations")
	}
	if err := db.Where("order_id = ?", orderID).Delete(&model.OrderLineModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order lines")
	}

	if len(lines) > 0 {
		lineModels := make([]*model.OrderLineModel, 0, len(lines))
		for _, line := range lines {
			lineM := fromOrderLineDomain(line)
			lineM.OrderID = orderID
			lineModels = append(lineModels, lineM)
		}
		if err := db.Create(&lineModels).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create order lines")
		}
		for i, lineM := range lineModels {
			lines[i].ID = lineM.ID
			lines[i].OrderID = orderID
		}
	}

	return repo.updateColumns(ctx, orderID, map[string]any{"total_price": total})
}

func (repo *orderRepository) updateColumns(ctx context.Context, id int64, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel graph to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Status:     entity.OrderStatus(data.Status),
		TotalPrice: data.TotalPrice,
		Delivery: entity.DeliveryInfo{
			Address:        data.DeliveryAddress,
			Status:         data.DeliveryStatus,
			TrackingNumber: data.TrackingNumber,
			Notes:          data.DeliveryNotes,
		},
		ExpectedDeliveryDate: data.ExpectedDeliveryDate,
		OrderedAt:            data.OrderedAt,
		UpdatedAt:            data.UpdatedAt,
		Lines:                make([]*entity.OrderLine, 0, len(data.Lines)),
	}
	for _, lineM := range data.Lines {
		order.Lines = append(order.Lines, toOrderLineDomain(lineM))
	}

	return order
}

func toOrderLineDomain(data *model.OrderLineModel) *entity.OrderLine {
	line := &entity.OrderLine{
		ID:            data.ID,
		OrderID:       data.OrderID,
		Position:      data.Position,
		ProductID:     data.ProductID,
		ProductName:   data.ProductName,
		ProductImage:  data.ProductImage,
		UnitPrice:     data.UnitPrice,
		Quantity:      data.Quantity,
		Customization: entity.Customization{}.Normalized(),
	}
	if c := data.Customization; c != nil {
		line.Customization = entity.Customization{
			Template:   c.Template,
			Text:       c.Text,
			Font:       c.Font,
			Color:      c.Color,
			AssetPaths: c.AssetPaths,
		}.Normalized()
	}

	return line
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel graph.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:                   data.ID,
		CustomerID:           data.CustomerID,
		Status:               string(data.Status),
		TotalPrice:           data.TotalPrice,
		DeliveryAddress:      data.Delivery.Address,
		DeliveryStatus:       data.Delivery.Status,
		TrackingNumber:       data.Delivery.TrackingNumber,
		DeliveryNotes:        data.Delivery.Notes,
		ExpectedDeliveryDate: data.ExpectedDeliveryDate,
		OrderedAt:            data.OrderedAt,
		Lines:                make([]*model.OrderLineModel, 0, len(data.Lines)),
	}
	for _, line := range data.Lines {
		orderM.Lines = append(orderM.Lines, fromOrderLineDomain(line))
	}

	return orderM
}

func fromOrderLineDomain(data *entity.OrderLine) *model.OrderLineModel {
	c := data.Customization.Normalized()

	return &model.OrderLineModel{
		ID:           data.ID,
		OrderID:      data.OrderID,
		Position:     data.Position,
		ProductID:    data.ProductID,
		ProductName:  data.ProductName,
		ProductImage: data.ProductImage,
		UnitPrice:    data.UnitPrice,
		Quantity:     data.Quantity,
		Customization: &model.OrderCustomizationModel{
			Template:   c.Template,
			Text:       c.Text,
			Font:       c.Font,
			Color:      c.Color,
			AssetPaths: datatypes.JSONSlice[string](c.AssetPaths),
		},
	}
}
