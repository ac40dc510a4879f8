// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"printshop/config"
	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"
	"printshop/internal/errors"
	"printshop/internal/pkg/clock"
	"printshop/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderServiceParams collects the dependencies of the order workflow.
type OrderServiceParams struct {
	fx.In

	Config       *config.Config
	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	CustomerRepo repository.CustomerRepository
	Ledger       *StockLedger
	Audit        *AuditWriter
	Dispatcher   *EventDispatcher
	QRCode       service.QRCodeService
	Clock        clock.Clock
	Logger       *slog.Logger
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	ledger       *StockLedger
	audit        *AuditWriter
	dispatcher   *EventDispatcher
	qrCode       service.QRCodeService
	clock        clock.Clock
	logger       *slog.Logger

	restockOnCancel      bool
	reconcileOnOrderEdit bool
	deletedCustomerName  string
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		customerRepo: params.CustomerRepo,
		ledger:       params.Ledger,
		audit:        params.Audit,
		dispatcher:   params.Dispatcher,
		qrCode:       params.QRCode,
		clock:        params.Clock,
		logger:       params.Logger,
	}
	if inv := params.Config.Inventory; inv != nil {
		srv.restockOnCancel = inv.RestockOnCancel
		srv.reconcileOnOrderEdit = inv.ReconcileOnOrderEdit
		srv.deletedCustomerName = inv.DeletedCustomerName
	}

	return srv
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// orderSnapshot is the audited shape of an order.
type orderSnapshot struct {
	Status               entity.OrderStatus  `json:"status"`
	TotalPrice           string              `json:"total_price"`
	Delivery             entity.DeliveryInfo `json:"delivery"`
	ExpectedDeliveryDate *time.Time          `json:"expected_delivery_date,omitempty"`
	Lines                []lineSnapshot      `json:"lines"`
}

type lineSnapshot struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

func snapshotOrder(order *entity.Order) orderSnapshot {
	lines := make([]lineSnapshot, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, lineSnapshot{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
		})
	}

	return orderSnapshot{
		Status:               order.Status,
		TotalPrice:           order.TotalPrice.StringFixed(2),
		Delivery:             order.Delivery,
		ExpectedDeliveryDate: order.ExpectedDeliveryDate,
		Lines:                lines,
	}
}

// PlaceOrder persists the order, consumes stock and audits the creation in one transaction.
func (srv *orderService) PlaceOrder(
	ctx context.Context,
	actor entity.Actor,
	customerID int64,
	inputs []entity.OrderLineInput,
) (*entity.OrderView, error) {
	if actor.Kind == entity.ActorCustomer {
		customerID = actor.ID
	}
	if customerID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer_id is required")
	}
	if err := validateLineInputs(inputs); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Placing order", slog.Int64("customer_id", customerID), slog.Int("lines", len(inputs)))

	var (
		order   *entity.Order
		changes []*entity.StockChange
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		lines, total, err := buildOrderLines(ctx, repoFactory.ProductRepo(), inputs)
		if err != nil {
			return err
		}

		now := srv.clock.Now()
		order = &entity.Order{
			CustomerID: customerID,
			Status:     entity.OrderStatusPending,
			TotalPrice: total,
			OrderedAt:  now,
			UpdatedAt:  now,
			Lines:      lines,
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		changes, err = srv.consumeAll(ctx, repoFactory, entity.SumQuantities(lines), entity.StockOriginOrder, order.ID)
		if err != nil {
			return err
		}

		srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
			Action:        entity.AuditActionOrderCreated,
			EntityType:    entity.AuditEntityOrder,
			EntityID:      strconv.FormatInt(order.ID, 10),
			After:         snapshotOrder(order),
			CriticalValue: order.TotalPrice.StringFixed(2),
		})

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement failed", slog.Int64("customer_id", customerID), slog.Any("error", err))

		return nil, err
	}

	events := stockEvents(changes)
	events = append(events, SalesChangedEvent(order.ID))
	srv.dispatcher.Dispatch(ctx, events...)

	srv.log(ctx).Info("Order placed", slog.Int64("order_id", order.ID), slog.String("total", order.TotalPrice.String()))

	return srv.buildView(ctx, order), nil
}

// GetOrder returns an order view. Orders of other customers look like missing ones.
func (srv *orderService) GetOrder(ctx context.Context, actor entity.Actor, orderID int64) (*entity.OrderView, error) {
	order, err := srv.findVisibleOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	return srv.buildView(ctx, order), nil
}

// OrderQRCode renders the tracking code of an order the actor may see.
func (srv *orderService) OrderQRCode(ctx context.Context, actor entity.Actor, orderID int64) ([]byte, error) {
	if _, err := srv.findVisibleOrder(ctx, actor, orderID); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateOrderQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// UpdateOrder replaces the lines of a pending order.
func (srv *orderService) UpdateOrder(
	ctx context.Context,
	actor entity.Actor,
	orderID int64,
	inputs []entity.OrderLineInput,
) (*entity.OrderView, error) {
	if err := validateLineInputs(inputs); err != nil {
		return nil, err
	}

	var (
		order   *entity.Order
		changes []*entity.StockChange
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		current, err := lockOrder(ctx, repoFactory, orderID)
		if err != nil {
			return err
		}
		if actor.Kind == entity.ActorCustomer && current.CustomerID != actor.ID {
			return domainerrors.ErrOrderNotFound.WithDetails(fmt.Sprintf("order %d", orderID))
		}
		if current.Status != entity.OrderStatusPending {
			return domainerrors.ErrOrderNotEditable.WithDetails(fmt.Sprintf("order %d is %s", orderID, current.Status))
		}

		lines, total, err := buildOrderLines(ctx, repoFactory.ProductRepo(), inputs)
		if err != nil {
			return err
		}

		if srv.reconcileOnOrderEdit {
			changes, err = srv.reconcile(ctx, repoFactory, current, lines)
			if err != nil {
				return err
			}
		}

		before := snapshotOrder(current)
		if err := repoFactory.OrderRepo().ReplaceLines(ctx, orderID, lines, total); err != nil {
			return errors.Wrap(err, "failed to replace order lines")
		}

		order = current
		order.Lines = lines
		order.TotalPrice = total
		order.UpdatedAt = srv.clock.Now()

		srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
			Action:        entity.AuditActionOrderUpdated,
			EntityType:    entity.AuditEntityOrder,
			EntityID:      strconv.FormatInt(orderID, 10),
			Before:        before,
			After:         snapshotOrder(order),
			CriticalValue: total.StringFixed(2),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	events := stockEvents(changes)
	events = append(events, SalesChangedEvent(orderID))
	srv.dispatcher.Dispatch(ctx, events...)

	return srv.buildView(ctx, order), nil
}

// UpdateStatus validates the move against the transition table. Moving to
// cancelled takes the same path as CancelOrder.
func (srv *orderService) UpdateStatus(
	ctx context.Context,
	actor entity.Actor,
	orderID int64,
	status entity.OrderStatus,
) (*entity.OrderView, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status %q", status))
	}

	action := entity.AuditActionOrderStatusChanged
	if status == entity.OrderStatusCancelled {
		action = entity.AuditActionOrderCancelled
	}

	return srv.transition(ctx, actor, orderID, status, action)
}

// CancelOrder moves the order to cancelled from any status before delivered.
func (srv *orderService) CancelOrder(ctx context.Context, actor entity.Actor, orderID int64) (*entity.OrderView, error) {
	return srv.transition(ctx, actor, orderID, entity.OrderStatusCancelled, entity.AuditActionOrderCancelled)
}

func (srv *orderService) transition(
	ctx context.Context,
	actor entity.Actor,
	orderID int64,
	status entity.OrderStatus,
	action entity.AuditAction,
) (*entity.OrderView, error) {
	var (
		order   *entity.Order
		changes []*entity.StockChange
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		current, err := lockOrder(ctx, repoFactory, orderID)
		if err != nil {
			return err
		}
		if !current.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				fmt.Sprintf("order %d cannot move from %s to %s", orderID, current.Status, status),
			)
		}

		before := snapshotOrder(current)
		if err := repoFactory.OrderRepo().UpdateStatus(ctx, orderID, status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		if status == entity.OrderStatusCancelled && srv.restockOnCancel {
			changes, err = srv.restoreAll(ctx, repoFactory, current.QuantitiesByProduct(), entity.StockOriginCancellation, orderID)
			if err != nil {
				return err
			}
		}

		order = current
		order.Status = status
		order.UpdatedAt = srv.clock.Now()

		srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
			Action:        action,
			EntityType:    entity.AuditEntityOrder,
			EntityID:      strconv.FormatInt(orderID, 10),
			Before:        before,
			After:         snapshotOrder(order),
			CriticalValue: string(status),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status changed", slog.Int64("order_id", orderID), slog.String("status", string(status)))

	events := stockEvents(changes)
	events = append(events, OrderStatusChangedEvent(orderID, order.DisplayStatus()))
	if status == entity.OrderStatusCancelled {
		events = append(events, SalesChangedEvent(orderID))
	}
	srv.dispatcher.Dispatch(ctx, events...)

	return srv.buildView(ctx, order), nil
}

// UpdateDeliveryInfo overwrites the staff-maintained delivery fields.
func (srv *orderService) UpdateDeliveryInfo(
	ctx context.Context,
	actor entity.Actor,
	orderID int64,
	info entity.DeliveryInfo,
) (*entity.OrderView, error) {
	info.Status = strings.TrimSpace(info.Status)

	return srv.updateFields(ctx, actor, orderID, entity.AuditActionOrderDeliveryUpdated,
		func(repoFactory repository.RepositoryFactory, order *entity.Order) (string, error) {
			if err := repoFactory.OrderRepo().UpdateDelivery(ctx, orderID, info); err != nil {
				return "", errors.Wrap(err, "failed to update delivery info")
			}
			order.Delivery = info

			return info.Status, nil
		})
}

// UpdateExpectedDeliveryDate sets or clears the expected delivery date.
func (srv *orderService) UpdateExpectedDeliveryDate(
	ctx context.Context,
	actor entity.Actor,
	orderID int64,
	date *time.Time,
) (*entity.OrderView, error) {
	return srv.updateFields(ctx, actor, orderID, entity.AuditActionOrderExpectedDelivery,
		func(repoFactory repository.RepositoryFactory, order *entity.Order) (string, error) {
			if err := repoFactory.OrderRepo().UpdateExpectedDeliveryDate(ctx, orderID, date); err != nil {
				return "", errors.Wrap(err, "failed to update expected delivery date")
			}
			order.ExpectedDeliveryDate = date
			if date == nil {
				return "", nil
			}

			return date.Format(time.DateOnly), nil
		})
}

func (srv *orderService) updateFields(
	ctx context.Context,
	actor entity.Actor,
	orderID int64,
	action entity.AuditAction,
	apply func(repoFactory repository.RepositoryFactory, order *entity.Order) (string, error),
) (*entity.OrderView, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		current, err := lockOrder(ctx, repoFactory, orderID)
		if err != nil {
			return err
		}

		before := snapshotOrder(current)
		critical, err := apply(repoFactory, current)
		if err != nil {
			return err
		}
		current.UpdatedAt = srv.clock.Now()
		order = current

		srv.audit.Write(ctx, repoFactory, AuditActors{Session: actor}, entity.AuditEntry{
			Action:        action,
			EntityType:    entity.AuditEntityOrder,
			EntityID:      strconv.FormatInt(orderID, 10),
			Before:        before,
			After:         snapshotOrder(order),
			CriticalValue: critical,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.dispatcher.Dispatch(ctx, OrderStatusChangedEvent(orderID, order.DisplayStatus()))

	return srv.buildView(ctx, order), nil
}

// consumeAll takes stock product by product in ascending id order so that
// concurrent orders lock product rows in the same sequence.
func (srv *orderService) consumeAll(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	quantities map[int64]int,
	origin entity.StockOrigin,
	referenceID int64,
) ([]*entity.StockChange, error) {
	changes := make([]*entity.StockChange, 0, len(quantities))
	for _, productID := range sortedKeys(quantities) {
		change, err := srv.ledger.Consume(ctx, repoFactory, productID, quantities[productID], origin, referenceID)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}

	return changes, nil
}

func (srv *orderService) restoreAll(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	quantities map[int64]int,
	origin entity.StockOrigin,
	referenceID int64,
) ([]*entity.StockChange, error) {
	changes := make([]*entity.StockChange, 0, len(quantities))
	for _, productID := range sortedKeys(quantities) {
		change, err := srv.ledger.Restore(ctx, repoFactory, productID, quantities[productID], origin, referenceID)
		if err != nil {
			// Products removed from the catalog keep no stock to return to.
			if errors.Is(err, domainerrors.ErrProductNotFound) {
				srv.log(ctx).Warn("Skipping restock of missing product", slog.Int64("product_id", productID))

				continue
			}

			return nil, err
		}
		changes = append(changes, change)
	}

	return changes, nil
}

// reconcile applies the per-product difference between the old and new line sets.
func (srv *orderService) reconcile(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	current *entity.Order,
	lines []*entity.OrderLine,
) ([]*entity.StockChange, error) {
	previous := current.QuantitiesByProduct()
	next := entity.SumQuantities(lines)

	consume := make(map[int64]int)
	restore := make(map[int64]int)
	for productID, qty := range next {
		if diff := qty - previous[productID]; diff > 0 {
			consume[productID] = diff
		} else if diff < 0 {
			restore[productID] = -diff
		}
	}
	for productID, qty := range previous {
		if _, kept := next[productID]; !kept {
			restore[productID] = qty
		}
	}

	restored, err := srv.restoreAll(ctx, repoFactory, restore, entity.StockOriginOrderEdit, current.ID)
	if err != nil {
		return nil, err
	}
	consumed, err := srv.consumeAll(ctx, repoFactory, consume, entity.StockOriginOrderEdit, current.ID)
	if err != nil {
		return nil, err
	}

	return append(restored, consumed...), nil
}

func (srv *orderService) findVisibleOrder(ctx context.Context, actor entity.Actor, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetails(fmt.Sprintf("order %d", orderID))
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if actor.Kind == entity.ActorCustomer && order.CustomerID != actor.ID {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(fmt.Sprintf("order %d", orderID))
	}

	return order, nil
}

// buildView resolves customer display fields. A removed customer is replaced
// by a placeholder instead of failing the response.
func (srv *orderService) buildView(ctx context.Context, order *entity.Order) *entity.OrderView {
	customer := entity.CustomerView{ID: order.CustomerID}

	found, err := srv.customerRepo.FindByID(ctx, order.CustomerID)
	switch {
	case err == nil:
		customer.Name = found.Name
		customer.Email = found.Email
		customer.Phone = found.Phone
	case errors.Is(err, repository.ErrCustomerNotFound):
		customer.Name = srv.deletedCustomerName
		customer.Deleted = true
	default:
		srv.log(ctx).Warn("Failed to resolve order customer",
			slog.Int64("order_id", order.ID),
			slog.Int64("customer_id", order.CustomerID),
			slog.Any("error", err),
		)
	}

	lines := make([]*entity.OrderLineView, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, &entity.OrderLineView{
			ProductID:     line.ProductID,
			ProductName:   line.ProductName,
			ProductImage:  line.ProductImage,
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
			Subtotal:      line.Subtotal(),
			Customization: line.Customization.Normalized(),
		})
	}

	return &entity.OrderView{
		OrderID:              order.ID,
		Status:               order.Status,
		DisplayStatus:        order.DisplayStatus(),
		TotalPrice:           order.TotalPrice,
		OrderedAt:            order.OrderedAt,
		ExpectedDeliveryDate: order.ExpectedDeliveryDate,
		Delivery:             order.Delivery,
		Customer:             customer,
		Lines:                lines,
	}
}

func lockOrder(ctx context.Context, repoFactory repository.RepositoryFactory, orderID int64) (*entity.Order, error) {
	order, err := repoFactory.OrderRepo().LockByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetails(fmt.Sprintf("order %d", orderID))
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return order, nil
}

// validateLineInputs rejects an empty line set before any store access.
func validateLineInputs(inputs []entity.OrderLineInput) error {
	if len(inputs) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("order must contain at least one line")
	}

	return nil
}

// lineProblems lists every malformed line and every per-product total that
// does not fit a stock quantity.
func lineProblems(inputs []entity.OrderLineInput) []string {
	var problems []string
	totals := make(map[int64]int64, len(inputs))
	for i, input := range inputs {
		if input.ProductID <= 0 {
			problems = append(problems, fmt.Sprintf("line %d: product_id must be positive", i))
		}
		switch {
		case input.Quantity <= 0:
			problems = append(problems, fmt.Sprintf("line %d: quantity must be positive", i))
		case input.Quantity > entity.MaxQuantity:
			problems = append(problems, fmt.Sprintf("line %d: quantity %d exceeds %d", i, input.Quantity, entity.MaxQuantity))
		case input.ProductID > 0:
			totals[input.ProductID] += int64(input.Quantity)
		}
	}
	for _, id := range slices.Sorted(maps.Keys(totals)) {
		if totals[id] > entity.MaxQuantity {
			problems = append(problems, fmt.Sprintf("product %d: total quantity %d exceeds %d", id, totals[id], entity.MaxQuantity))
		}
	}

	return problems
}

// buildOrderLines resolves all products in one batch and snapshots their
// catalog data. Malformed lines and unknown ids are reported together; unknown
// ids alone reject the whole set with UNKNOWN_PRODUCTS naming every one.
func buildOrderLines(
	ctx context.Context,
	productRepo repository.ProductRepository,
	inputs []entity.OrderLineInput,
) ([]*entity.OrderLine, decimal.Decimal, error) {
	problems := lineProblems(inputs)

	ids := make([]int64, 0, len(inputs))
	for _, input := range inputs {
		if input.ProductID > 0 {
			ids = append(ids, input.ProductID)
		}
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	byID := make(map[int64]*entity.Product, len(ids))
	if len(ids) > 0 {
		products, err := productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, decimal.Zero, errors.Wrap(err, "failed to resolve products")
		}
		for _, product := range products {
			byID[product.ID] = product
		}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, strconv.FormatInt(id, 10))
		}
	}
	if len(problems) > 0 {
		if len(missing) > 0 {
			problems = append(problems, "unknown product ids: "+strings.Join(missing, ", "))
		}

		return nil, decimal.Zero, domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}
	if len(missing) > 0 {
		return nil, decimal.Zero, domainerrors.ErrUnknownProducts.WithDetails("unknown product ids: " + strings.Join(missing, ", "))
	}

	total := decimal.Zero
	lines := make([]*entity.OrderLine, 0, len(inputs))
	for i, input := range inputs {
		product := byID[input.ProductID]

		var customization entity.Customization
		if input.Customization != nil {
			customization = *input.Customization
		}

		line := &entity.OrderLine{
			Position:      i,
			ProductID:     product.ID,
			ProductName:   product.Name,
			ProductImage:  product.ImageURL,
			UnitPrice:     product.Price,
			Quantity:      input.Quantity,
			Customization: customization.Normalized(),
		}
		total = total.Add(line.Subtotal())
		lines = append(lines, line)
	}

	return lines, total, nil
}

func sortedKeys(quantities map[int64]int) []int64 {
	keys := make([]int64, 0, len(quantities))
	for id := range quantities {
		keys = append(keys, id)
	}
	slices.Sort(keys)

	return keys
}
