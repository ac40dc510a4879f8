package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"printshop/internal/domain/entity"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"
	"printshop/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memState is one consistent snapshot of every table the engine touches.
type memState struct {
	seq           int64
	products      map[int64]entity.Product
	customers     map[int64]entity.Customer
	orders        map[int64]entity.Order
	orderLines    map[int64][]entity.OrderLine
	transactions  []entity.StockTransaction
	purchases     map[int64]entity.StockPurchase
	purchaseLines map[int64]entity.StockPurchaseLine
	receipts      []entity.StockReceipt
	adjustments   []entity.StockAdjustment
	reasons       map[int64]entity.AdjustmentReason
	alerts        map[int64]entity.LowStockAlert
	audits        []entity.AuditLog
}

func newMemState() *memState {
	return &memState{
		products:      map[int64]entity.Product{},
		customers:     map[int64]entity.Customer{},
		orders:        map[int64]entity.Order{},
		orderLines:    map[int64][]entity.OrderLine{},
		purchases:     map[int64]entity.StockPurchase{},
		purchaseLines: map[int64]entity.StockPurchaseLine{},
		reasons:       map[int64]entity.AdjustmentReason{},
		alerts:        map[int64]entity.LowStockAlert{},
	}
}

func (s *memState) clone() *memState {
	return &memState{
		seq:           s.seq,
		products:      maps.Clone(s.products),
		customers:     maps.Clone(s.customers),
		orders:        maps.Clone(s.orders),
		orderLines:    maps.Clone(s.orderLines),
		transactions:  slices.Clone(s.transactions),
		purchases:     maps.Clone(s.purchases),
		purchaseLines: maps.Clone(s.purchaseLines),
		receipts:      slices.Clone(s.receipts),
		adjustments:   slices.Clone(s.adjustments),
		reasons:       maps.Clone(s.reasons),
		alerts:        maps.Clone(s.alerts),
		audits:        slices.Clone(s.audits),
	}
}

func (s *memState) nextID() int64 {
	s.seq++

	return s.seq
}

// memStore is a serializable transaction manager: a transaction works on a
// private copy that replaces the committed state only when fn succeeds.
type memStore struct {
	mu       sync.Mutex
	state    *memState
	auditErr error
}

func newMemStore() *memStore {
	return &memStore{state: newMemState()}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(&memFactory{store: s, st: work}); err != nil {
		return err
	}
	s.state = work

	return nil
}

// committed returns repositories reading and writing the committed state directly.
func (s *memStore) committed() *memFactory {
	return &memFactory{store: s}
}

func (s *memStore) snapshot() *memState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

func (s *memStore) seedProduct(id int64, name string, price string, stock, threshold int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.products[id] = entity.Product{
		ID:                id,
		Name:              name,
		ImageURL:          "https://cdn.example.com/" + strconv.FormatInt(id, 10) + ".png",
		Price:             decimal.RequireFromString(price),
		StockQuantity:     stock,
		LowStockThreshold: threshold,
	}
	if id > s.state.seq {
		s.state.seq = id
	}
}

func (s *memStore) seedCustomer(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.customers[id] = entity.Customer{ID: id, Name: name, Email: strings.ToLower(name) + "@example.com"}
}

func (s *memStore) seedReason(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.state.nextID()
	s.state.reasons[id] = entity.AdjustmentReason{ID: id, Name: name}

	return id
}

func (s *memStore) stockOf(id int64) int {
	return s.snapshot().products[id].StockQuantity
}

func (s *memStore) unresolvedAlerts(productID int64) []entity.LowStockAlert {
	var out []entity.LowStockAlert
	for _, alert := range s.snapshot().alerts {
		if alert.ProductID == productID && !alert.Resolved {
			out = append(out, alert)
		}
	}

	return out
}

type memFactory struct {
	store *memStore
	st    *memState // nil outside of a transaction
}

func (f *memFactory) with(fn func(st *memState) error) error {
	if f.st != nil {
		return fn(f.st)
	}

	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	return fn(f.store.state)
}

func (f *memFactory) ProductRepo() repository.ProductRepository   { return &memProductRepo{f} }
func (f *memFactory) OrderRepo() repository.OrderRepository       { return &memOrderRepo{f} }
func (f *memFactory) StockRepo() repository.StockRepository       { return &memStockRepo{f} }
func (f *memFactory) ReasonRepo() repository.ReasonRepository     { return &memReasonRepo{f} }
func (f *memFactory) AlertRepo() repository.AlertRepository       { return &memAlertRepo{f} }
func (f *memFactory) AuditRepo() repository.AuditRepository       { return &memAuditRepo{f} }
func (f *memFactory) CustomerRepo() repository.CustomerRepository { return &memCustomerRepo{f} }

func (f *memFactory) Savepoint(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	saved := f.st.clone()
	if err := fn(f); err != nil {
		*f.st = *saved

		return err
	}

	return nil
}

type memProductRepo struct{ f *memFactory }

func (r *memProductRepo) FindByIDs(_ context.Context, ids []int64) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.f.with(func(st *memState) error {
		for _, id := range ids {
			if p, ok := st.products[id]; ok {
				out = append(out, &p)
			}
		}

		return nil
	})

	return out, err
}

func (r *memProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.f.with(func(st *memState) error {
		p, ok := st.products[id]
		if !ok {
			return repository.ErrProductNotFound
		}
		out = &p

		return nil
	})

	return out, err
}

func (r *memProductRepo) ConsumeStock(_ context.Context, id int64, qty int) (*entity.Product, error) {
	var out *entity.Product
	err := r.f.with(func(st *memState) error {
		p, ok := st.products[id]
		if !ok {
			return repository.ErrProductNotFound
		}
		if p.StockQuantity < qty {
			return &repository.InsufficientStockError{Available: p.StockQuantity}
		}
		p.StockQuantity -= qty
		st.products[id] = p
		out = &p

		return nil
	})

	return out, err
}

func (r *memProductRepo) AddStock(_ context.Context, id int64, qty int) (*entity.Product, error) {
	var out *entity.Product
	err := r.f.with(func(st *memState) error {
		p, ok := st.products[id]
		if !ok {
			return repository.ErrProductNotFound
		}
		p.StockQuantity += qty
		st.products[id] = p
		out = &p

		return nil
	})

	return out, err
}

type memOrderRepo struct{ f *memFactory }

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	return r.f.with(func(st *memState) error {
		order.ID = st.nextID()
		lines := make([]entity.OrderLine, 0, len(order.Lines))
		for _, line := range order.Lines {
			line.ID = st.nextID()
			line.OrderID = order.ID
			lines = append(lines, *line)
		}
		stored := *order
		stored.Lines = nil
		st.orders[order.ID] = stored
		st.orderLines[order.ID] = lines

		return nil
	})
}

func (r *memOrderRepo) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	var out *entity.Order
	err := r.f.with(func(st *memState) error {
		order, ok := st.orders[id]
		if !ok {
			return repository.ErrOrderNotFound
		}
		for _, line := range st.orderLines[id] {
			order.Lines = append(order.Lines, &line)
		}
		out = &order

		return nil
	})

	return out, err
}

func (r *memOrderRepo) LockByID(ctx context.Context, id int64) (*entity.Order, error) {
	return r.FindByID(ctx, id)
}

func (r *memOrderRepo) update(id int64, apply func(order *entity.Order)) error {
	return r.f.with(func(st *memState) error {
		order, ok := st.orders[id]
		if !ok {
			return repository.ErrOrderNotFound
		}
		apply(&order)
		st.orders[id] = order

		return nil
	})
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id int64, status entity.OrderStatus) error {
	return r.update(id, func(order *entity.Order) { order.Status = status })
}

func (r *memOrderRepo) UpdateDelivery(_ context.Context, id int64, info entity.DeliveryInfo) error {
	return r.update(id, func(order *entity.Order) { order.Delivery = info })
}

func (r *memOrderRepo) UpdateExpectedDeliveryDate(_ context.Context, id int64, date *time.Time) error {
	return r.update(id, func(order *entity.Order) { order.ExpectedDeliveryDate = date })
}

func (r *memOrderRepo) ReplaceLines(_ context.Context, orderID int64, lines []*entity.OrderLine, total decimal.Decimal) error {
	return r.f.with(func(st *memState) error {
		order, ok := st.orders[orderID]
		if !ok {
			return repository.ErrOrderNotFound
		}
		order.TotalPrice = total
		st.orders[orderID] = order

		stored := make([]entity.OrderLine, 0, len(lines))
		for _, line := range lines {
			line.ID = st.nextID()
			line.OrderID = orderID
			stored = append(stored, *line)
		}
		st.orderLines[orderID] = stored

		return nil
	})
}

type memStockRepo struct{ f *memFactory }

func (r *memStockRepo) CreateTransaction(_ context.Context, tx *entity.StockTransaction) error {
	return r.f.with(func(st *memState) error {
		tx.ID = st.nextID()
		st.transactions = append(st.transactions, *tx)

		return nil
	})
}

func (r *memStockRepo) ListTransactions(_ context.Context, productID int64, limit, offset int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	err := r.f.with(func(st *memState) error {
		for i := len(st.transactions) - 1; i >= 0; i-- {
			if txn := st.transactions[i]; txn.ProductID == productID {
				out = append(out, &txn)
			}
		}

		return nil
	})

	return page(out, limit, offset), err
}

func (r *memStockRepo) CreatePurchase(_ context.Context, purchase *entity.StockPurchase) error {
	return r.f.with(func(st *memState) error {
		purchase.ID = st.nextID()
		for _, line := range purchase.Lines {
			line.ID = st.nextID()
			line.PurchaseID = purchase.ID
			st.purchaseLines[line.ID] = *line
		}
		stored := *purchase
		stored.Lines = nil
		st.purchases[purchase.ID] = stored

		return nil
	})
}

func (r *memStockRepo) LockPurchase(_ context.Context, id int64) (*entity.StockPurchase, error) {
	var out *entity.StockPurchase
	err := r.f.with(func(st *memState) error {
		purchase, ok := st.purchases[id]
		if !ok {
			return repository.ErrPurchaseNotFound
		}
		for _, lineID := range slices.Sorted(maps.Keys(st.purchaseLines)) {
			if line := st.purchaseLines[lineID]; line.PurchaseID == id {
				purchase.Lines = append(purchase.Lines, &line)
			}
		}
		out = &purchase

		return nil
	})

	return out, err
}

func (r *memStockRepo) UpdatePurchaseLineReceived(_ context.Context, lineID int64, received int) error {
	return r.f.with(func(st *memState) error {
		line := st.purchaseLines[lineID]
		line.ReceivedQuantity = received
		st.purchaseLines[lineID] = line

		return nil
	})
}

func (r *memStockRepo) UpdatePurchaseStatus(_ context.Context, id int64, status entity.PurchaseStatus) error {
	return r.f.with(func(st *memState) error {
		purchase := st.purchases[id]
		purchase.Status = status
		st.purchases[id] = purchase

		return nil
	})
}

func (r *memStockRepo) CreateReceipt(_ context.Context, receipt *entity.StockReceipt) error {
	return r.f.with(func(st *memState) error {
		receipt.ID = st.nextID()
		for _, line := range receipt.Lines {
			line.ID = st.nextID()
			line.ReceiptID = receipt.ID
		}
		st.receipts = append(st.receipts, *receipt)

		return nil
	})
}

func (r *memStockRepo) CreateAdjustment(_ context.Context, adjustment *entity.StockAdjustment) error {
	return r.f.with(func(st *memState) error {
		adjustment.ID = st.nextID()
		st.adjustments = append(st.adjustments, *adjustment)

		return nil
	})
}

type memReasonRepo struct{ f *memFactory }

func activeNameTaken(st *memState, name string, exceptID int64) bool {
	for id, reason := range st.reasons {
		if id != exceptID && reason.DeletedAt == nil && strings.EqualFold(reason.Name, name) {
			return true
		}
	}

	return false
}

func (r *memReasonRepo) Create(_ context.Context, reason *entity.AdjustmentReason) error {
	return r.f.with(func(st *memState) error {
		if activeNameTaken(st, reason.Name, 0) {
			return repository.ErrDuplicateReason
		}
		reason.ID = st.nextID()
		st.reasons[reason.ID] = *reason

		return nil
	})
}

func (r *memReasonRepo) FindActiveByID(_ context.Context, id int64) (*entity.AdjustmentReason, error) {
	var out *entity.AdjustmentReason
	err := r.f.with(func(st *memState) error {
		reason, ok := st.reasons[id]
		if !ok || reason.DeletedAt != nil {
			return repository.ErrReasonNotFound
		}
		out = &reason

		return nil
	})

	return out, err
}

func (r *memReasonRepo) Rename(_ context.Context, id int64, name string) error {
	return r.f.with(func(st *memState) error {
		reason, ok := st.reasons[id]
		if !ok || reason.DeletedAt != nil {
			return repository.ErrReasonNotFound
		}
		if activeNameTaken(st, name, id) {
			return repository.ErrDuplicateReason
		}
		reason.Name = name
		st.reasons[id] = reason

		return nil
	})
}

func (r *memReasonRepo) SoftDelete(_ context.Context, id int64) error {
	return r.f.with(func(st *memState) error {
		reason, ok := st.reasons[id]
		if !ok || reason.DeletedAt != nil {
			return repository.ErrReasonNotFound
		}
		now := time.Now()
		reason.DeletedAt = &now
		st.reasons[id] = reason

		return nil
	})
}

func (r *memReasonRepo) ListActive(_ context.Context) ([]*entity.AdjustmentReason, error) {
	var out []*entity.AdjustmentReason
	err := r.f.with(func(st *memState) error {
		for _, id := range slices.Sorted(maps.Keys(st.reasons)) {
			if reason := st.reasons[id]; reason.DeletedAt == nil {
				out = append(out, &reason)
			}
		}

		return nil
	})

	return out, err
}

type memAlertRepo struct{ f *memFactory }

func (r *memAlertRepo) FindUnresolvedByProduct(_ context.Context, productID int64) (*entity.LowStockAlert, error) {
	var out *entity.LowStockAlert
	err := r.f.with(func(st *memState) error {
		for _, alert := range st.alerts {
			if alert.ProductID == productID && !alert.Resolved {
				out = &alert

				return nil
			}
		}

		return repository.ErrAlertNotFound
	})

	return out, err
}

func (r *memAlertRepo) Create(_ context.Context, alert *entity.LowStockAlert) error {
	return r.f.with(func(st *memState) error {
		for _, existing := range st.alerts {
			if existing.ProductID == alert.ProductID && !existing.Resolved {
				return nil
			}
		}
		alert.ID = st.nextID()
		st.alerts[alert.ID] = *alert

		return nil
	})
}

func (r *memAlertRepo) ResolveByProduct(_ context.Context, productID int64, at time.Time) (int64, error) {
	var count int64
	err := r.f.with(func(st *memState) error {
		for id, alert := range st.alerts {
			if alert.ProductID == productID && !alert.Resolved {
				alert.Resolved = true
				alert.ResolvedAt = &at
				st.alerts[id] = alert
				count++
			}
		}

		return nil
	})

	return count, err
}

func (r *memAlertRepo) FindByID(_ context.Context, id int64) (*entity.LowStockAlert, error) {
	var out *entity.LowStockAlert
	err := r.f.with(func(st *memState) error {
		alert, ok := st.alerts[id]
		if !ok {
			return repository.ErrAlertNotFound
		}
		out = &alert

		return nil
	})

	return out, err
}

func (r *memAlertRepo) Resolve(_ context.Context, id int64, at time.Time) error {
	return r.f.with(func(st *memState) error {
		alert, ok := st.alerts[id]
		if !ok {
			return repository.ErrAlertNotFound
		}
		if !alert.Resolved {
			alert.Resolved = true
			alert.ResolvedAt = &at
			st.alerts[id] = alert
		}

		return nil
	})
}

func (r *memAlertRepo) ListUnresolved(_ context.Context, limit, offset int) ([]*entity.LowStockAlert, error) {
	var out []*entity.LowStockAlert
	err := r.f.with(func(st *memState) error {
		for _, id := range slices.Sorted(maps.Keys(st.alerts)) {
			if alert := st.alerts[id]; !alert.Resolved {
				out = append(out, &alert)
			}
		}

		return nil
	})

	return page(out, limit, offset), err
}

type memAuditRepo struct{ f *memFactory }

func (r *memAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	if r.f.store.auditErr != nil {
		return r.f.store.auditErr
	}

	return r.f.with(func(st *memState) error {
		log.ID = uuid.New()
		st.audits = append(st.audits, *log)

		return nil
	})
}

func (r *memAuditRepo) Query(_ context.Context, filter entity.AuditFilter) (*entity.AuditPage, error) {
	var matched []*entity.AuditLog
	err := r.f.with(func(st *memState) error {
		for _, log := range st.audits {
			if filter.Action != "" && log.Action != filter.Action {
				continue
			}
			if filter.EntityType != "" && log.EntityType != filter.EntityType {
				continue
			}
			matched = append(matched, &log)
		}

		return nil
	})

	return &entity.AuditPage{Items: page(matched, filter.Limit, filter.Offset), Total: int64(len(matched))}, err
}

type memCustomerRepo struct{ f *memFactory }

func (r *memCustomerRepo) FindByID(_ context.Context, id int64) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.f.with(func(st *memState) error {
		customer, ok := st.customers[id]
		if !ok {
			return repository.ErrCustomerNotFound
		}
		out = &customer

		return nil
	})

	return out, err
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.InventoryEvent
	err    error
}

func (p *recordingPublisher) PublishInventoryEvent(_ context.Context, event *service.InventoryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []service.InventoryEventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]service.InventoryEventType, 0, len(p.events))
	for _, event := range p.events {
		out = append(out, event.Type)
	}

	return out
}

// engine bundles the core components wired against a memStore.
type engine struct {
	store      *memStore
	clock      *clock.MockClock
	publisher  *recordingPublisher
	monitor    *AlertMonitor
	ledger     *StockLedger
	audit      *AuditWriter
	dispatcher *EventDispatcher
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEngine(t *testing.T) *engine {
	t.Helper()

	logger := discardLogger()
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	publisher := &recordingPublisher{}
	monitor := NewAlertMonitor(clk, logger)

	e := &engine{
		store:      newMemStore(),
		clock:      clk,
		publisher:  publisher,
		monitor:    monitor,
		ledger:     NewStockLedger(monitor, clk, logger),
		audit:      NewAuditWriter(1, clk, logger),
		dispatcher: NewEventDispatcher(publisher, time.Second, clk, logger),
	}
	t.Cleanup(e.dispatcher.Wait)

	return e
}
