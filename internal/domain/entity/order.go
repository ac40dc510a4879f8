package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of workflow states an order can be in.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderPredecessors lists, for each target status, the statuses it may be entered from.
var orderPredecessors = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusPending},
	OrderStatusShipped:    {OrderStatusProcessing},
	OrderStatusDelivered:  {OrderStatusShipped},
	OrderStatusCancelled:  {OrderStatusPending, OrderStatusProcessing, OrderStatusShipped},
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the workflow allows moving from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, from := range orderPredecessors[next] {
		if from == s {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// DeliveryInfo is maintained by staff independently of the workflow status.
type DeliveryInfo struct {
	Address        string `json:"address"`
	Status         string `json:"status"` // Free text, e.g. "Out for delivery", "Delivered".
	TrackingNumber string `json:"tracking_number"`
	Notes          string `json:"notes"`
}

// SignalsDelivered reports whether the free-text status says the parcel arrived.
func (d DeliveryInfo) SignalsDelivered() bool {
	status := strings.ToLower(strings.TrimSpace(d.Status))

	return strings.Contains(status, "delivered") && !strings.Contains(status, "not delivered") && !strings.Contains(status, "undelivered")
}

// Order is a placed customer order with its line snapshots.
type Order struct {
	ID                   int64           `json:"id"`
	CustomerID           int64           `json:"customer_id"`
	Status               OrderStatus     `json:"status"`
	TotalPrice           decimal.Decimal `json:"total_price"`
	Delivery             DeliveryInfo    `json:"delivery"`
	ExpectedDeliveryDate *time.Time      `json:"expected_delivery_date,omitempty"`
	OrderedAt            time.Time       `json:"ordered_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	Lines                []*OrderLine    `json:"lines"`
}

// DisplayStatus is what customers and staff see: a delivery status that says
// "delivered" wins over the workflow status.
func (o *Order) DisplayStatus() string {
	if o.Delivery.SignalsDelivered() {
		return string(OrderStatusDelivered)
	}

	return string(o.Status)
}

// QuantitiesByProduct sums line quantities per product.
func (o *Order) QuantitiesByProduct() map[int64]int {
	return SumQuantities(o.Lines)
}

// OrderLine is one product entry of an order with catalog data frozen at order time.
type OrderLine struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	Position      int             `json:"position"`   // Zero-based position within the order.
	ProductID     int64           `json:"product_id"` // Soft reference, the product may later change.
	ProductName   string          `json:"product_name"`
	ProductImage  string          `json:"product_image"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	Customization Customization   `json:"customization"`
}

// Subtotal returns unit price times quantity.
func (l *OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Customization is free-form personalization attached to a line.
type Customization struct {
	Template   string   `json:"template"`
	Text       string   `json:"text"`
	Font       string   `json:"font"`
	Color      string   `json:"color"`
	AssetPaths []string `json:"asset_paths"`
}

// Normalized returns a copy with neutral values instead of nil collections.
func (c Customization) Normalized() Customization {
	out := Customization{
		Template:   strings.TrimSpace(c.Template),
		Text:       c.Text,
		Font:       strings.TrimSpace(c.Font),
		Color:      strings.TrimSpace(c.Color),
		AssetPaths: make([]string, 0, len(c.AssetPaths)),
	}
	for _, p := range c.AssetPaths {
		if p = strings.TrimSpace(p); p != "" {
			out.AssetPaths = append(out.AssetPaths, p)
		}
	}

	return out
}

// OrderLineInput is one requested line of a cart.
type OrderLineInput struct {
	ProductID     int64
	Quantity      int
	Customization *Customization
}

// SumQuantities aggregates line quantities per product id.
func SumQuantities(lines []*OrderLine) map[int64]int {
	totals := make(map[int64]int, len(lines))
	for _, l := range lines {
		totals[l.ProductID] += l.Quantity
	}

	return totals
}

// OrderView is the response shape of order placement and order reads.
type OrderView struct {
	OrderID              int64            `json:"order_id"`
	Status               OrderStatus      `json:"status"`
	DisplayStatus        string           `json:"display_status"`
	TotalPrice           decimal.Decimal  `json:"total_price"`
	OrderedAt            time.Time        `json:"ordered_at"`
	ExpectedDeliveryDate *time.Time       `json:"expected_delivery_date,omitempty"`
	Delivery             DeliveryInfo     `json:"delivery"`
	Customer             CustomerView     `json:"customer"`
	Lines                []*OrderLineView `json:"lines"`
}

// CustomerView carries the resolved customer display fields.
type CustomerView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Deleted bool   `json:"deleted"`
}

// OrderLineView is the per-line part of an OrderView.
type OrderLineView struct {
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	ProductImage  string          `json:"product_image"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Customization Customization   `json:"customization"`
}
