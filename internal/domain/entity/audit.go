package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditAction names the mutation an audit row describes.
type AuditAction string

const (
	AuditActionOrderCreated          AuditAction = "order.created"
	AuditActionOrderUpdated          AuditAction = "order.updated"
	AuditActionOrderStatusChanged    AuditAction = "order.status_changed"
	AuditActionOrderCancelled        AuditAction = "order.cancelled"
	AuditActionOrderDeliveryUpdated  AuditAction = "order.delivery_updated"
	AuditActionOrderExpectedDelivery AuditAction = "order.expected_delivery_updated"
	AuditActionPurchaseCreated       AuditAction = "stock.purchase_created"
	AuditActionStockReceived         AuditAction = "stock.received"
	AuditActionStockAdjusted         AuditAction = "stock.adjusted"
	AuditActionReasonCreated         AuditAction = "reason.created"
	AuditActionReasonRenamed         AuditAction = "reason.renamed"
	AuditActionReasonDeleted         AuditAction = "reason.deleted"
	AuditActionAlertResolved         AuditAction = "alert.resolved"
)

// Audited entity types.
const (
	AuditEntityOrder    = "order"
	AuditEntityPurchase = "stock_purchase"
	AuditEntityReceipt  = "stock_receipt"
	AuditEntityAdjust   = "stock_adjustment"
	AuditEntityReason   = "adjustment_reason"
	AuditEntityAlert    = "low_stock_alert"
)

// AuditLog is an immutable record of who changed what.
type AuditLog struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    *int64          `json:"customer_id,omitempty"`
	EmployeeID    *int64          `json:"employee_id,omitempty"`
	Action        AuditAction     `json:"action"`
	EntityType    string          `json:"entity_type"`
	EntityID      string          `json:"entity_id"`
	Before        json.RawMessage `json:"before,omitempty"`
	After         json.RawMessage `json:"after,omitempty"`
	CriticalValue string          `json:"critical_value"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AuditEntry is what a caller hands the audit writer.
type AuditEntry struct {
	Action        AuditAction
	EntityType    string
	EntityID      string
	Before        any
	After         any
	CriticalValue string
}

// AuditFilter narrows an audit query. Zero values are ignored.
type AuditFilter struct {
	From       *time.Time
	To         *time.Time
	Actor      string // Substring of the customer or employee id.
	Action     AuditAction
	EntityType string
	Limit      int
	Offset     int
}

// AuditPage is one page of audit rows.
type AuditPage struct {
	Items []*AuditLog `json:"items"`
	Total int64       `json:"total"`
}
