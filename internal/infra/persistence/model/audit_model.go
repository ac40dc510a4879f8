package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel is the GORM-specific struct for the append-only 'audit_logs' table.
// Exactly one of customer_id and employee_id is set (chk_audit_logs_single_actor).
type AuditLogModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID    *int64         `gorm:"index"`
	EmployeeID    *int64         `gorm:"index"`
	Action        string         `gorm:"type:varchar(64);not null;index"`
	EntityType    string         `gorm:"type:varchar(64);not null;index:idx_audit_logs_entity,priority:1"`
	EntityID      string         `gorm:"type:varchar(64);not null;index:idx_audit_logs_entity,priority:2"`
	Before        datatypes.JSON `gorm:"type:jsonb"`
	After         datatypes.JSON `gorm:"type:jsonb"`
	CriticalValue string         `gorm:"type:text;not null;default:''"`
	CreatedAt     time.Time      `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
