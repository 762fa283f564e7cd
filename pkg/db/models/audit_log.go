package models

import (
	"time"

	"github.com/angelmondragon/lotflow-backend/pkg/enums"
	"github.com/google/uuid"
)

// AuditLogEntry is an append-only record of a successful write.
type AuditLogEntry struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	EntityType  enums.AuditEntityType `gorm:"column:entity_type;not null;index:idx_audit_log_entity"`
	EntityID    uuid.UUID             `gorm:"column:entity_id;type:uuid;not null;index:idx_audit_log_entity"`
	Action      enums.AuditAction     `gorm:"column:action;not null"`
	SummaryJSON []byte                `gorm:"column:summary_json;type:jsonb"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
}

func (AuditLogEntry) TableName() string { return "audit_log" }
