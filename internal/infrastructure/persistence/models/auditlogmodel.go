package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLogModel is the GORM model for the audit_logs table
type AuditLogModel struct {
	ID           uint              `gorm:"primaryKey;autoIncrement"`
	UserID       *uint             `gorm:"column:user_id;index"`
	Action       string            `gorm:"column:action;size:100;not null"`
	ResourceType string            `gorm:"column:resource_type;size:50;not null"`
	ResourceID   *string           `gorm:"column:resource_id;size:100"`
	Details      datatypes.JSONMap `gorm:"column:details"`
	IPAddress    string            `gorm:"column:ip_address;size:45"`
	UserAgent    string            `gorm:"column:user_agent;type:text"`
	Timestamp    time.Time         `gorm:"column:created_at;not null;index"`
}

// TableName returns the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
