package mappers

import (
	"gorm.io/datatypes"

	"github.com/scamguard-vn/scamguard/internal/domain/auditlog"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
)

func AuditLogToDomain(model *models.AuditLogModel) *auditlog.Entry {
	details := map[string]any(model.Details)
	if details == nil {
		details = map[string]any{}
	}
	return &auditlog.Entry{
		ID:           model.ID,
		UserID:       model.UserID,
		Action:       model.Action,
		ResourceType: model.ResourceType,
		ResourceID:   model.ResourceID,
		Details:      details,
		IPAddress:    model.IPAddress,
		UserAgent:    model.UserAgent,
		Timestamp:    model.Timestamp,
	}
}

func AuditLogToModel(entity *auditlog.Entry) *models.AuditLogModel {
	return &models.AuditLogModel{
		ID:           entity.ID,
		UserID:       entity.UserID,
		Action:       entity.Action,
		ResourceType: entity.ResourceType,
		ResourceID:   entity.ResourceID,
		Details:      datatypes.JSONMap(entity.Details),
		IPAddress:    entity.IPAddress,
		UserAgent:    entity.UserAgent,
		Timestamp:    entity.Timestamp,
	}
}
