package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/domain/auditlog"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/mappers"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/db"
	"github.com/scamguard-vn/scamguard/internal/shared/mapper"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

// AuditLogRepository implements auditlog.Repository
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(database *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: database}
}

func (r *AuditLogRepository) Create(ctx context.Context, e *auditlog.Entry) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	model := mappers.AuditLogToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	e.ID = model.ID
	return nil
}

func (r *AuditLogRepository) List(ctx context.Context, limit, offset int) ([]*auditlog.Entry, error) {
	var modelList []*models.AuditLogModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Newest("created_at"), db.Paginate(utils.NormalizeLimit(limit, constants.DefaultAuditLogLimit), offset)).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return mapper.MapSlice(modelList, mappers.AuditLogToDomain), nil
}
