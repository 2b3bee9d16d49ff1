package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/scamguard-vn/scamguard/internal/domain/setting"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/mappers"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/db"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/mapper"
)

// SystemSettingRepository implements setting.Repository
type SystemSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewSystemSettingRepository creates a new SystemSettingRepository
func NewSystemSettingRepository(database *gorm.DB, logger logger.Interface) *SystemSettingRepository {
	return &SystemSettingRepository{
		db:     database,
		logger: logger,
	}
}

// Get retrieves a setting by key
func (r *SystemSettingRepository) Get(ctx context.Context, key string) (*setting.SystemSetting, error) {
	var model models.SystemSettingModel

	err := db.GetTxFromContext(ctx, r.db).
		Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to get setting by key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}

	return mappers.SystemSettingToDomain(&model), nil
}

// List retrieves all system settings
func (r *SystemSettingRepository) List(ctx context.Context) ([]*setting.SystemSetting, error) {
	var modelList []*models.SystemSettingModel

	err := db.GetTxFromContext(ctx, r.db).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).
		Find(&modelList).Error
	if err != nil {
		r.logger.Error("failed to get all settings", "error", err)
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}

	return mapper.MapSlice(modelList, mappers.SystemSettingToDomain), nil
}

// Upsert creates or updates a setting. The description is only overwritten when given.
func (r *SystemSettingRepository) Upsert(ctx context.Context, key, value string, description *string) (*setting.SystemSetting, error) {
	model := &models.SystemSettingModel{
		SettingKey:  key,
		Value:       value,
		Description: description,
		UpdatedAt:   time.Now().UTC(),
	}

	columns := []string{"value", "updated_at"}
	if description != nil {
		columns = append(columns, "description")
	}

	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(model).Error
	if err != nil {
		r.logger.Error("failed to upsert setting", "key", key, "error", err)
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return r.Get(ctx, key)
}

func (r *SystemSettingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.SystemSettingModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count settings: %w", err)
	}
	return total, nil
}
