package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/domain/admin"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/mappers"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/db"
	apperrors "github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// AdminRepository implements admin.Repository
type AdminRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.AdminMapper
}

func NewAdminRepository(database *gorm.DB, logger logger.Interface) *AdminRepository {
	return &AdminRepository{
		db:     database,
		logger: logger,
		mapper: mappers.NewAdminMapper(),
	}
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Username already exists")
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *AdminRepository) first(ctx context.Context, cond string, arg interface{}) (*admin.Admin, error) {
	var model models.AdminModel
	err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.AdminModel{}).
		Where("id = ?", id).
		UpdateColumn("last_login", at)
	if result.Error != nil {
		return fmt.Errorf("failed to update last login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Admin not found")
	}
	return nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AdminModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return total, nil
}
