package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/domain/category"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/mappers"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/db"
	apperrors "github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/mapper"
)

// CategoryRepository implements category.Repository
type CategoryRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCategoryRepository(database *gorm.DB, logger logger.Interface) *CategoryRepository {
	return &CategoryRepository{db: database, logger: logger}
}

func (r *CategoryRepository) ListReportCategories(ctx context.Context, activeOnly bool) ([]*category.ReportCategory, error) {
	var modelList []*models.ReportCategoryModel
	if err := r.activeScope(ctx, activeOnly).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list report categories: %w", err)
	}
	return mapper.MapSlice(modelList, mappers.ReportCategoryToDomain), nil
}

func (r *CategoryRepository) CreateReportCategory(ctx context.Context, c *category.ReportCategory) error {
	model := mappers.ReportCategoryToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Category already exists")
		}
		return fmt.Errorf("failed to create report category: %w", err)
	}
	*c = *mappers.ReportCategoryToDomain(model)
	return nil
}

func (r *CategoryRepository) ListBlogCategories(ctx context.Context, activeOnly bool) ([]*category.BlogCategory, error) {
	var modelList []*models.BlogCategoryModel
	if err := r.activeScope(ctx, activeOnly).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list blog categories: %w", err)
	}
	return mapper.MapSlice(modelList, mappers.BlogCategoryToDomain), nil
}

func (r *CategoryRepository) CreateBlogCategory(ctx context.Context, c *category.BlogCategory) error {
	model := mappers.BlogCategoryToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Category already exists")
		}
		return fmt.Errorf("failed to create blog category: %w", err)
	}
	*c = *mappers.BlogCategoryToDomain(model)
	return nil
}

func (r *CategoryRepository) CountReportCategories(ctx context.Context) (int64, error) {
	var total int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.ReportCategoryModel{}).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count report categories: %w", err)
	}
	return total, nil
}

func (r *CategoryRepository) CountBlogCategories(ctx context.Context) (int64, error) {
	var total int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.BlogCategoryModel{}).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count blog categories: %w", err)
	}
	return total, nil
}

func (r *CategoryRepository) activeScope(ctx context.Context, activeOnly bool) *gorm.DB {
	tx := db.GetTxFromContext(ctx, r.db)
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}
	return tx
}
