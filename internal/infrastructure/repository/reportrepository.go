package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/mappers"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/db"
	apperrors "github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

// ReportRepository implements report.Repository
type ReportRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ReportMapper
}

func NewReportRepository(database *gorm.DB, logger logger.Interface) *ReportRepository {
	return &ReportRepository{
		db:     database,
		logger: logger,
		mapper: mappers.NewReportMapper(),
	}
}

func (r *ReportRepository) Create(ctx context.Context, entity *report.Report) error {
	entity.ApplyDefaults()
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create report", "error", err)
		return fmt.Errorf("failed to create report: %w", err)
	}

	*entity = *r.mapper.ToDomain(model)
	return nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id uint) (*report.Report, error) {
	var model models.ReportModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// Search matches the lowercased query against name and description and the raw query
// against phone and account numbers. An empty query matches every report.
func (r *ReportRepository) Search(ctx context.Context, query string, filter report.Filter) ([]*report.Report, error) {
	raw := strings.TrimSpace(query)
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.ReportModel{}).
		Scopes(reportFilterScope(filter), db.Newest("created_at"), db.Paginate(filter.Limit, filter.Offset))

	if raw != "" {
		lowered := db.LikePattern(strings.ToLower(raw))
		exact := db.LikePattern(raw)
		tx = tx.Where(
			db.Like("LOWER(accused_name)")+" OR "+db.Like("LOWER(description)")+" OR "+
				db.Like("phone_number")+" OR "+db.Like("account_number"),
			lowered, lowered, exact, exact,
		)
	}

	var modelList []*models.ReportModel
	if err := tx.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to search reports", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search reports: %w", err)
	}
	return r.mapper.ToDomainList(modelList), nil
}

// FindByIdentifier matches phone and account numbers exactly (phone also in normalized
// form) or the accused name as a case-insensitive substring.
func (r *ReportRepository) FindByIdentifier(ctx context.Context, keyword string, publicOnly bool, limit int) ([]*report.Report, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []*report.Report{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db).
		Where("phone_number = ? OR phone_number = ? OR account_number = ? OR "+db.Like("LOWER(accused_name)"),
			keyword, utils.NormalizePhone(keyword), keyword, db.LikePattern(strings.ToLower(keyword)))
	if publicOnly {
		tx = tx.Where("is_public = ?", true)
	}

	var modelList []*models.ReportModel
	err := tx.Scopes(db.Newest("created_at"), db.Paginate(utils.NormalizeLimit(limit, constants.DefaultReportListLimit), 0)).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reports by identifier: %w", err)
	}
	return r.mapper.ToDomainList(modelList), nil
}

func (r *ReportRepository) Recent(ctx context.Context, limit int) ([]*report.Report, error) {
	return r.List(ctx, report.Filter{Limit: utils.NormalizeLimit(limit, constants.DefaultRecentReportsLimit)})
}

func (r *ReportRepository) ListByStatus(ctx context.Context, status report.Status, limit int) ([]*report.Report, error) {
	return r.List(ctx, report.Filter{
		Status: &status,
		Limit:  utils.NormalizeLimit(limit, constants.DefaultReportListLimit),
	})
}

func (r *ReportRepository) List(ctx context.Context, filter report.Filter) ([]*report.Report, error) {
	var modelList []*models.ReportModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(reportFilterScope(filter), db.Newest("created_at"), db.Paginate(filter.Limit, filter.Offset)).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return r.mapper.ToDomainList(modelList), nil
}

func (r *ReportRepository) Count(ctx context.Context, filter report.Filter) (int64, error) {
	var total int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.ReportModel{}).
		Scopes(reportFilterScope(filter)).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return total, nil
}

// Update merges the patch. Verification columns are only written by UpdateStatus.
func (r *ReportRepository) Update(ctx context.Context, id uint, patch report.Patch) (*report.Report, error) {
	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	setIf(updates, "accused_name", patch.AccusedName)
	setIf(updates, "phone_number", patch.PhoneNumber)
	setIf(updates, "account_number", patch.AccountNumber)
	setIf(updates, "bank", patch.Bank)
	setIf(updates, "amount", patch.Amount)
	setIf(updates, "description", patch.Description)
	setIf(updates, "receipt_url", patch.ReceiptURL)
	setIf(updates, "category", patch.Category)
	setIf(updates, "is_public", patch.IsPublic)
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.Priority != nil {
		updates["priority"] = string(*patch.Priority)
	}

	return r.applyUpdates(ctx, id, updates)
}

// UpdateStatus sets the status and, only for verified, stamps who verified it and when.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id uint, status report.Status, verifiedBy *string, at time.Time) (*report.Report, error) {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": at,
	}
	if status == report.StatusVerified {
		updates["verified_at"] = at
		updates["verified_by"] = verifiedBy
	}
	return r.applyUpdates(ctx, id, updates)
}

func (r *ReportRepository) applyUpdates(ctx context.Context, id uint, updates map[string]interface{}) (*report.Report, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ReportModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		r.logger.Errorw("failed to update report", "id", id, "error", result.Error)
		return nil, fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("Report not found")
	}
	return r.GetByID(ctx, id)
}

func (r *ReportRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ReportModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Report not found")
	}
	return nil
}

// Stats aggregates counts by status, category and priority plus the reported amount.
// Last7Days counts reports created at or after since.
func (r *ReportRepository) Stats(ctx context.Context, since time.Time) (*report.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	stats := &report.Stats{}

	var totals struct {
		Total       int64
		TotalAmount int64
	}
	if err := tx.Model(&models.ReportModel{}).
		Select("COUNT(*) AS total, COALESCE(SUM(amount), 0) AS total_amount").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate reports: %w", err)
	}
	stats.Total = totals.Total
	stats.TotalAmount = totals.TotalAmount

	var err error
	if stats.ByStatus, err = countBy(tx, &models.ReportModel{}, "status"); err != nil {
		return nil, err
	}
	if stats.ByCategory, err = countBy(tx, &models.ReportModel{}, "category"); err != nil {
		return nil, err
	}
	if stats.ByPriority, err = countBy(tx, &models.ReportModel{}, "priority"); err != nil {
		return nil, err
	}

	if err := tx.Model(&models.ReportModel{}).Where("created_at >= ?", since).Count(&stats.Last7Days).Error; err != nil {
		return nil, fmt.Errorf("failed to count recent reports: %w", err)
	}

	return stats, nil
}

func reportFilterScope(filter report.Filter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = db.EqualIfSet("status", filter.Status)(tx)
		tx = db.EqualIfSet("category", filter.Category)(tx)
		tx = db.EqualIfSet("priority", filter.Priority)(tx)
		return db.EqualIfSet("is_public", filter.IsPublic)(tx)
	}
}
