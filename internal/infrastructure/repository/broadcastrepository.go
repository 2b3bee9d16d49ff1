package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/scamguard-vn/scamguard/internal/domain/broadcast"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/mappers"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/db"
	apperrors "github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/mapper"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

// BroadcastRepository implements broadcast.Repository
type BroadcastRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBroadcastRepository(database *gorm.DB, logger logger.Interface) *BroadcastRepository {
	return &BroadcastRepository{db: database, logger: logger}
}

func (r *BroadcastRepository) CreateCampaign(ctx context.Context, c *broadcast.Campaign) error {
	if c.Status == "" {
		c.Status = broadcast.StatusDraft
	}
	if c.Target == "" {
		c.Target = broadcast.TargetAll
	}
	model := mappers.CampaignToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	*c = *mappers.CampaignToDomain(model)
	return nil
}

func (r *BroadcastRepository) GetCampaign(ctx context.Context, id uint) (*broadcast.Campaign, error) {
	var model models.BroadcastCampaignModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return mappers.CampaignToDomain(&model), nil
}

func (r *BroadcastRepository) ListCampaigns(ctx context.Context, limit, offset int) ([]*broadcast.Campaign, error) {
	var modelList []*models.BroadcastCampaignModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Newest("created_at"), db.Paginate(utils.NormalizeLimit(limit, constants.DefaultCampaignListLimit), offset)).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return mapper.MapSlice(modelList, mappers.CampaignToDomain), nil
}

func campaignProgress(c *broadcast.Campaign) map[string]interface{} {
	return map[string]interface{}{
		"status":         string(c.Status),
		"total_users":    c.TotalUsers,
		"sent_count":     c.SentCount,
		"success_count":  c.SuccessCount,
		"failed_count":   c.FailedCount,
		"scheduled_time": c.ScheduledTime,
		"started_at":     c.StartedAt,
		"completed_at":   c.CompletedAt,
		"updated_at":     time.Now().UTC(),
	}
}

func (r *BroadcastRepository) SaveCampaign(ctx context.Context, c *broadcast.Campaign) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.BroadcastCampaignModel{}).
		Where("id = ?", c.ID).
		Updates(campaignProgress(c))
	if result.Error != nil {
		r.logger.Errorw("failed to save campaign", "campaign_id", c.ID, "error", result.Error)
		return fmt.Errorf("failed to save campaign: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Campaign not found")
	}
	return nil
}

// ClaimCampaign writes c only while the stored status is one of from, so two dispatchers
// racing on the same campaign cannot both start it.
func (r *BroadcastRepository) ClaimCampaign(ctx context.Context, c *broadcast.Campaign, from ...broadcast.Status) error {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.BroadcastCampaignModel{}).
		Where("id = ? AND status IN ?", c.ID, statuses).
		Updates(campaignProgress(c))
	if result.Error != nil {
		r.logger.Errorw("failed to claim campaign", "campaign_id", c.ID, "error", result.Error)
		return fmt.Errorf("failed to claim campaign: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.BroadcastCampaignModel{}).Where("id = ?", c.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check campaign: %w", err)
	}
	if count == 0 {
		return apperrors.NewNotFoundError("Campaign not found")
	}
	return apperrors.NewConflictError("Campaign was already claimed by another dispatch")
}

func (r *BroadcastRepository) DeleteCampaign(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.BroadcastCampaignModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete campaign: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("Campaign not found")
		}
		if err := tx.Where("campaign_id = ?", id).Delete(&models.BroadcastFailureModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete campaign failures: %w", err)
		}
		return nil
	})
}

func (r *BroadcastRepository) DueCampaigns(ctx context.Context, now time.Time) ([]*broadcast.Campaign, error) {
	var modelList []*models.BroadcastCampaignModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND scheduled_time IS NOT NULL AND scheduled_time <= ?", string(broadcast.StatusScheduled), now).
		Scopes(db.Oldest("scheduled_time")).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due campaigns: %w", err)
	}
	return mapper.MapSlice(modelList, mappers.CampaignToDomain), nil
}

// UpsertRecipient registers a follower or refreshes its profile and activity.
func (r *BroadcastRepository) UpsertRecipient(ctx context.Context, rec *broadcast.Recipient) error {
	if rec.FollowedAt.IsZero() {
		rec.FollowedAt = time.Now().UTC()
	}
	model := &models.BroadcastRecipientModel{
		UserID:          rec.UserID,
		DisplayName:     rec.DisplayName,
		IsActive:        rec.IsActive,
		FollowedAt:      rec.FollowedAt,
		LastInteraction: rec.LastInteraction,
	}
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "is_active", "last_interaction"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert recipient: %w", err)
	}

	var stored models.BroadcastRecipientModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", rec.UserID).First(&stored).Error; err != nil {
		return fmt.Errorf("failed to reload recipient: %w", err)
	}
	*rec = *mappers.RecipientToDomain(&stored)
	return nil
}

func (r *BroadcastRepository) ListRecipients(ctx context.Context, target broadcast.Target, userIDs []string, now time.Time) ([]*broadcast.Recipient, error) {
	tx := db.GetTxFromContext(ctx, r.db).Where("is_active = ?", true)
	switch target {
	case broadcast.TargetActive:
		tx = tx.Where("last_interaction >= ?", now.Add(-broadcast.ActiveWindow))
	case broadcast.TargetSpecific:
		if len(userIDs) == 0 {
			return []*broadcast.Recipient{}, nil
		}
		tx = tx.Where("user_id IN ?", userIDs)
	}

	var modelList []*models.BroadcastRecipientModel
	if err := tx.Order("id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	return mapper.MapSlice(modelList, mappers.RecipientToDomain), nil
}

func (r *BroadcastRepository) RecordFailure(ctx context.Context, f *broadcast.Failure) error {
	model := &models.BroadcastFailureModel{
		CampaignID: f.CampaignID,
		UserID:     f.UserID,
		Error:      f.Error,
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record broadcast failure: %w", err)
	}
	f.ID = model.ID
	f.CreatedAt = model.CreatedAt
	return nil
}

func (r *BroadcastRepository) ListFailures(ctx context.Context, campaignID uint) ([]*broadcast.Failure, error) {
	var modelList []*models.BroadcastFailureModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("campaign_id = ?", campaignID).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list broadcast failures: %w", err)
	}
	return mapper.MapSlice(modelList, mappers.FailureToDomain), nil
}
