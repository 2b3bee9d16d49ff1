package mappers

import (
	"github.com/scamguard-vn/scamguard/internal/domain/broadcast"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
)

func CampaignToDomain(model *models.BroadcastCampaignModel) *broadcast.Campaign {
	if model == nil {
		return nil
	}
	return &broadcast.Campaign{
		ID:            model.ID,
		Title:         model.Title,
		Content:       model.Content,
		Status:        broadcast.Status(model.Status),
		Target:        broadcast.Target(model.Target),
		TargetUserIDs: model.TargetUserIDs,
		TotalUsers:    model.TotalUsers,
		SentCount:     model.SentCount,
		SuccessCount:  model.SuccessCount,
		FailedCount:   model.FailedCount,
		ScheduledTime: model.ScheduledTime,
		StartedAt:     model.StartedAt,
		CompletedAt:   model.CompletedAt,
		CreatedBy:     model.CreatedBy,
		CreatedAt:     model.CreatedAt,
	}
}

func CampaignToModel(entity *broadcast.Campaign) *models.BroadcastCampaignModel {
	return &models.BroadcastCampaignModel{
		ID:            entity.ID,
		Title:         entity.Title,
		Content:       entity.Content,
		Status:        string(entity.Status),
		Target:        string(entity.Target),
		TargetUserIDs: entity.TargetUserIDs,
		TotalUsers:    entity.TotalUsers,
		SentCount:     entity.SentCount,
		SuccessCount:  entity.SuccessCount,
		FailedCount:   entity.FailedCount,
		ScheduledTime: entity.ScheduledTime,
		StartedAt:     entity.StartedAt,
		CompletedAt:   entity.CompletedAt,
		CreatedBy:     entity.CreatedBy,
		CreatedAt:     entity.CreatedAt,
	}
}

func RecipientToDomain(model *models.BroadcastRecipientModel) *broadcast.Recipient {
	return &broadcast.Recipient{
		ID:              model.ID,
		UserID:          model.UserID,
		DisplayName:     model.DisplayName,
		IsActive:        model.IsActive,
		FollowedAt:      model.FollowedAt,
		LastInteraction: model.LastInteraction,
	}
}

func FailureToDomain(model *models.BroadcastFailureModel) *broadcast.Failure {
	return &broadcast.Failure{
		ID:         model.ID,
		CampaignID: model.CampaignID,
		UserID:     model.UserID,
		Error:      model.Error,
		CreatedAt:  model.CreatedAt,
	}
}
