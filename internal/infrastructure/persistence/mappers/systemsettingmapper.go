package mappers

import (
	"github.com/scamguard-vn/scamguard/internal/domain/setting"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
)

func SystemSettingToDomain(model *models.SystemSettingModel) *setting.SystemSetting {
	if model == nil {
		return nil
	}
	return &setting.SystemSetting{
		Key:         model.SettingKey,
		Value:       model.Value,
		Description: model.Description,
		UpdatedAt:   model.UpdatedAt,
	}
}
